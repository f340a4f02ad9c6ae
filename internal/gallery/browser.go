package gallery

// Browser holds the gallery UI state: the active category filter and the
// item shown in the viewer, if any. It has a single writer; callers that share
// a Browser across goroutines must serialise access themselves.
//
// Every operation is defined for all inputs. Unknown categories, ids outside
// the current view and navigation while the viewer is closed are ignored.
type Browser struct {
	catalog  *Catalog
	category string
	view     []Item
	selected int // item id, 0 when the viewer is closed

	subs   map[int]func(Snapshot)
	nextID int
}

// NewBrowser returns a Browser showing the whole catalog with the viewer closed.
func NewBrowser(c *Catalog) *Browser {
	return &Browser{
		catalog:  c,
		category: AllCategories,
		view:     c.Items(),
	}
}

// Restore returns a Browser positioned at s. Parts of s that do not resolve
// against the catalog are dropped the same way the operations drop them.
func Restore(c *Catalog, s State) *Browser {
	b := NewBrowser(c)
	if s.Category != "" {
		b.setFilter(s.Category)
	}
	if s.Selected != 0 {
		b.open(s.Selected)
	}
	return b
}

// Catalog returns the catalog the browser was built from.
func (b *Browser) Catalog() *Catalog { return b.catalog }

// Category returns the active filter.
func (b *Browser) Category() string { return b.category }

// View returns the current view in display order.
func (b *Browser) View() []Item {
	out := make([]Item, len(b.view))
	copy(out, b.view)
	return out
}

// Selected returns the item shown in the viewer.
func (b *Browser) Selected() (Item, bool) {
	if b.selected == 0 {
		return Item{}, false
	}
	return b.catalog.Get(b.selected)
}

// IsOpen reports whether the viewer is open.
func (b *Browser) IsOpen() bool { return b.selected != 0 }

// State returns the serialisable form of the browser state.
func (b *Browser) State() State {
	return State{Category: b.category, Selected: b.selected}
}

// SetFilter switches the active category. If the viewer is open and the
// selected item is not part of the new view, the viewer is closed; an item
// that is still visible stays selected.
func (b *Browser) SetFilter(category string) {
	b.setFilter(category)
	b.notify()
}

// Open shows the item with the given id, provided it is in the current view.
func (b *Browser) Open(id int) {
	b.open(id)
	b.notify()
}

// Close hides the viewer.
func (b *Browser) Close() {
	b.selected = 0
	b.notify()
}

// Next advances the viewer to the following item, wrapping to the first.
func (b *Browser) Next() {
	b.step(1)
	b.notify()
}

// Previous moves the viewer to the preceding item, wrapping to the last.
func (b *Browser) Previous() {
	b.step(-1)
	b.notify()
}

// Do runs the operation described by a.
func (b *Browser) Do(a Action) {
	switch a.Op {
	case OpFilter:
		b.SetFilter(a.Category)
	case OpOpen:
		b.Open(a.ID)
	case OpClose:
		b.Close()
	case OpNext:
		b.Next()
	case OpPrevious:
		b.Previous()
	}
}

// Subscribe registers fn to receive a snapshot after every operation. The
// returned func removes the subscription.
func (b *Browser) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	if b.subs == nil {
		b.subs = make(map[int]func(Snapshot))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() { delete(b.subs, id) }
}

// Snapshot captures the current state for rendering.
func (b *Browser) Snapshot() Snapshot {
	s := Snapshot{
		Category:   b.category,
		Categories: b.catalog.Categories(),
		Items:      b.View(),
		Viewer:     Viewer{Total: len(b.view)},
	}
	if i := b.indexOf(b.selected); i >= 0 {
		it := b.view[i]
		s.Viewer.Open = true
		s.Viewer.Item = &it
		s.Viewer.Position = i + 1
	}
	return s
}

func (b *Browser) setFilter(category string) {
	if !b.catalog.HasCategory(category) {
		return
	}
	b.category = category
	b.view = b.catalog.Filter(category)
	if b.selected != 0 && b.indexOf(b.selected) < 0 {
		b.selected = 0
	}
}

func (b *Browser) open(id int) {
	if b.indexOf(id) >= 0 {
		b.selected = id
	}
}

func (b *Browser) step(delta int) {
	if b.selected == 0 || len(b.view) < 2 {
		return
	}
	i := b.indexOf(b.selected)
	if i < 0 {
		return
	}
	n := len(b.view)
	b.selected = b.view[(i+delta+n)%n].ID
}

func (b *Browser) indexOf(id int) int {
	if id == 0 {
		return -1
	}
	for i, it := range b.view {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (b *Browser) notify() {
	if len(b.subs) == 0 {
		return
	}
	snap := b.Snapshot()
	for _, fn := range b.subs {
		fn(snap)
	}
}
