package gallery

import "fmt"

// AllCategories is the filter value that selects the whole catalog.
const AllCategories = "All"

// Item is one completed project shown in the gallery. Items are never mutated
// after the catalog is built.
type Item struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Location string `json:"location"`
}

// Catalog is the fixed, ordered list of gallery items.
type Catalog struct {
	items      []Item
	index      map[int]int
	categories []string
}

// NewCatalog builds a catalog from items, keeping their order. IDs must be
// positive and unique; zero is reserved for "no selection".
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:      make([]Item, len(items)),
		index:      make(map[int]int, len(items)),
		categories: []string{AllCategories},
	}
	seen := make(map[string]bool)
	for i, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("item %d: id must be positive, got %d", i, it.ID)
		}
		if it.Category == "" || it.Category == AllCategories {
			return nil, fmt.Errorf("item %d: invalid category %q", it.ID, it.Category)
		}
		if _, dup := c.index[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", it.ID)
		}
		c.items[i] = it
		c.index[it.ID] = i
		if !seen[it.Category] {
			seen[it.Category] = true
			c.categories = append(c.categories, it.Category)
		}
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input. It is meant for
// catalogs built from compiled-in content.
func MustCatalog(items []Item) *Catalog {
	c, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks up an item by id.
func (c *Catalog) Get(id int) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Categories returns "All" followed by each distinct category in order of
// first appearance.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// HasCategory reports whether name is "All" or a category present in the catalog.
func (c *Catalog) HasCategory(name string) bool {
	for _, cat := range c.categories {
		if cat == name {
			return true
		}
	}
	return false
}

// Filter returns the items in category, in catalog order. "All" returns
// every item; an unknown category returns nil.
func (c *Catalog) Filter(category string) []Item {
	if category == AllCategories {
		return c.Items()
	}
	var out []Item
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Viewer describes the modal viewer as seen by a presentation layer.
type Viewer struct {
	Open     bool  `json:"open"`
	Item     *Item `json:"item,omitempty"`
	Position int   `json:"position"` // 1-based index within the current view, 0 when closed
	Total    int   `json:"total"`
}

// Snapshot is everything a presentation layer needs to draw the gallery.
type Snapshot struct {
	Category   string   `json:"category"`
	Categories []string `json:"categories"`
	Items      []Item   `json:"items"`
	Viewer     Viewer   `json:"viewer"`
}
