// Package faq holds the state of the FAQ page: the selected category tab and
// which answers are expanded.
package faq

import (
	"net/url"
	"sort"
	"strconv"

	"github.com/blackstone-contractors/website/internal/content"
)

// Accordion is the FAQ tab and expansion state. The zero value is not usable;
// build one with New or FromQuery.
type Accordion struct {
	categories []content.FAQCategory
	current    int
	open       map[int]bool
}

// New returns an accordion showing the first category with every answer
// collapsed.
func New(categories []content.FAQCategory) *Accordion {
	return &Accordion{categories: categories, open: map[int]bool{}}
}

// FromQuery restores an accordion from ?category=...&open=0&open=2. Unknown
// categories and out-of-range indexes are dropped.
func FromQuery(categories []content.FAQCategory, q url.Values) *Accordion {
	a := New(categories)
	if name := q.Get("category"); name != "" {
		a.SetCategory(name)
	}
	for _, v := range q["open"] {
		i, err := strconv.Atoi(v)
		if err != nil || a.IsOpen(i) {
			continue
		}
		a.Toggle(i)
	}
	return a
}

// Category returns the active tab name.
func (a *Accordion) Category() string {
	if len(a.categories) == 0 {
		return ""
	}
	return a.categories[a.current].Name
}

// Categories returns the tab names in order.
func (a *Accordion) Categories() []string {
	out := make([]string, len(a.categories))
	for i, c := range a.categories {
		out[i] = c.Name
	}
	return out
}

// SetCategory switches tabs and collapses every answer. Unknown names are
// ignored.
func (a *Accordion) SetCategory(name string) {
	for i, c := range a.categories {
		if c.Name == name {
			a.current = i
			a.open = map[int]bool{}
			return
		}
	}
}

// Questions returns the questions of the active tab.
func (a *Accordion) Questions() []content.Question {
	if len(a.categories) == 0 {
		return nil
	}
	return a.categories[a.current].Questions
}

// Toggle expands or collapses question i of the active tab.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= len(a.Questions()) {
		return
	}
	if a.open[i] {
		delete(a.open, i)
		return
	}
	a.open[i] = true
}

// IsOpen reports whether question i is expanded.
func (a *Accordion) IsOpen(i int) bool { return a.open[i] }

// OpenIndexes returns the expanded question indexes in ascending order.
func (a *Accordion) OpenIndexes() []int {
	out := make([]int, 0, len(a.open))
	for i := range a.open {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Clone returns an independent copy.
func (a *Accordion) Clone() *Accordion {
	c := &Accordion{categories: a.categories, current: a.current, open: make(map[int]bool, len(a.open))}
	for i := range a.open {
		c.open[i] = true
	}
	return c
}

// Query encodes the state. The first tab and an empty open set are omitted.
func (a *Accordion) Query() url.Values {
	q := url.Values{}
	if a.current != 0 {
		q.Set("category", a.Category())
	}
	for _, i := range a.OpenIndexes() {
		q.Add("open", strconv.Itoa(i))
	}
	return q
}

// ToggleQuery returns the query the page would have after toggling i.
func (a *Accordion) ToggleQuery(i int) url.Values {
	c := a.Clone()
	c.Toggle(i)
	return c.Query()
}

// CategoryQuery returns the query the page would have after selecting name.
func (a *Accordion) CategoryQuery(name string) url.Values {
	c := a.Clone()
	c.SetCategory(name)
	return c.Query()
}
