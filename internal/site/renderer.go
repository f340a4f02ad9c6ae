package site

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/blackstone-contractors/website/internal/content"
)

// Header is the title block at the top of an inner page.
type Header struct {
	Eyebrow string
	Heading string
	Lead    string
}

// Page is the data every template receives. Data holds the page-specific
// values.
type Page struct {
	Title       string
	Description string
	Path        string
	SiteName    string
	Static      bool
	Nav         template.HTML
	Business    content.Business
	Footer      []content.LinkColumn
	Year        int
	Data        any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	// delay staggers reveal animations by position.
	"delay": func(i int) string { return fmt.Sprintf("%.2fs", float64(i)*0.1) },
	"join":  strings.Join,
}

// NewRenderer parses the layout and every page template.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").Funcs(templateFuncs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}
	if _, err := base.Parse(pageHeaderBlock); err != nil {
		return nil, fmt.Errorf("parsing shared blocks: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageTemplates))}
	for name, src := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page into w.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
