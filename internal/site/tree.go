package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/blackstone-contractors/website/internal/content"
)

// NavTree is a node in the site navigation. The root has no label; its
// children are the top-level menu entries.
type NavTree struct {
	Label    string
	Href     string
	Children []*NavTree
}

// BuildTree constructs the navigation tree from menu entries.
func BuildTree(entries []content.NavEntry) *NavTree {
	root := &NavTree{}
	for _, e := range entries {
		node := &NavTree{Label: e.Label, Href: e.Href}
		for _, c := range e.Children {
			node.Children = append(node.Children, &NavTree{Label: c.Label, Href: c.Href})
		}
		root.Children = append(root.Children, node)
	}
	return root
}

// IsActive reports whether the node or any descendant links to activePath.
func (t *NavTree) IsActive(activePath string) bool {
	if t.Href != "" && sectionOf(activePath) == t.Href {
		return true
	}
	for _, c := range t.Children {
		if c.IsActive(activePath) {
			return true
		}
	}
	return false
}

// sectionOf maps a request path to the menu entry it belongs under, so that
// /blog/some-post highlights Blog.
func sectionOf(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	p = "/" + strings.Trim(p, "/")
	if i := strings.Index(p[1:], "/"); i >= 0 {
		return p[:i+1]
	}
	return p
}

// ToHTML renders the menu as nested <ul><li> HTML. Dropdown parents are
// marked active when any child matches activePath.
func (t *NavTree) ToHTML(activePath string) string {
	var b strings.Builder
	b.WriteString(`<ul class="nav-list">` + "\n")
	for _, child := range t.Children {
		active := ""
		if child.IsActive(activePath) {
			active = " active"
		}
		label := html.EscapeString(child.Label)
		if len(child.Children) == 0 {
			fmt.Fprintf(&b, `<li class="nav-item%s"><a href="%s">%s</a></li>`+"\n", active, child.Href, label)
			continue
		}
		fmt.Fprintf(&b, `<li class="nav-item dropdown%s"><button class="dropdown-toggle" aria-expanded="false">%s</button>`+"\n", active, label)
		b.WriteString(`<ul class="dropdown-menu">` + "\n")
		for _, c := range child.Children {
			cls := ""
			if c.IsActive(activePath) {
				cls = ` class="active"`
			}
			fmt.Fprintf(&b, `<li><a href="%s"%s>%s</a></li>`+"\n", c.Href, cls, html.EscapeString(c.Label))
		}
		b.WriteString("</ul></li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

// Paths returns every link target in the tree, in menu order.
func (t *NavTree) Paths() []string {
	var out []string
	var walk func(*NavTree)
	walk = func(n *NavTree) {
		if n.Href != "" {
			out = append(out, n.Href)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t)
	return out
}
