// Package blog loads the articles compiled into the binary and renders them
// to HTML.
package blog

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

// AllCategories is the filter value that selects every post.
const AllCategories = "All"

//go:embed posts/*.md
var embedded embed.FS

// Post is one article.
type Post struct {
	Slug     string        `yaml:"slug" json:"slug"`
	Title    string        `yaml:"title" json:"title"`
	Excerpt  string        `yaml:"excerpt" json:"excerpt"`
	Category string        `yaml:"category" json:"category"`
	Date     time.Time     `yaml:"date" json:"date"`
	ReadTime string        `yaml:"read_time" json:"read_time"`
	Featured bool          `yaml:"featured" json:"featured"`
	Body     template.HTML `yaml:"-" json:"-"`
	Source   string        `yaml:"-" json:"-"`
}

// DisplayDate formats the publish date the way the site shows it.
func (p Post) DisplayDate() string {
	return p.Date.Format("January 2, 2006")
}

// Index is the sorted set of posts.
type Index struct {
	posts      []Post
	bySlug     map[string]int
	categories []string
}

// Load reads the posts compiled into the binary.
func Load() (*Index, error) {
	return LoadFS(embedded, "posts/*.md")
}

// MustLoad is like Load but panics on error.
func MustLoad() *Index {
	idx, err := Load()
	if err != nil {
		panic(err)
	}
	return idx
}

// LoadFS reads every file in fsys matching pattern. Posts are ordered newest
// first, ties broken by slug.
func LoadFS(fsys fs.FS, pattern string) (*Index, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("matching %s: %w", pattern, err)
	}

	md := newMarkdown()
	idx := &Index{bySlug: make(map[string]int)}
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		p, err := parsePost(md, name, data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if _, dup := idx.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in %s", p.Slug, name)
		}
		idx.bySlug[p.Slug] = -1
		idx.posts = append(idx.posts, p)
	}

	sort.SliceStable(idx.posts, func(i, j int) bool {
		a, b := idx.posts[i], idx.posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})

	idx.categories = []string{AllCategories}
	seen := map[string]bool{}
	for i, p := range idx.posts {
		idx.bySlug[p.Slug] = i
		if !seen[p.Category] {
			seen[p.Category] = true
			idx.categories = append(idx.categories, p.Category)
		}
	}
	return idx, nil
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// parsePost splits YAML front matter from the markdown body.
func parsePost(md goldmark.Markdown, name string, data []byte) (Post, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return Post{}, fmt.Errorf("missing front matter")
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end < 0 {
		return Post{}, fmt.Errorf("unterminated front matter")
	}
	front, body := rest[:end], rest[end+len("\n---\n"):]

	var p Post
	if err := yaml.Unmarshal([]byte(front), &p); err != nil {
		return Post{}, fmt.Errorf("decoding front matter: %w", err)
	}
	if p.Slug == "" {
		p.Slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if p.Title == "" {
		return Post{}, fmt.Errorf("post %s has no title", p.Slug)
	}
	if p.Category == "" || p.Category == AllCategories {
		return Post{}, fmt.Errorf("post %s: invalid category %q", p.Slug, p.Category)
	}

	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return Post{}, fmt.Errorf("converting markdown: %w", err)
	}
	p.Body = template.HTML(buf.String())
	p.Source = body
	return p, nil
}

// Posts returns every post, newest first.
func (idx *Index) Posts() []Post {
	out := make([]Post, len(idx.posts))
	copy(out, idx.posts)
	return out
}

// Categories returns "All" followed by each category in order of first
// appearance among the sorted posts.
func (idx *Index) Categories() []string {
	out := make([]string, len(idx.categories))
	copy(out, idx.categories)
	return out
}

// HasCategory reports whether name is a filterable category.
func (idx *Index) HasCategory(name string) bool {
	for _, c := range idx.categories {
		if c == name {
			return true
		}
	}
	return false
}

// Filter returns posts in category. Unknown categories are treated as "All".
func (idx *Index) Filter(category string) []Post {
	if category == AllCategories || !idx.HasCategory(category) {
		return idx.Posts()
	}
	var out []Post
	for _, p := range idx.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the featured posts, newest first.
func (idx *Index) Featured() []Post {
	var out []Post
	for _, p := range idx.posts {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Regular returns the non-featured posts in category.
func (idx *Index) Regular(category string) []Post {
	var out []Post
	for _, p := range idx.Filter(category) {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// BySlug looks up a post.
func (idx *Index) BySlug(slug string) (Post, bool) {
	i, ok := idx.bySlug[slug]
	if !ok {
		return Post{}, false
	}
	return idx.posts[i], true
}
