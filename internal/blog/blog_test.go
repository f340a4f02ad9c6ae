package blog

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slugs(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Slug
	}
	return out
}

func TestLoadEmbedded(t *testing.T) {
	idx, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"choosing-right-concrete-finish",
		"concrete-maintenance-tips",
		"stamped-concrete-vs-pavers",
		"preparing-for-concrete-pour",
		"concrete-curing-process",
		"winter-concrete-installation",
	}, slugs(idx.Posts()))

	assert.Equal(t, []string{AllCategories, "Tips & Guides", "Maintenance", "Comparisons", "Education"}, idx.Categories())
	assert.Equal(t, []string{"choosing-right-concrete-finish", "concrete-maintenance-tips"}, slugs(idx.Featured()))
}

func TestPostFields(t *testing.T) {
	idx := MustLoad()
	p, ok := idx.BySlug("stamped-concrete-vs-pavers")
	require.True(t, ok)
	assert.Equal(t, "Stamped Concrete vs. Pavers: Which Is Right for You?", p.Title)
	assert.Equal(t, "Comparisons", p.Category)
	assert.Equal(t, "February 5, 2026", p.DisplayDate())
	assert.Equal(t, "6 min read", p.ReadTime)
	assert.False(t, p.Featured)
	assert.Contains(t, string(p.Body), `<h2 id="cost">Cost</h2>`)

	_, ok = idx.BySlug("missing")
	assert.False(t, ok)
}

func TestTablesRender(t *testing.T) {
	p, ok := MustLoad().BySlug("choosing-right-concrete-finish")
	require.True(t, ok)
	assert.Contains(t, string(p.Body), "<table>")
}

func TestFilter(t *testing.T) {
	idx := MustLoad()
	assert.Equal(t, []string{
		"choosing-right-concrete-finish",
		"preparing-for-concrete-pour",
		"winter-concrete-installation",
	}, slugs(idx.Filter("Tips & Guides")))
	assert.Len(t, idx.Filter(AllCategories), 6)
	assert.Len(t, idx.Filter("Recipes"), 6, "unknown category shows everything")

	assert.Equal(t, []string{"preparing-for-concrete-pour", "winter-concrete-installation"}, slugs(idx.Regular("Tips & Guides")))
	assert.Len(t, idx.Regular(AllCategories), 4)
}

func TestLoadFSErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no front matter", "# hi\n", "missing front matter"},
		{"unterminated", "---\ntitle: x\n", "unterminated"},
		{"no title", "---\nslug: a\ncategory: Education\n---\nbody\n", "no title"},
		{"reserved category", "---\ntitle: A\ncategory: All\n---\nbody\n", "invalid category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"posts/a.md": {Data: []byte(tt.body)}}
			_, err := LoadFS(fsys, "posts/*.md")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFSDefaultsSlugAndRejectsDuplicates(t *testing.T) {
	post := "---\ntitle: A\ncategory: Education\ndate: 2026-01-01\n---\nText\n"
	idx, err := LoadFS(fstest.MapFS{"posts/first-post.md": {Data: []byte(post)}}, "posts/*.md")
	require.NoError(t, err)
	_, ok := idx.BySlug("first-post")
	assert.True(t, ok)

	dup := "---\nslug: same\ntitle: A\ncategory: Education\n---\nText\n"
	_, err = LoadFS(fstest.MapFS{
		"posts/a.md": {Data: []byte(dup)},
		"posts/b.md": {Data: []byte(dup)},
	}, "posts/*.md")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "duplicate slug"))
}
