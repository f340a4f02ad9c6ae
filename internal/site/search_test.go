package site

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackstone-contractors/website/internal/blog"
)

func TestBuildSearchIndex(t *testing.T) {
	entries := BuildSearchIndex(blog.MustLoad())
	kinds := map[string]int{}
	for _, e := range entries {
		kinds[e.Kind]++
	}
	assert.Equal(t, 9, kinds["Service"])
	assert.Equal(t, 4, kinds["Installation"])
	assert.Equal(t, 20, kinds["FAQ"])
	assert.Equal(t, 6, kinds["Article"])

	assert.Len(t, BuildSearchIndex(nil), 33)
}

func TestSearchRanksTitlesFirst(t *testing.T) {
	entries := []SearchEntry{
		{Path: "/a", Title: "Patios", Summary: "Outdoor living"},
		{Path: "/b", Title: "Driveways", Summary: "Includes a patio extension"},
		{Path: "/c", Title: "Pool Deck & Patio"},
	}
	got := Search(entries, "patio", 0)
	require.Len(t, got, 3)
	assert.Equal(t, "/a", got[0].Path)
	assert.Equal(t, "/c", got[1].Path)
	assert.Equal(t, "/b", got[2].Path)
}

func TestSearchMatchesAllWords(t *testing.T) {
	entries := []SearchEntry{
		{Path: "/a", Title: "One", Content: "stamped patio in Orting"},
		{Path: "/b", Title: "Two", Content: "stamped driveway"},
	}
	got := Search(entries, "stamped orting", 0)
	require.Len(t, got, 1)
	assert.Equal(t, "/a", got[0].Path)
}

func TestSearchEmptyAndLimit(t *testing.T) {
	entries := BuildSearchIndex(blog.MustLoad())
	assert.Nil(t, Search(entries, "   ", 10))
	assert.Len(t, Search(entries, "concrete", 3), 3)
}
