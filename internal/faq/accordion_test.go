package faq

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackstone-contractors/website/internal/content"
)

func TestDefaults(t *testing.T) {
	a := New(content.FAQ())
	assert.Equal(t, "General", a.Category())
	assert.Len(t, a.Questions(), 4)
	assert.Empty(t, a.OpenIndexes())
	assert.Empty(t, a.Query())
}

func TestToggleIsIndependent(t *testing.T) {
	a := New(content.FAQ())
	a.Toggle(0)
	a.Toggle(2)
	assert.Equal(t, []int{0, 2}, a.OpenIndexes())

	a.Toggle(0)
	assert.Equal(t, []int{2}, a.OpenIndexes())
	assert.False(t, a.IsOpen(0))
	assert.True(t, a.IsOpen(2))
}

func TestToggleOutOfRange(t *testing.T) {
	a := New(content.FAQ())
	a.Toggle(-1)
	a.Toggle(4)
	assert.Empty(t, a.OpenIndexes())
}

func TestSetCategoryCollapses(t *testing.T) {
	a := New(content.FAQ())
	a.Toggle(1)
	a.SetCategory("Pricing")
	assert.Equal(t, "Pricing", a.Category())
	assert.Empty(t, a.OpenIndexes())
	assert.Equal(t, "How much does a concrete driveway cost?", a.Questions()[0].Q)
}

func TestSetCategoryUnknownIgnored(t *testing.T) {
	a := New(content.FAQ())
	a.SetCategory("Maintenance")
	a.Toggle(3)
	a.SetCategory("Warranty")
	assert.Equal(t, "Maintenance", a.Category())
	assert.Equal(t, []int{3}, a.OpenIndexes())
}

func TestQueryRoundTrip(t *testing.T) {
	q, err := url.ParseQuery("category=Services&open=3&open=1&open=9&open=x")
	require.NoError(t, err)

	a := FromQuery(content.FAQ(), q)
	assert.Equal(t, "Services", a.Category())
	assert.Equal(t, []int{1, 3}, a.OpenIndexes())
	assert.Equal(t, "category=Services&open=1&open=3", a.Query().Encode())
}

func TestFromQueryDuplicateOpen(t *testing.T) {
	a := FromQuery(content.FAQ(), url.Values{"open": {"2", "2"}})
	assert.Equal(t, []int{2}, a.OpenIndexes())
}

func TestToggleQueryLeavesStateAlone(t *testing.T) {
	a := New(content.FAQ())
	a.Toggle(0)

	assert.Equal(t, "", a.ToggleQuery(0).Encode())
	assert.Equal(t, "open=0&open=1", a.ToggleQuery(1).Encode())
	assert.Equal(t, "category=Pricing", a.CategoryQuery("Pricing").Encode())
	assert.Equal(t, []int{0}, a.OpenIndexes())
	assert.Equal(t, "General", a.Category())
}
