package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectItems = []Item{
	{ID: 1, Category: "Driveways", Title: "Modern Broom Finish Driveway", Location: "Puyallup, WA"},
	{ID: 2, Category: "Patios", Title: "Stamped Stone Patio", Location: "Orting, WA"},
	{ID: 3, Category: "Stamped", Title: "Decorative Stamped Walkway", Location: "Tacoma, WA"},
	{ID: 4, Category: "Driveways", Title: "Exposed Aggregate Driveway", Location: "Sumner, WA"},
	{ID: 5, Category: "Sidewalks", Title: "Residential Sidewalk System", Location: "Bonney Lake, WA"},
	{ID: 6, Category: "Commercial", Title: "Commercial Parking Area", Location: "Kent, WA"},
	{ID: 7, Category: "Patios", Title: "Backyard Entertainment Patio", Location: "Auburn, WA"},
	{ID: 8, Category: "Stamped", Title: "Stamped Concrete Steps", Location: "Federal Way, WA"},
	{ID: 9, Category: "Driveways", Title: "Custom Colored Driveway", Location: "Renton, WA"},
	{ID: 10, Category: "Commercial", Title: "Warehouse Floor Installation", Location: "Fife, WA"},
	{ID: 11, Category: "Patios", Title: "Pool Deck & Patio", Location: "Lake Tapps, WA"},
	{ID: 12, Category: "Sidewalks", Title: "ADA-Compliant Walkway", Location: "University Place, WA"},
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(projectItems)
	require.NoError(t, err)
	return c
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func selectedID(b *Browser) int {
	it, ok := b.Selected()
	if !ok {
		return 0
	}
	return it.ID
}

func TestNewCatalogRejectsBadItems(t *testing.T) {
	_, err := NewCatalog([]Item{{ID: 1, Category: "Patios"}, {ID: 1, Category: "Patios"}})
	assert.Error(t, err, "duplicate id")

	_, err = NewCatalog([]Item{{ID: 0, Category: "Patios"}})
	assert.Error(t, err, "zero id")

	_, err = NewCatalog([]Item{{ID: 1, Category: AllCategories}})
	assert.Error(t, err, "reserved category")
}

func TestCategories(t *testing.T) {
	c := testCatalog(t)
	want := []string{"All", "Driveways", "Patios", "Stamped", "Sidewalks", "Commercial"}
	if diff := cmp.Diff(want, c.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestSetFilterMatchesCategoryInOrder(t *testing.T) {
	c := testCatalog(t)
	for _, cat := range c.Categories()[1:] {
		b := NewBrowser(c)
		b.SetFilter(cat)

		var want []int
		for _, it := range projectItems {
			if it.Category == cat {
				want = append(want, it.ID)
			}
		}
		assert.Equal(t, want, ids(b.View()), "category %s", cat)
		assert.Equal(t, cat, b.Category())
	}
}

func TestSetFilterAllIsWholeCatalog(t *testing.T) {
	c := testCatalog(t)
	b := NewBrowser(c)
	b.SetFilter("Patios")
	b.SetFilter(AllCategories)
	if diff := cmp.Diff(projectItems, b.View()); diff != "" {
		t.Errorf("view mismatch (-want +got):\n%s", diff)
	}
}

func TestSetFilterUnknownIsNoop(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.SetFilter("Stamped")
	b.Open(3)

	b.SetFilter("Fences")
	b.SetFilter("")
	b.SetFilter("stamped")

	assert.Equal(t, "Stamped", b.Category())
	assert.Equal(t, []int{3, 8}, ids(b.View()))
	assert.Equal(t, 3, selectedID(b))
	assert.NotContains(t, b.Catalog().Categories(), "Fences")
}

func TestStampedScenario(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.SetFilter("Stamped")
	require.Equal(t, []int{3, 8}, ids(b.View()))

	b.Open(3)
	b.Next()
	assert.Equal(t, 8, selectedID(b))
	b.Next()
	assert.Equal(t, 3, selectedID(b))
}

func TestPreviousInFullCatalog(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.SetFilter(AllCategories)
	b.Open(6)
	b.Previous()
	assert.Equal(t, 5, selectedID(b))
}

func TestWraparoundAtEnds(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.Open(12)
	b.Next()
	assert.Equal(t, 1, selectedID(b))
	b.Previous()
	assert.Equal(t, 12, selectedID(b))
}

func TestNextCycleReturnsToStart(t *testing.T) {
	c := testCatalog(t)
	for _, cat := range c.Categories() {
		for _, start := range c.Filter(cat) {
			b := NewBrowser(c)
			b.SetFilter(cat)
			b.Open(start.ID)
			for i := 0; i < len(b.View()); i++ {
				b.Next()
			}
			assert.Equal(t, start.ID, selectedID(b), "category %s start %d", cat, start.ID)
		}
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	c := testCatalog(t)
	for _, cat := range c.Categories() {
		for _, start := range c.Filter(cat) {
			b := NewBrowser(c)
			b.SetFilter(cat)
			b.Open(start.ID)

			b.Next()
			b.Previous()
			assert.Equal(t, start.ID, selectedID(b))

			b.Previous()
			b.Next()
			assert.Equal(t, start.ID, selectedID(b))
		}
	}
}

func TestOpenOutsideViewIsNoop(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.SetFilter("Patios")

	b.Open(1)
	assert.False(t, b.IsOpen())

	b.Open(7)
	b.Open(3)
	b.Open(99)
	assert.Equal(t, 7, selectedID(b))
}

func TestCloseAlwaysCloses(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.Close()
	assert.False(t, b.IsOpen())

	for _, it := range projectItems {
		b.Open(it.ID)
		b.Close()
		assert.False(t, b.IsOpen())
		assert.False(t, b.Snapshot().Viewer.Open)
	}
}

func TestNavigationWhileClosedIsNoop(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.Next()
	b.Previous()
	assert.False(t, b.IsOpen())
}

func TestSingleItemViewNavigationIsNoop(t *testing.T) {
	c, err := NewCatalog([]Item{
		{ID: 1, Category: "Driveways", Title: "A"},
		{ID: 2, Category: "Patios", Title: "B"},
	})
	require.NoError(t, err)

	b := NewBrowser(c)
	b.SetFilter("Patios")
	b.Open(2)
	b.Next()
	assert.Equal(t, 2, selectedID(b))
	b.Previous()
	assert.Equal(t, 2, selectedID(b))
}

func TestFilterChangeClosesViewerWhenSelectionLeavesView(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.Open(3)
	b.SetFilter("Driveways")
	assert.False(t, b.IsOpen())
}

func TestFilterChangeKeepsVisibleSelection(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.Open(8)
	b.SetFilter("Stamped")
	assert.Equal(t, 8, selectedID(b))
	b.Next()
	assert.Equal(t, 3, selectedID(b))
}

func TestSnapshot(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	b.SetFilter("Stamped")
	b.Open(8)

	snap := b.Snapshot()
	assert.Equal(t, "Stamped", snap.Category)
	assert.Equal(t, []int{3, 8}, ids(snap.Items))
	require.True(t, snap.Viewer.Open)
	require.NotNil(t, snap.Viewer.Item)
	assert.Equal(t, "Stamped Concrete Steps", snap.Viewer.Item.Title)
	assert.Equal(t, 2, snap.Viewer.Position)
	assert.Equal(t, 2, snap.Viewer.Total)

	b.Close()
	snap = b.Snapshot()
	assert.False(t, snap.Viewer.Open)
	assert.Nil(t, snap.Viewer.Item)
	assert.Zero(t, snap.Viewer.Position)
}

func TestSubscribeReceivesEveryOperation(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	var got []Snapshot
	unsubscribe := b.Subscribe(func(s Snapshot) { got = append(got, s) })

	b.SetFilter("Stamped")
	b.Open(3)
	b.Next()
	b.Close()
	require.Len(t, got, 4)

	assert.Equal(t, "Stamped", got[0].Category)
	assert.False(t, got[0].Viewer.Open)
	assert.Equal(t, 3, got[1].Viewer.Item.ID)
	assert.Equal(t, 8, got[2].Viewer.Item.ID)
	assert.False(t, got[3].Viewer.Open)

	unsubscribe()
	b.Open(3)
	assert.Len(t, got, 4)
}

func TestViewIsACopy(t *testing.T) {
	b := NewBrowser(testCatalog(t))
	v := b.View()
	v[0].Title = "changed"
	assert.Equal(t, "Modern Broom Finish Driveway", b.View()[0].Title)
}
