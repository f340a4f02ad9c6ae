package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackstone-contractors/website/internal/content"
	"github.com/blackstone-contractors/website/internal/gallery"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) (*Model, *gallery.Browser) {
	t.Helper()
	b := gallery.NewBrowser(content.Catalog())
	m := New(b)
	t.Cleanup(m.unsubscribe)
	return m, b
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

func TestGridCursorMovement(t *testing.T) {
	m, _ := newModel(t)

	press(m, "right", "right")
	assert.Equal(t, 2, m.Cursor())

	press(m, "down")
	assert.Equal(t, 5, m.Cursor())

	press(m, "left", "h")
	assert.Equal(t, 3, m.Cursor())

	for i := 0; i < 20; i++ {
		press(m, "l")
	}
	assert.Equal(t, 11, m.Cursor(), "cursor stops at the last card")
}

func TestOpenAndCycle(t *testing.T) {
	m, b := newModel(t)

	press(m, "right", "enter")
	require.True(t, m.Snapshot().Viewer.Open)
	assert.Equal(t, 2, m.Snapshot().Viewer.Item.ID)

	press(m, "right")
	assert.Equal(t, 3, m.Snapshot().Viewer.Item.ID)
	assert.Equal(t, 3, m.Snapshot().Viewer.Position)

	press(m, "left", "left", "left")
	assert.Equal(t, 12, m.Snapshot().Viewer.Item.ID, "previous wraps to the last item")

	press(m, "esc")
	assert.False(t, b.IsOpen())
	assert.Equal(t, 11, m.Cursor(), "grid cursor follows the viewer")
}

func TestCategoryTabs(t *testing.T) {
	m, b := newModel(t)

	press(m, "tab")
	assert.Equal(t, "Driveways", b.Category())
	assert.Len(t, m.Snapshot().Items, 3)

	press(m, "shift+tab", "shift+tab")
	assert.Equal(t, "Commercial", b.Category(), "shift+tab wraps backwards")

	press(m, "tab")
	assert.Equal(t, gallery.AllCategories, b.Category())
}

func TestFilterKeepsViewerWhenSelectionStaysVisible(t *testing.T) {
	m, b := newModel(t)

	press(m, "enter")
	require.True(t, b.IsOpen())

	press(m, "tab")
	assert.True(t, m.Snapshot().Viewer.Open, "item 1 is a driveway")

	press(m, "tab")
	assert.False(t, m.Snapshot().Viewer.Open, "patios filter hides item 1")
}

func TestEnterOnEmptyViewIsIgnored(t *testing.T) {
	b := gallery.NewBrowser(gallery.MustCatalog(nil))
	m := New(b)
	defer m.unsubscribe()

	press(m, "enter")
	assert.False(t, b.IsOpen())
	assert.Contains(t, m.View(), "No projects")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsLightbox(t *testing.T) {
	m, _ := newModel(t)
	assert.Contains(t, m.View(), "Modern Broom Finish Driveway")

	press(m, "enter")
	out := m.View()
	assert.Contains(t, out, "1 / 12")
	assert.Contains(t, out, "Puyallup, WA")
}
