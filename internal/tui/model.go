// Package tui is a terminal rendition of the project gallery. It drives the
// same gallery.Browser as the website and redraws from the snapshots the
// browser publishes.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackstone-contractors/website/internal/gallery"
)

// columns is the number of cards per grid row.
const columns = 3

// Model is the bubbletea model of the gallery viewer.
type Model struct {
	browser     *gallery.Browser
	snap        gallery.Snapshot
	cursor      int
	styles      Styles
	unsubscribe func()
}

// New returns a viewer over b. The model keeps its own copy of the latest
// snapshot, refreshed through b.Subscribe.
func New(b *gallery.Browser) *Model {
	m := &Model{
		browser: b,
		snap:    b.Snapshot(),
		styles:  DefaultStyles(),
	}
	m.unsubscribe = b.Subscribe(m.onSnapshot)
	return m
}

// Run starts the viewer full screen and blocks until the user quits.
func Run(b *gallery.Browser) error {
	m := New(b)
	defer m.unsubscribe()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running gallery viewer: %w", err)
	}
	return nil
}

func (m *Model) onSnapshot(s gallery.Snapshot) {
	m.snap = s
	if s.Viewer.Open {
		m.cursor = s.Viewer.Position - 1
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snap.Items) {
		m.cursor = len(m.snap.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Snapshot returns the state the model last drew.
func (m *Model) Snapshot() gallery.Snapshot { return m.snap }

// Cursor returns the highlighted grid position.
func (m *Model) Cursor() int { return m.cursor }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	open := m.snap.Viewer.Open
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "esc":
		if open {
			m.browser.Close()
		}
	case "enter":
		if !open && len(m.snap.Items) > 0 {
			m.browser.Open(m.snap.Items[m.cursor].ID)
		}
	case "right", "l":
		if open {
			m.browser.Next()
		} else {
			m.moveCursor(1)
		}
	case "left", "h":
		if open {
			m.browser.Previous()
		} else {
			m.moveCursor(-1)
		}
	case "down", "j":
		if !open {
			m.moveCursor(columns)
		}
	case "up", "k":
		if !open {
			m.moveCursor(-columns)
		}
	case "tab":
		m.cycleCategory(1)
	case "shift+tab":
		m.cycleCategory(-1)
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) cycleCategory(delta int) {
	cats := m.snap.Categories
	if len(cats) == 0 {
		return
	}
	cur := 0
	for i, c := range cats {
		if c == m.snap.Category {
			cur = i
			break
		}
	}
	next := (cur + delta + len(cats)) % len(cats)
	if !m.snap.Viewer.Open {
		m.cursor = 0
	}
	m.browser.SetFilter(cats[next])
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Our Work"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.snap.Viewer.Open {
		b.WriteString(m.renderLightbox())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("←/→ previous/next • tab category • esc close • q quit"))
		return b.String()
	}

	if len(m.snap.Items) == 0 {
		b.WriteString(m.styles.Location.Render("No projects in this category."))
	} else {
		b.WriteString(m.renderGrid())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("arrows move • enter open • tab/shift+tab category • q quit"))
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(m.snap.Categories))
	for _, c := range m.snap.Categories {
		if c == m.snap.Category {
			tabs = append(tabs, m.styles.ActiveTab.Render(c))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderGrid() string {
	var rows []string
	for start := 0; start < len(m.snap.Items); start += columns {
		end := start + columns
		if end > len(m.snap.Items) {
			end = len(m.snap.Items)
		}
		cards := make([]string, 0, columns)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCard(i int) string {
	it := m.snap.Items[i]
	body := m.styles.Category.Render(it.Category) + "\n" +
		it.Title + "\n" +
		m.styles.Location.Render(it.Location)
	if i == m.cursor {
		return m.styles.Cursor.Render(body)
	}
	return m.styles.Card.Render(body)
}

func (m *Model) renderLightbox() string {
	v := m.snap.Viewer
	it := v.Item
	body := m.styles.Category.Render(it.Category) + "\n\n" +
		lipgloss.NewStyle().Bold(true).Render(it.Title) + "\n" +
		m.styles.Location.Render(it.Location) + "\n\n" +
		m.styles.Counter.Render(fmt.Sprintf("%d / %d", v.Position, v.Total))
	return m.styles.Lightbox.Render(body)
}
