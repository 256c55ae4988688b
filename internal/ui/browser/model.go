// Package browser implements the snippet list and preview pane.
package browser

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/footprintcalc/embedkit/internal/copier"
	"github.com/footprintcalc/embedkit/internal/messages"
	"github.com/footprintcalc/embedkit/internal/snippet"
	"github.com/footprintcalc/embedkit/internal/ui/common"
)

// Model is the Bubbletea model for the snippet browser pane
type Model struct {
	// Data
	snippets []snippet.Snippet
	copied   map[string]bool // notification ID -> visible

	// UI state
	cursor       int
	focused      bool
	width        int
	height       int
	scrollOffset int

	// Styles
	styles common.Styles
}

// New creates a new browser model
func New(snippets []snippet.Snippet) *Model {
	return &Model{
		snippets: snippets,
		copied:   make(map[string]bool),
		focused:  true,
		styles:   common.DefaultStyles(),
	}
}

// Init initializes the browser
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		if !m.focused {
			return m, nil
		}
		if msg.Button == tea.MouseWheelUp {
			m.moveCursor(-1)
		}
		if msg.Button == tea.MouseWheelDown {
			m.moveCursor(1)
		}

	case tea.MouseClickMsg:
		if !m.focused {
			return m, nil
		}
		if msg.Button == tea.MouseLeft {
			idx, ok := m.rowIndexAt(msg.X, msg.Y)
			if !ok {
				return m, nil
			}
			if idx == m.cursor {
				// Second click copies, like the web page's buttons.
				return m, m.copySelected()
			}
			m.cursor = idx
		}

	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("j", "down"))):
			m.moveCursor(1)
		case key.Matches(msg, key.NewBinding(key.WithKeys("k", "up"))):
			m.moveCursor(-1)
		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.cursor = len(m.snippets) - 1
		case key.Matches(msg, key.NewBinding(key.WithKeys("home"))):
			m.cursor = 0
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter", "c"))):
			return m, m.copySelected()
		}

	case messages.NotificationChanged:
		if msg.Visible {
			m.copied[msg.NoteID] = true
		} else {
			delete(m.copied, msg.NoteID)
		}
	}

	return m, nil
}

// copySelected requests a copy of the snippet under the cursor.
func (m *Model) copySelected() tea.Cmd {
	sn, ok := m.Selected()
	if !ok {
		return nil
	}
	return func() tea.Msg { return messages.CopySnippet{SnippetID: sn.ID} }
}

// moveCursor moves the cursor by delta, clamping to the list bounds
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.snippets) {
		m.cursor = len(m.snippets) - 1
	}
}

// listWidth is the fixed width of the snippet list column.
const listWidth = 30

// headerLines is the number of lines above the first list row.
const headerLines = 2

// rowIndexAt maps pane-local coordinates to a list row.
func (m *Model) rowIndexAt(x, y int) (int, bool) {
	// Border + padding offset from buildBorderedPane.
	contentX := x - 2
	contentY := y - 1
	if contentX < 0 || contentX >= listWidth {
		return -1, false
	}
	idx := contentY - headerLines + m.scrollOffset
	if idx < 0 || idx >= len(m.snippets) {
		return -1, false
	}
	return idx, true
}

// View renders the browser
func (m *Model) View() string {
	if len(m.snippets) == 0 {
		return m.styles.Muted.Render("No snippets available")
	}

	list := m.renderList()
	preview := m.renderPreview()
	return lipgloss.JoinHorizontal(lipgloss.Top, list, " ", preview)
}

func (m *Model) renderList() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Embed snippets"))
	b.WriteString("\n\n")

	visibleHeight := m.visibleHeight()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visibleHeight {
		m.scrollOffset = m.cursor - visibleHeight + 1
	}

	for i, sn := range m.snippets {
		if i < m.scrollOffset {
			continue
		}
		if i >= m.scrollOffset+visibleHeight {
			break
		}

		style := m.styles.SnippetRow
		if i == m.cursor {
			style = m.styles.SelectedRow
		}
		line := style.Render(sn.Title)
		if m.copied[copier.NoteID(sn.ID)] {
			line += " " + m.styles.CopiedBadge.Render("Copied!")
		}
		b.WriteString(ansi.Truncate(line, listWidth, "…"))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(listWidth).Render(b.String())
}

func (m *Model) renderPreview() string {
	sn, ok := m.Selected()
	if !ok {
		return ""
	}

	previewWidth := m.width - listWidth - 3
	if previewWidth < 10 {
		previewWidth = 10
	}

	var b strings.Builder
	b.WriteString(m.styles.PreviewTitle.Render(sn.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.SnippetDesc.Render(sn.Description))
	b.WriteString("\n\n")
	for _, line := range strings.Split(sn.Content, "\n") {
		b.WriteString(m.styles.CodeBlock.Render(ansi.Truncate(line, previewWidth, "…")))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(previewWidth).Render(b.String())
}

func (m *Model) visibleHeight() int {
	h := m.height - 2 - headerLines
	if h < 1 {
		h = 1
	}
	return h
}

// SetSnippets replaces the snippet list (after a config reload).
func (m *Model) SetSnippets(snippets []snippet.Snippet) {
	m.snippets = snippets
	if m.cursor >= len(m.snippets) {
		m.cursor = len(m.snippets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the snippet under the cursor.
func (m *Model) Selected() (snippet.Snippet, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snippets) {
		return snippet.Snippet{}, false
	}
	return m.snippets[m.cursor], true
}

// CopiedVisible reports whether a copied badge is showing for a notification.
func (m *Model) CopiedVisible(noteID string) bool {
	return m.copied[noteID]
}

// SetSize sets the pane size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetStyles updates the styles (for theme changes).
func (m *Model) SetStyles(styles common.Styles) {
	m.styles = styles
}

// Focus sets the focus state
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes focus
func (m *Model) Blur() {
	m.focused = false
}

// Focused returns whether the browser is focused
func (m *Model) Focused() bool {
	return m.focused
}
