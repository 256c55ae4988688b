// Package generator implements the custom embed code form.
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/footprintcalc/embedkit/internal/messages"
	"github.com/footprintcalc/embedkit/internal/snippet"
	"github.com/footprintcalc/embedkit/internal/ui/common"
)

type formItem int

const (
	itemURL formItem = iota
	itemWidth
	itemHeight
	itemTheme
	itemBranding
	itemFormat
	itemCount
)

// Format identifies the generated snippet flavor.
type Format int

const (
	FormatIframe Format = iota
	FormatResponsive
	FormatScript
)

func (f Format) String() string {
	switch f {
	case FormatResponsive:
		return "responsive"
	case FormatScript:
		return "script"
	default:
		return "iframe"
	}
}

// Model is the Bubbletea model for the generator form
type Model struct {
	urlInput    textinput.Model
	widthInput  textinput.Model
	heightInput textinput.Model
	theme       string
	branding    bool
	format      Format

	focusedItem   formItem
	validationErr string
	focused       bool
	width         int
	height        int

	styles common.Styles
}

// New creates a generator form seeded with the given options.
func New(opts snippet.Options) *Model {
	urlInput := textinput.New()
	urlInput.Placeholder = snippet.PlaceholderAppURL
	urlInput.SetWidth(40)
	urlInput.SetVirtualCursor(false)
	urlInput.SetValue(strings.TrimSpace(opts.AppURL))

	widthInput := textinput.New()
	widthInput.Placeholder = strconv.Itoa(snippet.DefaultWidth)
	widthInput.SetWidth(6)
	widthInput.SetVirtualCursor(false)
	widthInput.SetValue(strconv.Itoa(opts.Width))

	heightInput := textinput.New()
	heightInput.Placeholder = strconv.Itoa(snippet.DefaultHeight)
	heightInput.SetWidth(6)
	heightInput.SetVirtualCursor(false)
	heightInput.SetValue(strconv.Itoa(opts.Height))

	m := &Model{
		urlInput:    urlInput,
		widthInput:  widthInput,
		heightInput: heightInput,
		theme:       opts.Theme,
		branding:    opts.ShowBranding,
		focusedItem: itemURL,
		styles:      common.DefaultStyles(),
	}
	m.syncInputFocus()
	return m
}

// Init initializes the generator
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	defer m.syncInputFocus()

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			return m, func() tea.Msg { return messages.CloseGenerator{} }
		case key.Matches(msg, key.NewBinding(key.WithKeys("tab", "down"))):
			m.focusedItem = (m.focusedItem + 1) % itemCount
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("shift+tab", "up"))):
			m.focusedItem = (m.focusedItem - 1 + itemCount) % itemCount
			return m, nil
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+y"))):
			return m, m.copyGenerated()
		}

		switch m.focusedItem {
		case itemTheme:
			if isToggleKey(msg) {
				if m.theme == snippet.ThemeLight {
					m.theme = snippet.ThemeDark
				} else {
					m.theme = snippet.ThemeLight
				}
				return m, nil
			}
		case itemBranding:
			if isToggleKey(msg) {
				m.branding = !m.branding
				return m, nil
			}
		case itemFormat:
			if isToggleKey(msg) {
				m.format = (m.format + 1) % 3
				return m, nil
			}
		}

		var cmd tea.Cmd
		switch m.focusedItem {
		case itemURL:
			m.urlInput, cmd = m.urlInput.Update(msg)
		case itemWidth:
			m.widthInput, cmd = m.widthInput.Update(msg)
		case itemHeight:
			m.heightInput, cmd = m.heightInput.Update(msg)
		}
		m.validationErr = ""
		return m, cmd
	}

	return m, nil
}

func isToggleKey(msg tea.KeyPressMsg) bool {
	return key.Matches(msg,
		key.NewBinding(key.WithKeys("enter", "space", "left", "right", "h", "l")))
}

// Options assembles the current form values.
func (m *Model) Options() (snippet.Options, error) {
	width, err := strconv.Atoi(strings.TrimSpace(m.widthInput.Value()))
	if err != nil {
		return snippet.Options{}, fmt.Errorf("width must be a number")
	}
	height, err := strconv.Atoi(strings.TrimSpace(m.heightInput.Value()))
	if err != nil {
		return snippet.Options{}, fmt.Errorf("height must be a number")
	}

	opts := snippet.Options{
		AppURL:       strings.TrimSpace(m.urlInput.Value()),
		Width:        width,
		Height:       height,
		Theme:        m.theme,
		ShowBranding: m.branding,
	}
	if err := opts.Validate(); err != nil {
		return snippet.Options{}, err
	}
	return opts, nil
}

// Generated returns the embed code for the current form values.
func (m *Model) Generated() (string, error) {
	opts, err := m.Options()
	if err != nil {
		return "", err
	}
	switch m.format {
	case FormatResponsive:
		return snippet.ResponsiveIframeCode(opts), nil
	case FormatScript:
		return snippet.ScriptCode(opts), nil
	default:
		return snippet.IframeCode(opts), nil
	}
}

// copyGenerated requests a clipboard copy of the generated code.
func (m *Model) copyGenerated() tea.Cmd {
	code, err := m.Generated()
	if err != nil {
		m.validationErr = err.Error()
		return nil
	}
	label := "custom " + m.format.String() + " embed code"
	return func() tea.Msg { return messages.CopyText{Label: label, Text: code} }
}

// View renders the generator form
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Custom embed code"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(itemURL, "App URL", m.urlInput.View()))
	b.WriteString(m.renderField(itemWidth, "Width", m.widthInput.View()))
	b.WriteString(m.renderField(itemHeight, "Height", m.heightInput.View()))
	b.WriteString(m.renderField(itemTheme, "Theme", m.theme))
	b.WriteString(m.renderField(itemBranding, "Branding", onOff(m.branding)))
	b.WriteString(m.renderField(itemFormat, "Format", m.format.String()))
	b.WriteString("\n")

	if m.validationErr != "" {
		b.WriteString(m.styles.FieldError.Render(m.validationErr))
		b.WriteString("\n\n")
	}

	code, err := m.Generated()
	if err != nil {
		b.WriteString(m.styles.Muted.Render("fix the highlighted field to preview the code"))
	} else {
		previewWidth := m.width - 6
		if previewWidth < 20 {
			previewWidth = 20
		}
		for _, line := range strings.Split(code, "\n") {
			b.WriteString(m.styles.CodeBlock.Render(ansi.Truncate(line, previewWidth, "…")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(common.RenderHelpBar(m.styles, []struct{ Key, Desc string }{
		{"tab", "next field"},
		{"enter", "toggle"},
		{"ctrl+y", "copy"},
		{"esc", "back"},
	}, m.width-4))

	return b.String()
}

func (m *Model) renderField(item formItem, label, value string) string {
	style := m.styles.FieldLabel
	if m.focusedItem == item {
		style = m.styles.FieldFocused
	}
	return style.Render(fmt.Sprintf("%-10s", label)) + " " + value + "\n"
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) syncInputFocus() {
	m.urlInput.Blur()
	m.widthInput.Blur()
	m.heightInput.Blur()
	if !m.focused {
		return
	}
	switch m.focusedItem {
	case itemURL:
		m.urlInput.Focus()
	case itemWidth:
		m.widthInput.Focus()
	case itemHeight:
		m.heightInput.Focus()
	}
}

// SetOptions reseeds the form (after a config reload).
func (m *Model) SetOptions(opts snippet.Options) {
	m.urlInput.SetValue(strings.TrimSpace(opts.AppURL))
	m.widthInput.SetValue(strconv.Itoa(opts.Width))
	m.heightInput.SetValue(strconv.Itoa(opts.Height))
	m.theme = opts.Theme
	m.branding = opts.ShowBranding
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
	m.syncInputFocus()
}

// Blur removes focus
func (m *Model) Blur() {
	m.focused = false
	m.syncInputFocus()
}

// Focused returns whether the generator is focused
func (m *Model) Focused() bool {
	return m.focused
}
