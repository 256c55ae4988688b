package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Layout - Pane borders and structure
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style

	// Text hierarchy
	Title    lipgloss.Style // App name, section headers
	Subtitle lipgloss.Style // Secondary headers
	Body     lipgloss.Style // Normal text
	Muted    lipgloss.Style // De-emphasized text
	Bold     lipgloss.Style // Emphasized text

	// Snippet list
	SnippetRow   lipgloss.Style
	SelectedRow  lipgloss.Style
	CopiedBadge  lipgloss.Style
	SnippetDesc  lipgloss.Style
	PreviewTitle lipgloss.Style
	CodeBlock    lipgloss.Style

	// Generator form
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldError   lipgloss.Style

	// Help bar
	Help          lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the default application styles using Tokyo Night palette
func DefaultStyles() Styles {
	return Styles{
		// Layout - Pane borders
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused).
			Padding(0, 1),

		// Text hierarchy
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Subtitle: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground),

		// Snippet list
		SnippetRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorForeground),

		SelectedRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSelection),

		CopiedBadge: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Background(ColorSuccess).
			Foreground(ColorBackground),

		SnippetDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		PreviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary),

		CodeBlock: lipgloss.NewStyle().
			Foreground(ColorForeground),

		// Generator form
		FieldLabel: lipgloss.NewStyle().
			Foreground(ColorMuted),

		FieldFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		FieldError: lipgloss.NewStyle().
			Foreground(ColorError),

		// Help bar
		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(ColorBorder),

		// Feedback
		Error: lipgloss.NewStyle().
			Foreground(ColorError),

		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),

		Info: lipgloss.NewStyle().
			Foreground(ColorInfo),

		// Toast notifications
		ToastSuccess: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorSuccess).
			Foreground(ColorBackground),

		ToastError: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorError).
			Foreground(ColorBackground),

		ToastWarning: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorWarning).
			Foreground(ColorBackground),

		ToastInfo: lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorInfo).
			Foreground(ColorBackground),
	}
}

// RenderHelpBar renders a help bar with the given key-description pairs
func RenderHelpBar(s Styles, items []struct{ Key, Desc string }, width int) string {
	var parts []string
	for _, item := range items {
		key := s.HelpKey.Render(item.Key)
		desc := s.HelpDesc.Render(item.Desc)
		parts = append(parts, key+":"+desc)
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return s.Help.Width(width).Render(joined)
}
