package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/footprintcalc/embedkit/internal/messages"
	"github.com/footprintcalc/embedkit/internal/ui/common"
)

// View renders the application
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = common.ColorBackground
	view.ForegroundColor = common.ColorForeground

	if a.quitting {
		view.SetContent("Goodbye!\n")
		return view
	}
	if !a.ready {
		view.SetContent("Loading...")
		return view
	}

	var b strings.Builder

	title := a.styles.Title.Render("embedkit") +
		a.styles.Muted.Render("  Carbon Footprint Calculator embeds  ") +
		a.styles.Muted.Render(a.version)
	b.WriteString(title)
	b.WriteString("\n")

	var content string
	if a.focusedPane == messages.PaneGenerator {
		content = a.generator.View()
	} else {
		content = a.browser.View()
	}

	paneHeight := a.height - 3
	if paneHeight < 3 {
		paneHeight = 3
	}
	pane := a.styles.FocusedPane.
		Width(a.width - 2).
		Height(paneHeight).
		Render(content)
	b.WriteString(pane)
	b.WriteString("\n")

	statusLine := a.statusBar()
	b.WriteString(statusLine)

	view.SetContent(b.String())
	return view
}

func (a *App) statusBar() string {
	if a.toast.Visible() {
		return a.toast.View()
	}

	if a.focusedPane == messages.PaneGenerator {
		return common.RenderHelpBar(a.styles, []struct{ Key, Desc string }{
			{"tab", "next field"},
			{"ctrl+y", "copy"},
			{"esc", "back"},
			{"ctrl+c", "quit"},
		}, a.width)
	}
	return common.RenderHelpBar(a.styles, []struct{ Key, Desc string }{
		{"j/k", "nav"},
		{"enter", "copy"},
		{"g", "generator"},
		{"q", "quit"},
	}, a.width)
}
