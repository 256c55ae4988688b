package app

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/footprintcalc/embedkit/internal/copier"
	"github.com/footprintcalc/embedkit/internal/logging"
	"github.com/footprintcalc/embedkit/internal/messages"
	"github.com/footprintcalc/embedkit/internal/snippet"
	"github.com/footprintcalc/embedkit/internal/ui/common"
)

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layoutPanes()

	case tea.KeyPressMsg:
		if cmd, handled := a.handleGlobalKey(msg); handled {
			return a, cmd
		}
		return a, a.routeToFocused(msg)

	case tea.MouseClickMsg, tea.MouseWheelMsg:
		return a, a.routeToFocused(msg)

	case messages.CopySnippet:
		return a, a.copySnippet(msg.SnippetID)

	case messages.SnippetCopied:
		cmds = append(cmds, a.toast.ShowSuccess("Copied "+msg.SnippetID))

	case messages.CopyFailed:
		cmds = append(cmds, a.handleCopyFailed(msg))

	case messages.CopyText:
		return a, a.copyText(msg)

	case messages.NotificationChanged:
		a.browser, _ = a.browser.Update(msg)

	case messages.ShowGenerator:
		a.setFocus(messages.PaneGenerator)

	case messages.CloseGenerator:
		a.setFocus(messages.PaneBrowser)

	case messages.ConfigReloaded:
		cmds = append(cmds, a.applyConfigReload(msg))

	case common.ToastDismissed:
		a.toast, _ = a.toast.Update(msg)

	case messages.Error:
		if !msg.Logged {
			logging.Error("%v", msg.Err)
		}
		cmds = append(cmds, a.toast.ShowError(msg.Error()))
	}

	return a, common.SafeBatch(cmds...)
}

// handleGlobalKey handles keys that work regardless of the focused pane.
// The generator owns most keys while focused so text input stays usable.
func (a *App) handleGlobalKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		a.quitting = true
		return tea.Quit, true
	}

	if a.focusedPane == messages.PaneGenerator {
		return nil, false
	}

	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("q"))):
		a.quitting = true
		return tea.Quit, true
	case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
		a.setFocus(messages.PaneGenerator)
		return nil, true
	}
	return nil, false
}

func (a *App) routeToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focusedPane {
	case messages.PaneGenerator:
		a.generator, cmd = a.generator.Update(msg)
	default:
		a.browser, cmd = a.browser.Update(msg)
	}
	return common.SafeCmd(cmd)
}

func (a *App) setFocus(pane messages.PaneType) {
	a.focusedPane = pane
	if pane == messages.PaneGenerator {
		a.browser.Blur()
		a.generator.Focus()
	} else {
		a.generator.Blur()
		a.browser.Focus()
	}
}

// copySnippet runs the copier off the UI loop.
func (a *App) copySnippet(id string) tea.Cmd {
	return common.SafeCmd(func() tea.Msg {
		if err := a.copier.Copy(id); err != nil {
			return messages.CopyFailed{SnippetID: id, Err: err}
		}
		return messages.SnippetCopied{SnippetID: id}
	})
}

func (a *App) handleCopyFailed(msg messages.CopyFailed) tea.Cmd {
	logging.Warn("copy %s failed: %v", msg.SnippetID, msg.Err)
	switch {
	case errors.Is(msg.Err, copier.ErrUnknownSnippet):
		return a.toast.ShowWarning("Unknown snippet: " + msg.SnippetID)
	case errors.Is(msg.Err, copier.ErrClipboardWrite):
		return a.toast.ShowError("Clipboard unavailable")
	default:
		return a.toast.ShowError(msg.Err.Error())
	}
}

// copyText writes generator output straight to the clipboard.
func (a *App) copyText(msg messages.CopyText) tea.Cmd {
	if msg.Text == "" {
		return a.toast.ShowInfo("Nothing to copy")
	}
	return common.SafeCmd(func() tea.Msg {
		if err := a.clip.WriteText(msg.Text); err != nil {
			return messages.Error{Err: fmt.Errorf("clipboard error: %v", err), Context: "clipboard"}
		}
		return messages.SnippetCopied{SnippetID: msg.Label}
	})
}

// applyConfigReload swaps in the freshly loaded configuration.
func (a *App) applyConfigReload(msg messages.ConfigReloaded) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("config reload failed: %v", msg.Err)
		return a.toast.ShowError("Config reload failed")
	}
	a.config = msg.Config
	catalog := snippet.NewCatalog(msg.Config.Embed)
	a.catalog.set(catalog)
	a.browser.SetSnippets(catalog.All())
	a.generator.SetOptions(msg.Config.Embed)
	logging.Info("config reloaded from %s", msg.Config.Paths.ConfigPath)
	return a.toast.ShowInfo("Config reloaded")
}

func (a *App) layoutPanes() {
	paneWidth := a.width
	paneHeight := a.height - 2
	if paneHeight < 3 {
		paneHeight = 3
	}
	a.browser.SetSize(paneWidth, paneHeight)
	a.generator.SetSize(paneWidth, paneHeight)
}
