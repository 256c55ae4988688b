package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/footprintcalc/embedkit/internal/config"
	"github.com/footprintcalc/embedkit/internal/copier"
	"github.com/footprintcalc/embedkit/internal/messages"
)

type stubClipboard struct {
	texts []string
	err   error
}

func (s *stubClipboard) WriteText(text string) error {
	if s.err != nil {
		return s.err
	}
	s.texts = append(s.texts, text)
	return nil
}

func newTestApp(t *testing.T, clip *stubClipboard) *App {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return newApp("test", cfg, clip)
}

// runCmd executes a command and feeds the resulting message back through
// Update once, the way the Bubbletea runtime would. Follow-up commands
// (toast ticks) are not executed so tests can observe the intermediate state.
func runCmd(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			runCmd(t, a, c)
		}
		return
	}
	a.Update(msg)
}

func TestCopySnippetWritesClipboardAndShowsNotification(t *testing.T) {
	clip := &stubClipboard{}
	a := newTestApp(t, clip)

	_, cmd := a.Update(messages.CopySnippet{SnippetID: "basic-code"})
	runCmd(t, a, cmd)

	if len(clip.texts) != 1 {
		t.Fatalf("clipboard writes = %d, want 1", len(clip.texts))
	}
	if !strings.Contains(clip.texts[0], "<iframe") {
		t.Errorf("copied text should contain an iframe, got %q", clip.texts[0])
	}
	if !a.copier.Visible(copier.NoteID("basic-code")) {
		t.Error("notification should be visible after copy")
	}
	if !a.toast.Visible() {
		t.Error("toast should confirm the copy")
	}

	// The visibility transition reaches the UI through the message pump.
	var saw bool
	for _, msg := range a.pendingExternalMsgs() {
		if nc, ok := msg.(messages.NotificationChanged); ok {
			if nc.NoteID == copier.NoteID("basic-code") && nc.Visible {
				saw = true
			}
			a.Update(nc)
		}
	}
	if !saw {
		t.Error("expected a NotificationChanged message for basic-code")
	}
	if !a.browser.CopiedVisible(copier.NoteID("basic-code")) {
		t.Error("browser badge should be visible after applying the change")
	}
}

func TestCopyUnknownSnippetLeavesClipboardUntouched(t *testing.T) {
	clip := &stubClipboard{}
	a := newTestApp(t, clip)

	_, cmd := a.Update(messages.CopySnippet{SnippetID: "nope"})
	runCmd(t, a, cmd)

	if len(clip.texts) != 0 {
		t.Fatalf("clipboard writes = %d, want 0", len(clip.texts))
	}
	if a.copier.Visible(copier.NoteID("nope")) {
		t.Error("no notification should appear for an unknown snippet")
	}
	if !a.toast.Visible() {
		t.Error("failure should surface as a toast")
	}
}

func TestCopyClipboardFailureShowsNoNotification(t *testing.T) {
	clip := &stubClipboard{err: errors.New("no display")}
	a := newTestApp(t, clip)

	_, cmd := a.Update(messages.CopySnippet{SnippetID: "dark-code"})
	runCmd(t, a, cmd)

	if a.copier.Visible(copier.NoteID("dark-code")) {
		t.Error("notification must stay hidden when the clipboard write fails")
	}
	if len(a.pendingExternalMsgs()) != 0 {
		t.Error("no visibility change should be queued on failure")
	}
}

func TestGeneratorFocusSwitching(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})

	a.Update(messages.ShowGenerator{})
	if a.FocusedPane() != messages.PaneGenerator {
		t.Fatal("generator should be focused after ShowGenerator")
	}
	if a.browser.Focused() {
		t.Error("browser should be blurred while the generator is open")
	}

	a.Update(messages.CloseGenerator{})
	if a.FocusedPane() != messages.PaneBrowser {
		t.Fatal("browser should regain focus after CloseGenerator")
	}
	if !a.browser.Focused() {
		t.Error("browser should be focused again")
	}
}

func TestQuitKeyOnlyQuitsFromBrowser(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})

	a.Update(messages.ShowGenerator{})
	a.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if a.quitting {
		t.Fatal("q inside the generator form should type, not quit")
	}

	a.Update(messages.CloseGenerator{})
	_, cmd := a.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if !a.quitting {
		t.Fatal("q in the browser should quit")
	}
	if cmd == nil {
		t.Fatal("quit should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a QuitMsg")
	}
}

func TestConfigReloadSwapsCatalog(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})

	cfg := *a.config
	cfg.Embed.AppURL = "https://footprint.example.com"
	a.Update(messages.ConfigReloaded{Config: &cfg})

	text, ok := a.catalog.SnippetText("basic-code")
	if !ok {
		t.Fatal("basic-code should survive a reload")
	}
	if !strings.Contains(text, "https://footprint.example.com") {
		t.Errorf("reloaded catalog should use the new URL, got %q", text)
	}
	if !a.toast.Visible() {
		t.Error("reload should be acknowledged with a toast")
	}
}

func TestConfigReloadErrorKeepsCatalog(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})
	before, _ := a.catalog.SnippetText("basic-code")

	a.Update(messages.ConfigReloaded{Err: errors.New("bad json")})

	after, ok := a.catalog.SnippetText("basic-code")
	if !ok || after != before {
		t.Error("a failed reload must leave the catalog unchanged")
	}
}

func TestWindowSizeMakesAppReady(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})
	if a.ready {
		t.Fatal("app should not be ready before the first resize")
	}
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if !a.ready {
		t.Fatal("app should be ready after a resize")
	}
	a.View()
}

func TestNotificationHidesAfterDelay(t *testing.T) {
	clip := &stubClipboard{}
	a := newTestApp(t, clip)

	var fired func()
	a.copier = copier.New(a.catalog, clip, copier.WithTimerFunc(
		func(d time.Duration, fn func()) copier.Timer {
			if d != copier.HideDelay {
				t.Errorf("hide delay = %v, want %v", d, copier.HideDelay)
			}
			fired = fn
			return noopTimer{}
		}))
	a.copier.OnChange(func(noteID string, visible bool) {
		a.enqueueExternalMsg(messages.NotificationChanged{NoteID: noteID, Visible: visible})
	})

	_, cmd := a.Update(messages.CopySnippet{SnippetID: "responsive-code"})
	runCmd(t, a, cmd)
	if !a.copier.Visible(copier.NoteID("responsive-code")) {
		t.Fatal("notification should be visible")
	}

	fired()
	if a.copier.Visible(copier.NoteID("responsive-code")) {
		t.Fatal("notification should hide when the timer fires")
	}
	msgs := a.pendingExternalMsgs()
	last, ok := msgs[len(msgs)-1].(messages.NotificationChanged)
	if !ok || last.Visible {
		t.Errorf("last queued change should be a hide, got %#v", msgs)
	}
}

type noopTimer struct{}

func (noopTimer) Stop() bool { return true }

func TestHideTimerAfterShutdownIsDropped(t *testing.T) {
	clip := &stubClipboard{}
	a := newTestApp(t, clip)

	var fired func()
	a.copier = copier.New(a.catalog, clip, copier.WithTimerFunc(
		func(d time.Duration, fn func()) copier.Timer {
			fired = fn
			return noopTimer{}
		}))
	a.copier.OnChange(func(noteID string, visible bool) {
		a.enqueueExternalMsg(messages.NotificationChanged{NoteID: noteID, Visible: visible})
	})

	_, cmd := a.Update(messages.CopySnippet{SnippetID: "basic-code"})
	runCmd(t, a, cmd)
	a.pendingExternalMsgs()

	a.Shutdown()

	// The hide can land up to the full notification window after the last
	// copy, past a clean quit. It must be dropped, not crash the process.
	fired()

	if msgs := a.pendingExternalMsgs(); len(msgs) != 0 {
		t.Fatalf("messages enqueued after shutdown: %#v", msgs)
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	a := newTestApp(t, &stubClipboard{})
	a.enqueueExternalMsg(messages.SnippetCopied{SnippetID: "basic-code"})
	a.Shutdown()
	a.Shutdown()
}
