// Package app wires the TUI together: configuration, the snippet catalog,
// the clipboard copier, and the panes.
package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/footprintcalc/embedkit/internal/clipboard"
	"github.com/footprintcalc/embedkit/internal/config"
	"github.com/footprintcalc/embedkit/internal/copier"
	"github.com/footprintcalc/embedkit/internal/logging"
	"github.com/footprintcalc/embedkit/internal/messages"
	"github.com/footprintcalc/embedkit/internal/safego"
	"github.com/footprintcalc/embedkit/internal/snippet"
	"github.com/footprintcalc/embedkit/internal/ui/browser"
	"github.com/footprintcalc/embedkit/internal/ui/common"
	"github.com/footprintcalc/embedkit/internal/ui/generator"
	"github.com/footprintcalc/embedkit/internal/watch"
)

// catalogRef is the copier's view of the current catalog. The catalog is
// rebuilt on config reload, so lookups go through a swappable reference.
type catalogRef struct {
	mu      sync.RWMutex
	catalog *snippet.Catalog
}

func (r *catalogRef) set(c *snippet.Catalog) {
	r.mu.Lock()
	r.catalog = c
	r.mu.Unlock()
}

func (r *catalogRef) get() *snippet.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog
}

func (r *catalogRef) SnippetText(id string) (string, bool) {
	return r.get().SnippetText(id)
}

// App is the root Bubbletea model
type App struct {
	version string

	// Configuration
	config  *config.Config
	catalog *catalogRef

	// Clipboard
	clip   copier.Clipboard
	copier *copier.Copier

	// UI components
	browser   *browser.Model
	generator *generator.Model
	toast     *common.ToastModel

	// State
	focusedPane messages.PaneType
	quitting    bool
	ready       bool

	// Config watching
	watcher       *watch.ConfigWatcher
	watcherCancel context.CancelFunc

	// External message pump
	externalMu     sync.Mutex
	externalMsgs   chan tea.Msg
	externalClosed bool
	externalSender func(tea.Msg)
	externalOnce   sync.Once

	// Layout
	width, height int
	styles        common.Styles
}

// New creates the root application model.
func New(version string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return newApp(version, cfg, clipboard.System{}), nil
}

func newApp(version string, cfg *config.Config, clip copier.Clipboard) *App {
	catalog := snippet.NewCatalog(cfg.Embed)
	ref := &catalogRef{catalog: catalog}

	a := &App{
		version:     version,
		config:      cfg,
		catalog:     ref,
		clip:        clip,
		browser:     browser.New(catalog.All()),
		generator:   generator.New(cfg.Embed),
		toast:       common.NewToastModel(),
		focusedPane: messages.PaneBrowser,
		styles:      common.DefaultStyles(),
	}
	a.copier = copier.New(ref, clip)
	a.copier.OnChange(func(noteID string, visible bool) {
		a.enqueueExternalMsg(messages.NotificationChanged{NoteID: noteID, Visible: visible})
	})
	a.generator.Blur()
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	a.startConfigWatcher()
	return nil
}

// startConfigWatcher begins watching the config file for edits.
func (a *App) startConfigWatcher() {
	if a.config.Paths == nil {
		return
	}
	w, err := watch.NewConfigWatcher(a.config.Paths.ConfigPath, func(path string) {
		cfg, err := config.Load()
		a.enqueueExternalMsg(messages.ConfigReloaded{Config: cfg, Err: err})
	})
	if err != nil {
		// The TUI works without live reload; log and move on.
		logging.Warn("config watcher unavailable: %v", err)
		return
	}
	a.watcher = w

	ctx, cancel := context.WithCancel(context.Background())
	a.watcherCancel = cancel
	safego.Go("config-watcher", func() {
		_ = w.Run(ctx)
	})
}

// Shutdown releases background resources.
func (a *App) Shutdown() {
	if a.watcherCancel != nil {
		a.watcherCancel()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	a.closeExternalMsgs()
}

// FocusedPane returns the currently focused pane.
func (a *App) FocusedPane() messages.PaneType {
	return a.focusedPane
}
