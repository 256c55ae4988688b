package messages

import (
	"github.com/footprintcalc/embedkit/internal/config"
)

// PaneType identifies the focused pane
type PaneType int

const (
	PaneBrowser PaneType = iota
	PaneGenerator
)

// CopySnippet requests copying a catalog snippet to the clipboard.
type CopySnippet struct {
	SnippetID string
}

// CopyText requests copying freeform text (generator output) to the clipboard.
type CopyText struct {
	Label string
	Text  string
}

// SnippetCopied is sent when a snippet was written to the clipboard.
type SnippetCopied struct {
	SnippetID string
}

// CopyFailed is sent when a clipboard write or lookup failed.
type CopyFailed struct {
	SnippetID string
	Err       error
}

// NotificationChanged reports a copied-badge visibility change.
type NotificationChanged struct {
	NoteID  string
	Visible bool
}

// ConfigReloaded delivers the freshly loaded configuration.
type ConfigReloaded struct {
	Config *config.Config
	Err    error
}

// Error represents an application error
type Error struct {
	Err     error
	Context string
	Logged  bool
}

func (e Error) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ShowGenerator requests opening the generator form.
type ShowGenerator struct{}

// CloseGenerator requests closing the generator form.
type CloseGenerator struct{}
