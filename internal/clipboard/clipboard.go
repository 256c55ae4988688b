package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Writer is the host clipboard capability: a single asynchronous-style
// text write that either succeeds or reports why it could not.
type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteText writes text to the system clipboard with a macOS pbcopy fallback.
func (System) WriteText(text string) error {
	// Prioritize pbcopy on macOS as it is more reliable in various environments.
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}

	if clipboard.Unsupported {
		return ErrUnavailable
	}

	// Fallback to library for other OS or if pbcopy fails.
	return clipboard.WriteAll(text)
}
