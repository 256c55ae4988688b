package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/footprintcalc/embedkit/internal/clipboard"
	"github.com/footprintcalc/embedkit/internal/copier"
)

// newClipboard is swapped out in tests.
var newClipboard = func() copier.Clipboard { return clipboard.System{} }

type copyResult struct {
	SnippetID      string `json:"snippet_id"`
	NotificationID string `json:"notification_id"`
	HideAfterMS    int64  `json:"hide_after_ms"`
}

func cmdCopy(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit copy <snippet-id> [--json]"
	if len(args) != 1 {
		return returnUsageError(w, wErr, gf, usage, version, nil)
	}
	id := args[0]

	svc, err := NewServices(version)
	if err != nil {
		if gf.JSON {
			ReturnError(w, "init_failed", err.Error(), nil, version)
		} else {
			Errorf(wErr, "failed to initialize: %v", err)
		}
		return ExitInternalError
	}

	cp := copier.New(svc.Catalog, newClipboard())
	if err := cp.Copy(id); err != nil {
		switch {
		case errors.Is(err, copier.ErrUnknownSnippet):
			if gf.JSON {
				ReturnError(w, "snippet_not_found", err.Error(),
					map[string]any{"known": svc.Catalog.IDs()}, version)
			} else {
				Errorf(wErr, "%v", err)
			}
			return ExitNotFound
		case errors.Is(err, copier.ErrClipboardWrite):
			if gf.JSON {
				ReturnError(w, "clipboard_failed", err.Error(), nil, version)
			} else {
				Errorf(wErr, "%v", err)
			}
			return ExitClipboard
		default:
			if gf.JSON {
				ReturnError(w, "copy_failed", err.Error(), nil, version)
			} else {
				Errorf(wErr, "%v", err)
			}
			return ExitInternalError
		}
	}

	result := copyResult{
		SnippetID:      id,
		NotificationID: copier.NoteID(id),
		HideAfterMS:    copier.HideDelay.Milliseconds(),
	}

	if gf.JSON {
		PrintJSON(w, result, version)
		return ExitOK
	}

	if !gf.Quiet {
		PrintHuman(w, func(w io.Writer) {
			fmt.Fprintf(w, "Copied %s to clipboard\n", id)
		})
	}
	return ExitOK
}
