package copier

import "errors"

var (
	// ErrUnknownSnippet means the requested snippet ID is not in the catalog.
	// A caller-programming error: safe to ignore, must never crash the UI.
	ErrUnknownSnippet = errors.New("unknown snippet")

	// ErrClipboardWrite means the host clipboard rejected the write.
	// The acknowledgment is skipped; callers may log and move on.
	ErrClipboardWrite = errors.New("clipboard write failed")
)
