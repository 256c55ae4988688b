package cli

import (
	"fmt"
	"io"
)

func cmdShow(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit show <snippet-id> [--json]"
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

	sn, ok := svc.Catalog.Get(id)
	if !ok {
		if gf.JSON {
			ReturnError(w, "snippet_not_found", "Unknown snippet: "+id,
				map[string]any{"known": svc.Catalog.IDs()}, version)
		} else {
			Errorf(wErr, "unknown snippet: %s", id)
		}
		return ExitNotFound
	}

	if gf.JSON {
		PrintJSON(w, sn, version)
		return ExitOK
	}

	PrintHuman(w, func(w io.Writer) {
		fmt.Fprintln(w, sn.Content)
	})
	return ExitOK
}
