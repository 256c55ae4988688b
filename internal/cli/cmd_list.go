package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func cmdList(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit list [--json]"
	if len(args) > 0 {
		return returnUsageError(
			w,
			wErr,
			gf,
			usage,
			version,
			fmt.Errorf("unexpected arguments: %s", strings.Join(args, " ")),
		)
	}

	svc, err := NewServices(version)
	if err != nil {
		if gf.JSON {
			ReturnError(w, "init_failed", err.Error(), nil, version)
		} else {
			Errorf(wErr, "failed to initialize: %v", err)
		}
		return ExitInternalError
	}

	snippets := svc.Catalog.All()

	if gf.JSON {
		PrintJSON(w, snippets, version)
		return ExitOK
	}

	idWidth := 0
	for _, sn := range snippets {
		if w := runewidth.StringWidth(sn.ID); w > idWidth {
			idWidth = w
		}
	}

	PrintHuman(w, func(w io.Writer) {
		for _, sn := range snippets {
			fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(sn.ID, idWidth), sn.Title)
		}
	})
	return ExitOK
}
