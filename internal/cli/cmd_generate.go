package cli

import (
	"fmt"
	"io"

	"github.com/footprintcalc/embedkit/internal/snippet"
)

type generateResult struct {
	Options snippet.Options `json:"options"`
	Format  string          `json:"format"`
	Code    string          `json:"code"`
}

func cmdGenerate(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit generate [--url URL] [--width N] [--height N] [--theme light|dark] [--no-branding] [--format iframe|responsive|script] [--json]"

	svc, err := NewServices(version)
	if err != nil {
		if gf.JSON {
			ReturnError(w, "init_failed", err.Error(), nil, version)
		} else {
			Errorf(wErr, "failed to initialize: %v", err)
		}
		return ExitInternalError
	}

	defaults := svc.Config.Embed

	fs := newFlagSet("generate")
	url := fs.String("url", defaults.AppURL, "hosted calculator URL")
	width := fs.Int("width", defaults.Width, "iframe width in pixels")
	height := fs.Int("height", defaults.Height, "iframe height in pixels")
	theme := fs.String("theme", defaults.Theme, "color theme (light or dark)")
	noBranding := fs.Bool("no-branding", !defaults.ShowBranding, "hide the calculator branding")
	format := fs.String("format", "iframe", "snippet format (iframe, responsive, or script)")
	if err := fs.Parse(args); err != nil {
		return returnUsageError(w, wErr, gf, usage, version, err)
	}
	if fs.NArg() > 0 {
		return returnUsageError(w, wErr, gf, usage, version,
			fmt.Errorf("unexpected arguments: %v", fs.Args()))
	}

	opts := snippet.Options{
		AppURL:       *url,
		Width:        *width,
		Height:       *height,
		Theme:        *theme,
		ShowBranding: !*noBranding,
	}
	if err := opts.Validate(); err != nil {
		if gf.JSON {
			ReturnError(w, "invalid_options", err.Error(), map[string]any{"options": opts}, version)
		} else {
			Errorf(wErr, "%v", err)
		}
		return ExitUsage
	}

	var code string
	switch *format {
	case "iframe":
		code = snippet.IframeCode(opts)
	case "responsive":
		code = snippet.ResponsiveIframeCode(opts)
	case "script":
		code = snippet.ScriptCode(opts)
	default:
		return returnUsageError(w, wErr, gf, usage, version,
			fmt.Errorf("invalid --format value: %s", *format))
	}

	if gf.JSON {
		PrintJSON(w, generateResult{Options: opts, Format: *format, Code: code}, version)
		return ExitOK
	}

	PrintHuman(w, func(w io.Writer) {
		fmt.Fprintln(w, code)
	})
	return ExitOK
}
