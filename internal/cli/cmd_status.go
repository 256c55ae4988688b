package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type statusResult struct {
	Version      string `json:"version"`
	ConfigPath   string `json:"config_path"`
	ConfigExists bool   `json:"config_exists"`
	HomeReadable bool   `json:"home_readable"`
	SnippetCount int    `json:"snippet_count"`
	AppURL       string `json:"app_url"`
	ServeAddr    string `json:"serve_addr"`
}

func cmdStatus(w, wErr io.Writer, gf GlobalFlags, args []string, version string) int {
	const usage = "Usage: embedkit status [--json]"
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

	result := statusResult{
		Version:      svc.Version,
		ConfigPath:   svc.Config.Paths.ConfigPath,
		HomeReadable: isReadable(svc.Config.Paths.Home),
		SnippetCount: svc.Catalog.Len(),
		AppURL:       svc.Config.Embed.AppURL,
		ServeAddr:    svc.Config.Serve.Addr,
	}
	if _, err := os.Stat(svc.Config.Paths.ConfigPath); err == nil {
		result.ConfigExists = true
	}

	if gf.JSON {
		PrintJSON(w, result, version)
		return ExitOK
	}

	PrintHuman(w, func(w io.Writer) {
		fmt.Fprintf(w, "embedkit %s\n", result.Version)
		fmt.Fprintf(w, "  config:   %s (%s)\n", result.ConfigPath, existsStatus(result.ConfigExists))
		fmt.Fprintf(w, "  home:     %s\n", boolStatus(result.HomeReadable))
		fmt.Fprintf(w, "  snippets: %d\n", result.SnippetCount)
		fmt.Fprintf(w, "  app url:  %s\n", result.AppURL)
		fmt.Fprintf(w, "  serve:    %s\n", result.ServeAddr)
	})
	return ExitOK
}

func boolStatus(ok bool) string {
	if ok {
		return "ok"
	}
	return "unavailable"
}

func existsStatus(ok bool) string {
	if ok {
		return "present"
	}
	return "defaults"
}

func isReadable(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
