// Package cli implements the headless command surface. Every command writes
// either human-readable text or a versioned JSON envelope and returns a
// process exit code.
package cli

import (
	"fmt"
	"io"
	"os"
)

// GlobalFlags holds flags that apply to all subcommands.
type GlobalFlags struct {
	JSON      bool
	NoColor   bool
	Quiet     bool
	RequestID string
}

// Run is the CLI entry point. Returns an exit code.
func Run(args []string, version, commit, date string) int {
	gf, rest, err := ParseGlobalFlags(args)
	w := os.Stdout
	wErr := os.Stderr
	setResponseContext(gf.RequestID, commandFromArgs(rest))
	defer clearResponseContext()
	if err != nil {
		if gf.JSON {
			ReturnError(w, "usage_error", err.Error(), nil, version)
		} else {
			Errorf(wErr, "%v", err)
		}
		return ExitUsage
	}

	if len(rest) == 0 {
		if gf.JSON {
			ReturnError(w, "usage_error", "Usage: embedkit <command> [flags]", nil, version)
		} else {
			PrintUsage(wErr)
		}
		return ExitUsage
	}

	cmd := rest[0]
	cmdArgs := rest[1:]

	switch cmd {
	case "list", "ls":
		return cmdList(w, wErr, gf, cmdArgs, version)
	case "show":
		return cmdShow(w, wErr, gf, cmdArgs, version)
	case "copy":
		return cmdCopy(w, wErr, gf, cmdArgs, version)
	case "generate":
		return cmdGenerate(w, wErr, gf, cmdArgs, version)
	case "serve":
		return cmdServe(w, wErr, gf, cmdArgs, version)
	case "status":
		return cmdStatus(w, wErr, gf, cmdArgs, version)
	case "logs":
		return cmdLogs(w, wErr, gf, cmdArgs, version)
	case "version":
		if gf.JSON {
			PrintJSON(w, map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
			}, version)
			return ExitOK
		}
		fmt.Fprintf(w, "embedkit %s (commit: %s, built: %s)\n", version, commit, date)
		return ExitOK
	case "help":
		if gf.JSON {
			PrintJSON(w, map[string]string{
				"usage": usageText(),
			}, version)
			return ExitOK
		}
		PrintUsage(w)
		return ExitOK
	default:
		if gf.JSON {
			ReturnError(w, "unknown_command", "Unknown command: "+cmd, nil, version)
		} else {
			fmt.Fprintf(wErr, "Unknown command: %s\n\n", cmd)
			PrintUsage(wErr)
		}
		return ExitUsage
	}
}

// PrintUsage writes CLI help text.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, usageText())
}

func usageText() string {
	return `Usage: embedkit <command> [flags]

Commands:
  list                List the built-in embed snippets
  show <id>           Print a snippet's embed code
  copy <id>           Copy a snippet's embed code to the clipboard
  generate            Generate a custom embed snippet
  serve               Serve the embed documentation page over HTTP
  status              Health check and summary
  logs tail           Tail the embedkit log file
  version             Print version info
  help                Show this help
  tui                 Launch TUI (default when TTY)

Global Flags:
  --json              Output as JSON envelope
  --request-id <id>   Caller-provided request correlation ID
  --no-color          Disable color output
  --quiet, -q         Suppress non-essential output
`
}

func commandFromArgs(args []string) string {
	if len(args) == 0 {
		return ""
	}
	cmd := args[0]
	if cmd == "logs" && len(args) >= 2 {
		return cmd + " " + args[1]
	}
	return cmd
}
