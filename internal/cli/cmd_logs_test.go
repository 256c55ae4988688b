package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLogFile(t *testing.T, home string, lines []string) string {
	t.Helper()
	logDir := filepath.Join(home, ".embedkit", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(logDir, "embedkit-2026-08-31.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCmdLogsTail(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeLogFile(t, home, []string{"line1", "line2", "line3"})

	var out, errOut bytes.Buffer
	code := cmdLogs(&out, &errOut, GlobalFlags{}, []string{"tail", "--lines", "2"}, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errOut.String())
	}
	got := strings.TrimSpace(out.String())
	if got != "line2\nline3" {
		t.Fatalf("tail output = %q", got)
	}
}

func TestCmdLogsTailJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeLogFile(t, home, []string{"a", "b"})

	var out, errOut bytes.Buffer
	code := cmdLogs(&out, &errOut, GlobalFlags{JSON: true}, []string{"tail"}, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	data, _ := env.Data.(map[string]interface{})
	if data["count"] != float64(2) {
		t.Fatalf("count = %v", data["count"])
	}
}

func TestCmdLogsMissingFile(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdLogs(&out, &errOut, GlobalFlags{}, []string{"tail"}, "dev")
	if code != ExitNotFound {
		t.Fatalf("exit = %d, want %d", code, ExitNotFound)
	}
}

func TestCmdLogsUsage(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	if code := cmdLogs(&out, &errOut, GlobalFlags{}, nil, "dev"); code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	if code := cmdLogs(&out, &errOut, GlobalFlags{}, []string{"tail", "--lines", "-1"}, "dev"); code != ExitUsage {
		t.Fatalf("negative lines exit = %d, want %d", code, ExitUsage)
	}
}
