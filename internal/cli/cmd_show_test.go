package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCmdShowHuman(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdShow(&out, &errOut, GlobalFlags{}, []string{"basic-code"}, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "<iframe") {
		t.Fatalf("expected iframe code, got:\n%s", out.String())
	}
}

func TestCmdShowUnknownSnippet(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdShow(&out, &errOut, GlobalFlags{}, []string{"nope"}, "dev")
	if code != ExitNotFound {
		t.Fatalf("exit = %d, want %d", code, ExitNotFound)
	}
}

func TestCmdShowUnknownSnippetJSON(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdShow(&out, &errOut, GlobalFlags{JSON: true}, []string{"nope"}, "dev")
	if code != ExitNotFound {
		t.Fatalf("exit = %d, want %d", code, ExitNotFound)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.OK || env.Error == nil || env.Error.Code != "snippet_not_found" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestCmdShowUsage(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	if code := cmdShow(&out, &errOut, GlobalFlags{}, nil, "dev"); code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
}
