package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestCmdGenerateDefaults(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdGenerate(&out, &errOut, GlobalFlags{}, nil, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errOut.String())
	}
	got := out.String()
	if !strings.Contains(got, `width="800"`) || !strings.Contains(got, `height="1000"`) {
		t.Fatalf("defaults not applied:\n%s", got)
	}
	if !strings.Contains(got, "your-app-name.replit.app") {
		t.Fatalf("placeholder URL missing:\n%s", got)
	}
}

func TestCmdGenerateCustomOptions(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	args := []string{
		"--url", "https://calc.example.com",
		"--width", "600",
		"--height", "900",
		"--theme", "dark",
		"--no-branding",
		"--format", "script",
	}
	code := cmdGenerate(&out, &errOut, GlobalFlags{}, args, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, errOut.String())
	}
	got := out.String()
	for _, want := range []string{
		"carbon-footprint-calculator",
		"theme=dark",
		"showBranding=false",
		`iframe.width = "600";`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCmdGenerateValidationError(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdGenerate(&out, &errOut, GlobalFlags{JSON: true}, []string{"--width", "9999"}, "dev")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if env.OK || env.Error == nil || env.Error.Code != "invalid_options" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestCmdGenerateBadFormat(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdGenerate(&out, &errOut, GlobalFlags{}, []string{"--format", "png"}, "dev")
	if code != ExitUsage {
		t.Fatalf("exit = %d, want %d", code, ExitUsage)
	}
}

func TestCmdGenerateJSON(t *testing.T) {
	isolateHome(t)
	var out, errOut bytes.Buffer

	code := cmdGenerate(&out, &errOut, GlobalFlags{JSON: true}, []string{"--format", "responsive"}, "dev")
	if code != ExitOK {
		t.Fatalf("exit = %d", code)
	}
	var env Envelope
	if err := json.Unmarshal(out.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	data, _ := env.Data.(map[string]interface{})
	if data["format"] != "responsive" {
		t.Fatalf("format = %v", data["format"])
	}
	if code, _ := data["code"].(string); !strings.Contains(code, `width="100%"`) {
		t.Fatalf("code = %v", data["code"])
	}
}
