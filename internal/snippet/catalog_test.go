package snippet

import (
	"strings"
	"testing"
)

func TestNewCatalogHasSixSnippets(t *testing.T) {
	c := NewCatalog(DefaultOptions())
	if c.Len() != 6 {
		t.Fatalf("catalog has %d snippets, want 6", c.Len())
	}

	want := []string{
		"basic-code",
		"responsive-code",
		"javascript-code",
		"dark-code",
		"no-branding-code",
		"wordpress-code",
	}
	got := c.IDs()
	if len(got) != len(want) {
		t.Fatalf("IDs() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(DefaultOptions())

	s, ok := c.Get("basic-code")
	if !ok {
		t.Fatal("expected basic-code to exist")
	}
	if s.Title == "" || s.Description == "" {
		t.Fatalf("basic-code missing metadata: %+v", s)
	}

	text, ok := c.SnippetText("basic-code")
	if !ok || text != s.Content {
		t.Fatalf("SnippetText mismatch: %q vs %q", text, s.Content)
	}

	if _, ok := c.Get("nope"); ok {
		t.Fatal("unexpected snippet for unknown ID")
	}
	if _, ok := c.SnippetText("nope"); ok {
		t.Fatal("unexpected text for unknown ID")
	}
}

func TestCatalogUsesConfiguredOptions(t *testing.T) {
	opts := Options{
		AppURL:       "https://calc.example.com",
		Width:        600,
		Height:       900,
		Theme:        ThemeLight,
		ShowBranding: true,
	}
	c := NewCatalog(opts)

	basic, _ := c.SnippetText("basic-code")
	if !strings.Contains(basic, `src="https://calc.example.com?embed=true&theme=light&showBranding=true"`) {
		t.Fatalf("basic-code src wrong:\n%s", basic)
	}
	if !strings.Contains(basic, `width="600"`) || !strings.Contains(basic, `height="900"`) {
		t.Fatalf("basic-code dimensions wrong:\n%s", basic)
	}

	dark, _ := c.SnippetText("dark-code")
	if !strings.Contains(dark, "theme=dark") {
		t.Fatalf("dark-code not using dark theme:\n%s", dark)
	}

	plain, _ := c.SnippetText("no-branding-code")
	if !strings.Contains(plain, "showBranding=false") {
		t.Fatalf("no-branding-code still branded:\n%s", plain)
	}

	responsive, _ := c.SnippetText("responsive-code")
	if !strings.Contains(responsive, `width="100%"`) {
		t.Fatalf("responsive-code not full width:\n%s", responsive)
	}
}

func TestWordPressSnippetKeepsPlaceholderURL(t *testing.T) {
	opts := DefaultOptions()
	opts.AppURL = "https://calc.example.com"
	c := NewCatalog(opts)

	wp, _ := c.SnippetText("wordpress-code")
	if !strings.Contains(wp, PlaceholderAppURL) {
		t.Fatalf("wordpress-code lost the placeholder URL:\n%s", wp)
	}
	if strings.Contains(wp, "calc.example.com") {
		t.Fatalf("wordpress-code must not pick up the configured URL:\n%s", wp)
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	c := NewCatalog(DefaultOptions())
	all := c.All()
	all[0].Content = "mutated"

	text, _ := c.SnippetText(all[0].ID)
	if text == "mutated" {
		t.Fatal("All() must not expose internal storage")
	}
}
