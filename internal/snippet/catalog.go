package snippet

// Catalog holds the ready-made embed snippets shown on the documentation page.
// It is immutable once built; a config change builds a fresh catalog.
type Catalog struct {
	snippets []Snippet
	byID     map[string]int
}

// NewCatalog builds the six built-in snippets for the given options.
func NewCatalog(opts Options) *Catalog {
	opts = opts.Normalized()

	dark := opts
	dark.Theme = ThemeDark

	plain := opts
	plain.ShowBranding = false

	// The WordPress snippet keeps the placeholder URL verbatim: it documents
	// where the user's own URL goes, independent of local configuration.
	wordpress := DefaultOptions()

	snippets := []Snippet{
		{
			ID:          "basic-code",
			Title:       "Basic iFrame",
			Description: "Fixed-size iframe embed. Paste into any HTML page.",
			Content:     IframeCode(opts),
		},
		{
			ID:          "responsive-code",
			Title:       "Responsive iFrame",
			Description: "Stretches to the container width for responsive layouts.",
			Content:     ResponsiveIframeCode(opts),
		},
		{
			ID:          "javascript-code",
			Title:       "JavaScript Embed",
			Description: "Injects the iframe from a script tag. More flexible than raw HTML.",
			Content:     ScriptCode(opts),
		},
		{
			ID:          "dark-code",
			Title:       "Dark Theme",
			Description: "Fixed-size iframe using the calculator's dark theme.",
			Content:     IframeCode(dark),
		},
		{
			ID:          "no-branding-code",
			Title:       "Without Branding",
			Description: "Hides the calculator's branding footer.",
			Content:     IframeCode(plain),
		},
		{
			ID:          "wordpress-code",
			Title:       "WordPress",
			Description: "For the WordPress Text/HTML editor. Replace the placeholder URL with your deployment.",
			Content:     IframeCode(wordpress),
		},
	}

	byID := make(map[string]int, len(snippets))
	for i, s := range snippets {
		byID[s.ID] = i
	}

	return &Catalog{snippets: snippets, byID: byID}
}

// All returns the snippets in display order.
func (c *Catalog) All() []Snippet {
	out := make([]Snippet, len(c.snippets))
	copy(out, c.snippets)
	return out
}

// Get returns the snippet with the given ID.
func (c *Catalog) Get(id string) (Snippet, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Snippet{}, false
	}
	return c.snippets[i], true
}

// SnippetText returns the rendered text of the snippet with the given ID.
func (c *Catalog) SnippetText(id string) (string, bool) {
	s, ok := c.Get(id)
	if !ok {
		return "", false
	}
	return s.Content, true
}

// IDs returns the snippet IDs in display order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.snippets))
	for i, s := range c.snippets {
		ids[i] = s.ID
	}
	return ids
}

// Len returns the number of snippets.
func (c *Catalog) Len() int { return len(c.snippets) }
