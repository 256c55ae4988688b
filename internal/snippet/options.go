package snippet

import (
	"fmt"
	"strings"
)

// Display option bounds for the embedded calculator.
const (
	MinWidth     = 400
	MaxWidth     = 1200
	DefaultWidth = 800

	MinHeight     = 600
	MaxHeight     = 2000
	DefaultHeight = 1000
)

// Themes supported by the hosted calculator.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PlaceholderAppURL is shown until the user configures their deployment URL.
const PlaceholderAppURL = "https://your-app-name.replit.app"

// Options configures generated embed code.
type Options struct {
	AppURL       string `json:"app_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Theme        string `json:"theme"`
	ShowBranding bool   `json:"show_branding"`
}

// DefaultOptions returns the options the hosted embed generator starts with.
func DefaultOptions() Options {
	return Options{
		AppURL:       PlaceholderAppURL,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Theme:        ThemeLight,
		ShowBranding: true,
	}
}

// Validate checks option values against the generator's bounds.
func (o Options) Validate() error {
	if strings.TrimSpace(o.AppURL) == "" {
		return fmt.Errorf("app URL must not be empty")
	}
	if o.Width < MinWidth || o.Width > MaxWidth {
		return fmt.Errorf("width %d out of range [%d, %d]", o.Width, MinWidth, MaxWidth)
	}
	if o.Height < MinHeight || o.Height > MaxHeight {
		return fmt.Errorf("height %d out of range [%d, %d]", o.Height, MinHeight, MaxHeight)
	}
	if o.Theme != ThemeLight && o.Theme != ThemeDark {
		return fmt.Errorf("theme %q must be %q or %q", o.Theme, ThemeLight, ThemeDark)
	}
	return nil
}

// Normalized returns a copy with zero-value fields replaced by defaults.
func (o Options) Normalized() Options {
	def := DefaultOptions()
	if strings.TrimSpace(o.AppURL) == "" {
		o.AppURL = def.AppURL
	}
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.Theme == "" {
		o.Theme = def.Theme
	}
	return o
}
