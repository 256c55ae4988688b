package config

import (
	"encoding/json"
	"os"

	"github.com/footprintcalc/embedkit/internal/snippet"
)

// Config holds the application configuration
type Config struct {
	Paths *Paths
	Embed snippet.Options
	Serve ServeConfig
}

// ServeConfig configures the documentation server.
type ServeConfig struct {
	Addr string `json:"addr,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths: paths,
		Embed: snippet.DefaultOptions(),
		Serve: ServeConfig{Addr: "127.0.0.1:8690"},
	}, nil
}

// Load loads config overrides from ~/.embedkit/config.json if present.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Reload(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reload re-reads overrides from the config file into cfg. A missing file
// leaves the defaults in place.
func (c *Config) Reload() error {
	data, err := os.ReadFile(c.Paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var user struct {
		Embed *embedOverride `json:"embed,omitempty"`
		Serve *ServeConfig   `json:"serve,omitempty"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}

	if user.Embed != nil {
		c.Embed = user.Embed.apply()
	}
	if user.Serve != nil && user.Serve.Addr != "" {
		c.Serve.Addr = user.Serve.Addr
	}

	return nil
}

// embedOverride mirrors snippet.Options with an optional branding flag, so a
// partial override that never mentions show_branding keeps branding on
// instead of reading the JSON zero value as false.
type embedOverride struct {
	AppURL       string `json:"app_url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Theme        string `json:"theme"`
	ShowBranding *bool  `json:"show_branding"`
}

func (o *embedOverride) apply() snippet.Options {
	opts := snippet.Options{
		AppURL:       o.AppURL,
		Width:        o.Width,
		Height:       o.Height,
		Theme:        o.Theme,
		ShowBranding: true,
	}
	if o.ShowBranding != nil {
		opts.ShowBranding = *o.ShowBranding
	}
	return opts.Normalized()
}

// Save writes the current overrides back to the config file.
func (c *Config) Save() error {
	if err := c.Paths.EnsureDirectories(); err != nil {
		return err
	}
	out := struct {
		Embed snippet.Options `json:"embed"`
		Serve ServeConfig     `json:"serve,omitempty"`
	}{Embed: c.Embed, Serve: c.Serve}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Paths.ConfigPath, append(data, '\n'), 0644)
}
