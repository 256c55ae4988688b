package config

import (
	"os"
	"path/filepath"
)

// Paths holds all the file system paths used by the application
type Paths struct {
	Home       string // ~/.embedkit
	ConfigPath string // ~/.embedkit/config.json
	LogsRoot   string // ~/.embedkit/logs
}

// DefaultPaths returns the default paths configuration
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	embedkitHome := filepath.Join(home, ".embedkit")

	return &Paths{
		Home:       embedkitHome,
		ConfigPath: filepath.Join(embedkitHome, "config.json"),
		LogsRoot:   filepath.Join(embedkitHome, "logs"),
	}, nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.Home,
		p.LogsRoot,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}
