package cli

import (
	"github.com/footprintcalc/embedkit/internal/config"
	"github.com/footprintcalc/embedkit/internal/snippet"
)

// Services bundles the dependencies headless commands need.
type Services struct {
	Version string
	Config  *config.Config
	Catalog *snippet.Catalog
}

// NewServices loads configuration and builds the snippet catalog.
func NewServices(version string) (*Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &Services{
		Version: version,
		Config:  cfg,
		Catalog: snippet.NewCatalog(cfg.Embed),
	}, nil
}
