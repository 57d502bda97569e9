package app

import (
	"log/slog"

	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ShowConfig     *usecase.ShowConfig
	ValidateConfig *usecase.ValidateConfig
	ListNetworks   *usecase.ListNetworks
	ExportConfig   *usecase.ExportConfig
	StartFork      *usecase.StartFork
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	showConfig *usecase.ShowConfig,
	validateConfig *usecase.ValidateConfig,
	listNetworks *usecase.ListNetworks,
	exportConfig *usecase.ExportConfig,
	startFork *usecase.StartFork,
) (*App, error) {
	return &App{
		Config:         cfg,
		Logger:         logger,
		ShowConfig:     showConfig,
		ValidateConfig: validateConfig,
		ListNetworks:   listNetworks,
		ExportConfig:   exportConfig,
		StartFork:      startFork,
	}, nil
}
