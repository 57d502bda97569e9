//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/toolcfg/internal/adapters"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/logging"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Logging and configuration
		logging.LoggingSet,
		config.Provider,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewValidateConfig,
		usecase.NewListNetworks,
		usecase.NewExportConfig,
		usecase.NewStartFork,

		// App
		NewApp,
	)
	return nil, nil
}
