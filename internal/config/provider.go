package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// projectMarkers identify the root of a toolchain project
var projectMarkers = []string{
	"hardhat.config.ts",
	"hardhat.config.js",
	"foundry.toml",
	".env",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper, logger *slog.Logger) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot: projectRoot,
		DataDir:     filepath.Join(projectRoot, ".toolcfg"),
		Debug:       v.GetBool("debug"),
		JSON:        v.GetBool("json"),
		Redact:      !v.GetBool("no_redact"),
		Timeout:     v.GetDuration("timeout"),
	}

	envFiles, err := LoadEnvFiles(projectRoot, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}
	cfg.EnvFiles = envFiles

	cfg.Toolchain = Build(OSEnv{})
	logger.Debug("built toolchain configuration",
		"solidity", cfg.Toolchain.Solidity,
		"networks", cfg.Toolchain.NetworkNames(),
		"env_files", len(envFiles),
	)

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to the first
// directory holding a project marker, falling back to the current directory
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".toolcfg"))

	// Set up environment variables
	v.SetEnvPrefix("TOOLCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "10s")
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("no_redact", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		bindFlags(v, cmd)
	}

	return v
}

// bindFlags binds changed flags, so unset flags leave file and env values alone
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
	})
}
