package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFileNames are merged into the process environment in this order.
// Variables already present are never overwritten.
var envFileNames = []string{".env", ".env.local"}

// Env looks up environment values
type Env interface {
	LookupEnv(key string) (string, bool)
}

// OSEnv reads from the process environment
type OSEnv struct{}

// LookupEnv implements Env
func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnv is an Env backed by a plain map
type MapEnv map[string]string

// LookupEnv implements Env
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// LoadEnvFiles merges .env files from projectRoot into the process
// environment and returns the paths that were loaded. A file that fails to
// parse is reported and skipped.
func LoadEnvFiles(projectRoot string, logger *slog.Logger) ([]string, error) {
	var loaded []string
	for _, name := range envFileNames {
		envFile := filepath.Join(projectRoot, name)
		info, err := os.Stat(envFile)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return loaded, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
		if info.IsDir() {
			continue
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.Warn("failed to load env file", "path", envFile, "error", err)
			continue
		}
		logger.Debug("loaded env file", "path", envFile)
		loaded = append(loaded, envFile)
	}
	return loaded, nil
}

// lookup returns nil when key is unset
func lookup(env Env, key string) *string {
	v, ok := env.LookupEnv(key)
	if !ok {
		return nil
	}
	return &v
}
