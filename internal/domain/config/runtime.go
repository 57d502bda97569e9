package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Execution settings
	Debug   bool
	JSON    bool // Output in JSON format
	Redact  bool // Mask key material in rendered output
	Timeout time.Duration

	// Env files merged into the process environment, in load order
	EnvFiles []string

	// Resolved configuration
	Toolchain *ToolchainConfiguration
}
