package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/toolcfg/internal/config"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ExportConfigParams contains parameters for exporting configuration
type ExportConfigParams struct {
	Format string
	Output string // empty writes nothing; the caller prints Data
}

// ExportConfigResult contains the result of exporting configuration
type ExportConfigResult struct {
	Format   config.Format
	Data     []byte
	Path     string   // absolute path written, empty when not written
	Requires []string // environment variables the output references
	Masked   bool     // secrets and endpoint paths in Data are placeholders
}

// ExportConfig is a use case for exporting configuration to another format
type ExportConfig struct {
	cfg    *domainconfig.RuntimeConfig
	writer FileWriter
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *domainconfig.RuntimeConfig, writer FileWriter) *ExportConfig {
	return &ExportConfig{cfg: cfg, writer: writer}
}

// Run executes the export. JSON and YAML carry real values unless redaction
// is on; foundry and env outputs only ever hold variable references.
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	format, err := config.ParseFormat(params.Format)
	if err != nil {
		return nil, err
	}

	toolchain := uc.cfg.Toolchain
	if uc.cfg.Redact {
		toolchain = toolchain.Redacted()
	}

	data, err := config.Marshal(format, toolchain)
	if err != nil {
		return nil, err
	}

	result := &ExportConfigResult{Format: format, Data: data}
	if uc.cfg.Redact && (format == config.FormatJSON || format == config.FormatYAML) {
		result.Masked = true
	}

	switch format {
	case config.FormatFoundry:
		result.Requires = config.FoundryEnvVars(config.ToFoundryConfig(toolchain))
	case config.FormatEnv:
		result.Requires = []string{domainconfig.EnvAPIKey, domainconfig.EnvPrivateKey, domainconfig.EnvRPCURL}
	}

	if params.Output == "" {
		return result, nil
	}

	path := params.Output
	if !filepath.IsAbs(path) {
		path = filepath.Join(uc.cfg.ProjectRoot, path)
	}
	if err := uc.writer.WriteFile(path, data); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	result.Path = path

	return result, nil
}
