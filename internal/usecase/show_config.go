package usecase

import (
	"context"
	"errors"

	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Config   *domainconfig.ToolchainConfiguration
	EnvFiles []string
	Sender   string // derived account address, empty when the key is unusable
	Problems []domain.FieldError
	Redacted bool
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *domainconfig.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *domainconfig.RuntimeConfig) *ShowConfig {
	return &ShowConfig{cfg: cfg}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	toolchain := uc.cfg.Toolchain

	result := &ShowConfigResult{
		Config:   toolchain,
		EnvFiles: uc.cfg.EnvFiles,
		Redacted: uc.cfg.Redact,
	}

	if addr, err := config.SenderAddress(toolchain); err == nil {
		result.Sender = addr.Hex()
	}

	if err := config.Validate(toolchain); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		result.Problems = verr.Problems
	}

	if uc.cfg.Redact {
		result.Config = toolchain.Redacted()
	}

	return result, nil
}
