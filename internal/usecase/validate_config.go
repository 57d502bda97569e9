package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ValidateConfigParams contains parameters for validating configuration
type ValidateConfigParams struct {
	// Online also contacts the RPC endpoint and the verification service
	Online bool
}

// CheckResult is the outcome of one online check
type CheckResult struct {
	Name    string
	Skipped bool
	Detail  string
	Err     error
}

// ValidateConfigResult contains the result of validating configuration
type ValidateConfigResult struct {
	Problems []domain.FieldError
	Checks   []CheckResult
}

// Valid reports whether no problem or failed check was found
func (r *ValidateConfigResult) Valid() bool {
	if len(r.Problems) > 0 {
		return false
	}
	for _, c := range r.Checks {
		if c.Err != nil {
			return false
		}
	}
	return true
}

// ValidateConfig is a use case for validating configuration
type ValidateConfig struct {
	cfg      *domainconfig.RuntimeConfig
	probe    ChainProbe
	verifier VerifierChecker
	progress ProgressSink
	log      *slog.Logger
}

// NewValidateConfig creates a new ValidateConfig use case
func NewValidateConfig(
	cfg *domainconfig.RuntimeConfig,
	probe ChainProbe,
	verifier VerifierChecker,
	progress ProgressSink,
	log *slog.Logger,
) *ValidateConfig {
	return &ValidateConfig{
		cfg:      cfg,
		probe:    probe,
		verifier: verifier,
		progress: progress,
		log:      log,
	}
}

// Run executes the validate config use case
func (uc *ValidateConfig) Run(ctx context.Context, params ValidateConfigParams) (*ValidateConfigResult, error) {
	toolchain := uc.cfg.Toolchain
	result := &ValidateConfigResult{}

	if err := config.Validate(toolchain); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		result.Problems = verr.Problems
	}

	if !params.Online {
		return result, nil
	}

	rpcBroken := lo.ContainsBy(result.Problems, func(p domain.FieldError) bool {
		return p.EnvVar == domainconfig.EnvRPCURL
	})

	rpcCheck := CheckResult{Name: "rpc"}
	var chainID uint64
	if rpcBroken {
		rpcCheck.Skipped = true
		rpcCheck.Detail = fmt.Sprintf("%s is not usable", domainconfig.EnvRPCURL)
	} else {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "rpc", Message: "Probing RPC endpoint", Spinner: true})
		info, err := uc.probeWithTimeout(ctx, *toolchain.Remote().URL)
		if err != nil {
			rpcCheck.Err = err
		} else {
			chainID = info.ChainID
			rpcCheck.Detail = fmt.Sprintf("chain %d at block %d", info.ChainID, info.BlockNumber)
		}
	}
	result.Checks = append(result.Checks, rpcCheck)

	verifierCheck := CheckResult{Name: "etherscan"}
	switch {
	case lo.FromPtr(toolchain.Etherscan.APIKey) == "":
		verifierCheck.Skipped = true
		verifierCheck.Detail = fmt.Sprintf("%s is not set", domainconfig.EnvAPIKey)
	case chainID == 0:
		verifierCheck.Skipped = true
		verifierCheck.Detail = "chain ID unknown"
	default:
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "etherscan", Message: "Checking verification API key", Spinner: true})
		if err := uc.verifier.CheckAPIKey(ctx, chainID, *toolchain.Etherscan.APIKey); err != nil {
			verifierCheck.Err = err
		} else {
			verifierCheck.Detail = "API key accepted"
		}
	}
	result.Checks = append(result.Checks, verifierCheck)

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done"})
	uc.log.Debug("validation finished", "problems", len(result.Problems), "checks", len(result.Checks))

	return result, nil
}

func (uc *ValidateConfig) probeWithTimeout(ctx context.Context, rpcURL string) (*ChainInfo, error) {
	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}
	return uc.probe.Probe(ctx, rpcURL)
}
