package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/samber/lo"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// StartForkParams contains parameters for starting a local fork
type StartForkParams struct {
	Port        int
	Host        string
	ChainID     uint64 // 0 keeps the remote chain ID
	BlockNumber uint64 // 0 forks from latest
}

// StartFork runs a local node forked from the hardhat network's fork target
type StartFork struct {
	cfg    *domainconfig.RuntimeConfig
	runner ForkRunner
	log    *slog.Logger
}

// NewStartFork creates a new StartFork use case
func NewStartFork(cfg *domainconfig.RuntimeConfig, runner ForkRunner, log *slog.Logger) *StartFork {
	return &StartFork{cfg: cfg, runner: runner, log: log}
}

// Instance resolves the fork instance without starting it
func (uc *StartFork) Instance(params StartForkParams) (domain.ForkInstance, error) {
	forkURL := lo.FromPtr(uc.cfg.Toolchain.ForkURL())
	if forkURL == "" {
		return domain.ForkInstance{}, fmt.Errorf("networks.%s.forking.url (%s): %w",
			domainconfig.NetworkHardhat, domainconfig.EnvRPCURL, domain.ErrMissingValue)
	}

	port := params.Port
	if port == 0 {
		port = 8545
	}
	if port < 0 || port > 65535 {
		return domain.ForkInstance{}, fmt.Errorf("%w: port %d", domain.ErrInvalidValue, port)
	}

	host := params.Host
	if host == "" {
		host = "127.0.0.1"
	}

	instance := domain.ForkInstance{
		Network:     domainconfig.NetworkHardhat,
		Port:        strconv.Itoa(port),
		Host:        host,
		ForkURL:     forkURL,
		BlockNumber: params.BlockNumber,
	}
	if params.ChainID != 0 {
		instance.ChainID = strconv.FormatUint(params.ChainID, 10)
	}
	return instance, nil
}

// Run starts the fork and blocks until ctx is cancelled or the node exits
func (uc *StartFork) Run(ctx context.Context, params StartForkParams, out io.Writer) error {
	instance, err := uc.Instance(params)
	if err != nil {
		return err
	}

	uc.log.Info("starting fork",
		"network", instance.Network,
		"rpc", instance.RPCURL(),
		"fork_url", domainconfig.RedactURL(instance.ForkURL),
		"block", instance.BlockNumber,
	)

	if err := uc.runner.Run(ctx, instance, out); err != nil {
		return fmt.Errorf("fork exited: %w", err)
	}
	return nil
}
