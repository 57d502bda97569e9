package anvil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

const defaultBinary = "anvil"

// Runner runs anvil in the foreground
type Runner struct {
	binary string
}

// NewRunner creates a runner for the anvil binary on PATH
func NewRunner() *Runner {
	return &Runner{binary: defaultBinary}
}

// Run starts anvil forked from instance.ForkURL and blocks until it exits
// or ctx is cancelled. Cancellation is not reported as an error.
func (r *Runner) Run(ctx context.Context, instance domain.ForkInstance, out io.Writer) error {
	path, err := exec.LookPath(r.binary)
	if err != nil {
		return fmt.Errorf("%s not found in PATH (install foundry): %w", r.binary, err)
	}

	cmd := exec.CommandContext(ctx, path, buildAnvilArgs(instance)...)
	cmd.Stdout = out
	cmd.Stderr = out

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		return fmt.Errorf("anvil failed: %w", err)
	}
	return nil
}

func buildAnvilArgs(instance domain.ForkInstance) []string {
	host := instance.Host
	if host == "" {
		host = "127.0.0.1"
	}
	args := []string{"--port", instance.Port, "--host", host}
	if instance.ChainID != "" {
		args = append(args, "--chain-id", instance.ChainID)
	}
	if instance.ForkURL != "" {
		args = append(args, "--fork-url", instance.ForkURL)
		if instance.BlockNumber > 0 {
			args = append(args, "--fork-block-number", strconv.FormatUint(instance.BlockNumber, 10))
		}
	}
	return args
}

// Ensure the adapter implements the interface
var _ usecase.ForkRunner = (*Runner)(nil)
