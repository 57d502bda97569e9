package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewForkCmd creates the fork command
func NewForkCmd() *cobra.Command {
	var params usecase.StartForkParams

	cmd := &cobra.Command{
		Use:   "fork",
		Short: "Run a local anvil node forked from the remote network",
		Long: `Start anvil with --fork-url set to the local network's fork target, replaying
remote chain state locally. Runs in the foreground until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			instance, err := app.StartFork.Instance(params)
			if err != nil {
				return err
			}
			if err := render.NewForkRenderer(cmd.OutOrStdout(), app.Config.Redact).RenderStarting(instance); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.StartFork.Run(ctx, params, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&params.Port, "port", "p", 8545, "Port for the local node")
	cmd.Flags().StringVar(&params.Host, "host", "127.0.0.1", "Host for the local node")
	cmd.Flags().Uint64Var(&params.ChainID, "chain-id", 0, "Override the chain ID (default: remote chain ID)")
	cmd.Flags().Uint64Var(&params.BlockNumber, "fork-block-number", 0, "Fork from this block (default: latest)")

	return cmd
}
