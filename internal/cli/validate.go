package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var online bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the toolchain configuration",
		Long: `Check that every environment value the configuration needs is present and
well formed. All problems are reported at once.

With --online, also query the RPC endpoint for its chain ID and check the
Etherscan API key against that chain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig.Run(cmd.Context(), usecase.ValidateConfigParams{Online: online})
			if err != nil {
				return err
			}

			if err := render.NewValidateRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result); err != nil {
				return err
			}

			if !result.Valid() {
				return ErrInvalidConfig
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&online, "online", false, "Also check the RPC endpoint and the verification API key")

	return cmd
}
