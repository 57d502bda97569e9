package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/toolcfg/internal/cli/render"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format string
		output string
	)

	formats := lo.Map(config.Formats(), func(f config.Format, _ int) string { return string(f) })

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the configuration for other tools",
		Long: fmt.Sprintf(`Export the configuration in another format.

Formats:
  json     the configuration object
  yaml     the configuration object as YAML
  foundry  an equivalent foundry.toml using ${VAR} references
  env      a .env template listing every variable read

json and yaml respect --no-redact; foundry and env never contain secrets.
Supported: %s`, strings.Join(formats, ", ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: format,
				Output: output,
			})
			if err != nil {
				return err
			}

			return render.NewExportRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatJSON), "Output format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file (relative to project root) instead of stdout")

	return cmd
}
