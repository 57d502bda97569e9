package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// ConfigRenderer renders the toolchain configuration
type ConfigRenderer struct {
	out  io.Writer
	json bool
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer, json bool) *ConfigRenderer {
	return &ConfigRenderer{
		out:  out,
		json: json,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if r.json {
		return writeJSON(r.out, result.Config)
	}

	cfg := result.Config
	bold := color.New(color.Bold)

	fmt.Fprintln(r.out, "📋 Toolchain configuration:")
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendRow(table.Row{bold.Sprint("solidity"), cfg.Solidity})
	for _, name := range cfg.NetworkNames() {
		network := cfg.Networks[name]
		if network.IsRemote() {
			t.AppendRow(table.Row{bold.Sprintf("networks.%s.url", name), valueOrAbsent(network.URL)})
			for i, account := range network.Accounts {
				t.AppendRow(table.Row{bold.Sprintf("networks.%s.accounts[%d]", name, i), valueOrAbsent(account)})
			}
			continue
		}
		t.AppendRow(table.Row{bold.Sprintf("networks.%s.forking.url", name), valueOrAbsent(network.Forking.URL)})
	}
	t.AppendRow(table.Row{bold.Sprint("etherscan.apiKey"), valueOrAbsent(cfg.Etherscan.APIKey)})
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	if result.Sender != "" {
		fmt.Fprintf(r.out, "👤 Sender: %s\n", result.Sender)
	}
	if len(result.EnvFiles) == 0 {
		fmt.Fprintln(r.out, "📁 Env files: none (process environment only)")
	} else {
		for _, f := range result.EnvFiles {
			fmt.Fprintf(r.out, "📁 Env file: %s\n", getRelativePath(f))
		}
	}
	if result.Redacted {
		fmt.Fprintln(r.out, color.New(color.Faint).Sprint("Secrets are masked; pass --no-redact to show them"))
	}

	if len(result.Problems) > 0 {
		fmt.Fprintln(r.out)
		for _, p := range result.Problems {
			fmt.Fprintln(r.out, FormatWarning(p.Error()))
		}
	}

	return nil
}

