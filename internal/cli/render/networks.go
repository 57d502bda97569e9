package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out  io.Writer
	json bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, json bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:  out,
		json: json,
	}
}

type networkJSON struct {
	domain.NetworkStatus
	Error string `json:"error,omitempty"`
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.json {
		out := make([]networkJSON, 0, len(result.Networks))
		for _, n := range result.Networks {
			nj := networkJSON{NetworkStatus: n}
			if n.Error != nil {
				nj.Error = n.Error.Error()
			}
			out = append(out, nj)
		}
		return writeJSON(r.out, out)
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	for _, n := range result.Networks {
		name := color.New(color.Bold).Sprint(n.Name)
		kind := color.New(color.Faint).Sprint(n.Kind)
		if n.Error != nil {
			t.AppendRow(table.Row{name, kind, FormatError(n.Error.Error())})
			continue
		}
		detail := fmt.Sprintf("Chain ID: %d  Block: %d  RPC: %s", n.ChainID, n.BlockNumber, n.RPCURL)
		if n.Explorer != "" {
			detail += "  Explorer: " + n.Explorer
		}
		t.AppendRow(table.Row{name, kind, FormatSuccess(detail)})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}
