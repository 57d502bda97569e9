package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
)

// ForkRenderer handles rendering of fork command output
type ForkRenderer struct {
	out    io.Writer
	redact bool
}

// NewForkRenderer creates a new ForkRenderer
func NewForkRenderer(out io.Writer, redact bool) *ForkRenderer {
	return &ForkRenderer{out: out, redact: redact}
}

// RenderStarting prints the fork details before the node takes over the output
func (r *ForkRenderer) RenderStarting(instance domain.ForkInstance) error {
	fmt.Fprintf(r.out, "🍴 Forking %s\n", instance.Network)
	fmt.Fprintln(r.out)
	forkURL := instance.ForkURL
	if r.redact {
		forkURL = config.RedactURL(forkURL)
	}
	fmt.Fprintf(r.out, "  Fork URL:  %s\n", forkURL)
	fmt.Fprintf(r.out, "  Local RPC: %s\n", instance.RPCURL())
	if instance.ChainID != "" {
		fmt.Fprintf(r.out, "  Chain ID:  %s\n", instance.ChainID)
	}
	if instance.BlockNumber > 0 {
		fmt.Fprintf(r.out, "  Block:     %d\n", instance.BlockNumber)
	} else {
		fmt.Fprintln(r.out, "  Block:     latest")
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Press Ctrl+C to stop")
	fmt.Fprintln(r.out)
	return nil
}
