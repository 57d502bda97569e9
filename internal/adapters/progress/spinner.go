package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// SpinnerSink shows a spinner while use cases wait on the network
type SpinnerSink struct {
	mu      sync.Mutex
	out     io.Writer
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner sink writing to out
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: s,
	}
}

// OnProgress starts, updates or stops the spinner
func (p *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !event.Spinner {
		if p.spinner.Active() {
			p.spinner.Stop()
		}
		return
	}

	msg := event.Message
	if event.Total > 0 {
		msg = fmt.Sprintf("%s (%d/%d)", msg, event.Current, event.Total)
	}
	p.spinner.Suffix = " " + msg
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

// Info prints an informational line, pausing the spinner
func (p *SpinnerSink) Info(message string) {
	p.print(color.New(color.FgCyan).Sprint(message))
}

// Error prints an error line, pausing the spinner
func (p *SpinnerSink) Error(message string) {
	p.print(color.New(color.FgRed).Sprint(message))
}

func (p *SpinnerSink) print(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	active := p.spinner.Active()
	if active {
		p.spinner.Stop()
	}
	fmt.Fprintln(p.out, line)
	if active {
		p.spinner.Start()
	}
}

// NopSink discards progress
type NopSink struct{}

// NewNopSink creates a sink that discards everything
func NewNopSink() usecase.ProgressSink {
	return &NopSink{}
}

func (n *NopSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}
func (n *NopSink) Info(message string)                                         {}
func (n *NopSink) Error(message string)                                        {}

// Ensure the adapters implement the interface
var (
	_ usecase.ProgressSink = (*SpinnerSink)(nil)
	_ usecase.ProgressSink = (*NopSink)(nil)
)
