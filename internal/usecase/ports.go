package usecase

import (
	"context"
	"io"

	"github.com/trebuchet-org/toolcfg/internal/domain"
)

// ChainInfo is what a probe learns about an RPC endpoint
type ChainInfo struct {
	ChainID     uint64
	BlockNumber uint64
}

// ChainProbe queries an RPC endpoint
type ChainProbe interface {
	Probe(ctx context.Context, rpcURL string) (*ChainInfo, error)
}

// ForkRunner runs a local node forked from a remote endpoint until ctx is done
type ForkRunner interface {
	Run(ctx context.Context, instance domain.ForkInstance, out io.Writer) error
}

// VerifierChecker checks a verification service credential
type VerifierChecker interface {
	CheckAPIKey(ctx context.Context, chainID uint64, apiKey string) error
}

// FileWriter writes exported files
type FileWriter interface {
	WriteFile(path string, data []byte) error
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
