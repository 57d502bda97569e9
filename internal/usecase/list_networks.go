package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentProbes = 4

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []domain.NetworkStatus
}

// ListNetworks is a use case for listing and probing configured networks
type ListNetworks struct {
	cfg      *domainconfig.RuntimeConfig
	probe    ChainProbe
	progress ProgressSink
	log      *slog.Logger
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *domainconfig.RuntimeConfig, probe ChainProbe, progress ProgressSink, log *slog.Logger) *ListNetworks {
	return &ListNetworks{
		cfg:      cfg,
		probe:    probe,
		progress: progress,
		log:      log,
	}
}

// Run executes the use case. Probe failures are reported per network, not
// returned as an error.
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	toolchain := uc.cfg.Toolchain
	names := toolchain.NetworkNames()
	statuses := make([]domain.NetworkStatus, len(names))

	if uc.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.Timeout)
		defer cancel()
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "probe", Total: len(names), Message: "Probing networks", Spinner: true})

	// Endpoints shared by several networks are probed once
	var (
		mu    sync.Mutex
		cache = make(map[string]*probeOutcome)
	)
	probeOnce := func(url string) *probeOutcome {
		mu.Lock()
		outcome, ok := cache[url]
		if !ok {
			outcome = &probeOutcome{}
			cache[url] = outcome
		}
		mu.Unlock()

		outcome.once.Do(func() {
			outcome.info, outcome.err = uc.probe.Probe(ctx, url)
		})
		return outcome
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentProbes)
	for i, name := range names {
		g.Go(func() error {
			network := toolchain.Networks[name]
			status := domain.NetworkStatus{Name: name, Kind: "remote"}

			url := network.URL
			if !network.IsRemote() {
				status.Kind = "fork"
				url = network.Forking.URL
			}

			if url == nil || *url == "" {
				status.Error = domain.ErrMissingValue
				statuses[i] = status
				return nil
			}
			status.RPCURL = *url
			if uc.cfg.Redact {
				status.RPCURL = domainconfig.RedactURL(*url)
			}

			outcome := probeOnce(*url)
			if outcome.err != nil {
				status.Error = outcome.err
			} else {
				status.ChainID = outcome.info.ChainID
				status.BlockNumber = outcome.info.BlockNumber
				status.Explorer = domain.ExplorerURL(outcome.info.ChainID)
			}

			uc.log.Debug("probed network", "network", name, "chain_id", status.ChainID, "error", status.Error)
			statuses[i] = status
			return nil
		})
	}
	_ = g.Wait()

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "done", Current: len(names), Total: len(names)})

	return &ListNetworksResult{Networks: statuses}, nil
}

type probeOutcome struct {
	once sync.Once
	info *ChainInfo
	err  error
}
