package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func runtimeConfig(env config.MapEnv) *domainconfig.RuntimeConfig {
	return &domainconfig.RuntimeConfig{
		ProjectRoot: "/project",
		Redact:      true,
		Timeout:     time.Second,
		Toolchain:   config.Build(env),
	}
}

func validEnv() config.MapEnv {
	return config.MapEnv{
		domainconfig.EnvRPCURL:     "https://sepolia.example.org/v2/projectkey",
		domainconfig.EnvPrivateKey: testKey,
		domainconfig.EnvAPIKey:     "xyz",
	}
}

type fakeProbe struct {
	mu    sync.Mutex
	calls []string
	info  *ChainInfo
	err   error
}

func (f *fakeProbe) Probe(ctx context.Context, rpcURL string) (*ChainInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, rpcURL)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.info, nil
}

type fakeVerifier struct {
	chainID uint64
	apiKey  string
	err     error
}

func (f *fakeVerifier) CheckAPIKey(ctx context.Context, chainID uint64, apiKey string) error {
	f.chainID = chainID
	f.apiKey = apiKey
	return f.err
}

type fakeWriter struct {
	files map[string][]byte
	err   error
}

func (f *fakeWriter) WriteFile(path string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	if f.files == nil {
		f.files = make(map[string][]byte)
	}
	f.files[path] = data
	return nil
}

type fakeRunner struct {
	instance domain.ForkInstance
	err      error
}

func (f *fakeRunner) Run(ctx context.Context, instance domain.ForkInstance, out io.Writer) error {
	f.instance = instance
	return f.err
}

var errUnreachable = errors.New("dial tcp: connection refused")
