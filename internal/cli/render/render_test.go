package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	domainconfig "github.com/trebuchet-org/toolcfg/internal/domain/config"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestConfigRenderer(t *testing.T) {
	cfg := config.Build(config.MapEnv{
		domainconfig.EnvRPCURL: "https://example.invalid",
		domainconfig.EnvAPIKey: "",
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConfigRenderer(&buf, false).Render(&usecase.ShowConfigResult{
			Config: cfg,
			Problems: []domain.FieldError{
				{Field: "etherscan.apiKey", EnvVar: "API_KEY", Err: domain.ErrMissingValue},
			},
			Redacted: true,
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "0.8.20")
		assert.Contains(t, out, "networks.sepolia.url")
		assert.Contains(t, out, "networks.hardhat.forking.url")
		assert.Contains(t, out, "https://example.invalid")
		assert.Contains(t, out, "(unset)")
		assert.Contains(t, out, "(empty)")
		assert.Contains(t, out, "etherscan.apiKey (API_KEY): missing value")
		assert.Contains(t, out, "--no-redact")
		assert.Contains(t, out, "none (process environment only)")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf, true).Render(&usecase.ShowConfigResult{Config: cfg}))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "0.8.20", decoded["solidity"])
	})
}

func TestValidateRenderer(t *testing.T) {
	result := &usecase.ValidateConfigResult{
		Problems: []domain.FieldError{
			{Field: "networks.sepolia.url", EnvVar: "SEPOLIARPC", Err: domain.ErrMissingValue},
		},
		Checks: []usecase.CheckResult{
			{Name: "rpc", Skipped: true, Detail: "SEPOLIARPC is not usable"},
			{Name: "etherscan", Err: errors.New("boom")},
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewValidateRenderer(&buf, false).Render(result))

		out := buf.String()
		assert.Contains(t, out, "1 configuration problem(s)")
		assert.Contains(t, out, "networks.sepolia.url (SEPOLIARPC): missing value")
		assert.Contains(t, out, "rpc: skipped (SEPOLIARPC is not usable)")
		assert.Contains(t, out, "❌ Etherscan check failed: boom")
		assert.Contains(t, out, "Check these variables in .env or the environment: SEPOLIARPC")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewValidateRenderer(&buf, true).Render(result))
		assert.JSONEq(t, `{
			"valid": false,
			"problems": [{"field": "networks.sepolia.url", "envVar": "SEPOLIARPC", "error": "missing value"}],
			"checks": [
				{"name": "rpc", "skipped": true, "detail": "SEPOLIARPC is not usable"},
				{"name": "etherscan", "error": "boom"}
			]
		}`, buf.String())
	})

	t.Run("valid", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewValidateRenderer(&buf, false).Render(&usecase.ValidateConfigResult{}))
		assert.Contains(t, buf.String(), "Configuration is valid")
	})
}

func TestNetworksRenderer(t *testing.T) {
	result := &usecase.ListNetworksResult{
		Networks: []domain.NetworkStatus{
			{Name: "hardhat", Kind: "fork", Error: domain.ErrMissingValue},
			{Name: "sepolia", Kind: "remote", RPCURL: "https://rpc.sepolia.org", ChainID: 11155111, BlockNumber: 9, Explorer: "https://sepolia.etherscan.io"},
		},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, false).Render(result))

		out := buf.String()
		assert.Contains(t, out, "hardhat")
		assert.Contains(t, out, "❌ Missing value")
		assert.Contains(t, out, "sepolia")
		assert.Contains(t, out, "✅ Chain ID: 11155111")
		assert.Contains(t, out, "https://sepolia.etherscan.io")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, true).Render(result))
		assert.JSONEq(t, `[
			{"name": "hardhat", "kind": "fork", "error": "missing value"},
			{"name": "sepolia", "kind": "remote", "rpcUrl": "https://rpc.sepolia.org", "chainId": 11155111, "blockNumber": 9, "explorer": "https://sepolia.etherscan.io"}
		]`, buf.String())
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewNetworksRenderer(&buf, false).Render(&usecase.ListNetworksResult{}))
		assert.Contains(t, buf.String(), "No networks configured")
	})
}

func TestExportRenderer(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewExportRenderer(&buf).Render(&usecase.ExportConfigResult{Data: []byte("solidity: 0.8.20\n")}))
		assert.Equal(t, "solidity: 0.8.20\n", buf.String())
	})

	t.Run("file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewExportRenderer(&buf).Render(&usecase.ExportConfigResult{
			Format:   config.FormatFoundry,
			Path:     "/project/foundry.toml",
			Requires: []string{"API_KEY", "SEPOLIARPC"},
		}))
		assert.Contains(t, buf.String(), "Exported foundry config to")
		assert.Contains(t, buf.String(), "Requires env: API_KEY, SEPOLIARPC")
		assert.NotContains(t, buf.String(), "masked")
	})

	t.Run("masked file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewExportRenderer(&buf).Render(&usecase.ExportConfigResult{
			Format: config.FormatJSON,
			Path:   "/project/toolchain.json",
			Masked: true,
		}))
		assert.Contains(t, buf.String(), "Exported json config to")
		assert.Contains(t, buf.String(), "masked values; pass --no-redact")
	})
}

func TestForkRenderer(t *testing.T) {
	instance := domain.ForkInstance{
		Network: "hardhat",
		Port:    "8545",
		Host:    "127.0.0.1",
		ForkURL: "https://sepolia.infura.io/v3/secret",
	}

	t.Run("redacted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewForkRenderer(&buf, true).RenderStarting(instance))

		out := buf.String()
		assert.Contains(t, out, "Forking hardhat")
		assert.Contains(t, out, "https://sepolia.infura.io/***")
		assert.NotContains(t, out, "secret")
		assert.Contains(t, out, "http://127.0.0.1:8545")
		assert.Contains(t, out, "latest")
	})

	t.Run("no-redact shows the full fork url", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewForkRenderer(&buf, false).RenderStarting(instance))
		assert.Contains(t, buf.String(), "https://sepolia.infura.io/v3/secret")
	})
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"keeps the full chain", "failed to get chain ID: connection refused", "❌ Failed to get chain ID: connection refused"},
		{"multi-byte first rune", "échec de connexion", "❌ Échec de connexion"},
		{"already capitalised", "RPC unreachable", "❌ RPC unreachable"},
		{"empty", "", "❌ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.message))
		})
	}
}
