package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/toolcfg/internal/config"
	"github.com/trebuchet-org/toolcfg/internal/domain"
)

func TestExportConfig(t *testing.T) {
	t.Run("foundry to file", func(t *testing.T) {
		writer := &fakeWriter{}
		uc := NewExportConfig(runtimeConfig(validEnv()), writer)

		result, err := uc.Run(context.Background(), ExportConfigParams{Format: "foundry", Output: "foundry.toml"})
		require.NoError(t, err)

		assert.Equal(t, config.FormatFoundry, result.Format)
		assert.Equal(t, "/project/foundry.toml", result.Path)
		assert.Equal(t, []string{"API_KEY", "SEPOLIARPC"}, result.Requires)
		assert.Equal(t, result.Data, writer.files["/project/foundry.toml"])
		assert.Contains(t, string(result.Data), `solc_version = "0.8.20"`)
		assert.False(t, result.Masked)
	})

	t.Run("json to stdout is redacted", func(t *testing.T) {
		writer := &fakeWriter{}
		uc := NewExportConfig(runtimeConfig(validEnv()), writer)

		result, err := uc.Run(context.Background(), ExportConfigParams{Format: "json"})
		require.NoError(t, err)

		assert.Empty(t, result.Path)
		assert.Empty(t, writer.files)
		assert.NotContains(t, string(result.Data), testKey)
		assert.Contains(t, string(result.Data), `"solidity": "0.8.20"`)
		assert.True(t, result.Masked)
	})

	t.Run("yaml to file reports masked values", func(t *testing.T) {
		writer := &fakeWriter{}
		uc := NewExportConfig(runtimeConfig(validEnv()), writer)

		result, err := uc.Run(context.Background(), ExportConfigParams{Format: "yaml", Output: "toolchain.yaml"})
		require.NoError(t, err)
		assert.Equal(t, "/project/toolchain.yaml", result.Path)
		assert.True(t, result.Masked)
		assert.Contains(t, string(writer.files["/project/toolchain.yaml"]), "********")
	})

	t.Run("json without redaction", func(t *testing.T) {
		cfg := runtimeConfig(validEnv())
		cfg.Redact = false

		result, err := NewExportConfig(cfg, &fakeWriter{}).Run(context.Background(), ExportConfigParams{Format: "json"})
		require.NoError(t, err)
		assert.Contains(t, string(result.Data), testKey)
		assert.False(t, result.Masked)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewExportConfig(runtimeConfig(validEnv()), &fakeWriter{}).Run(context.Background(), ExportConfigParams{Format: "xml"})
		assert.ErrorIs(t, err, domain.ErrUnknownFormat)
	})

	t.Run("write failure", func(t *testing.T) {
		writeErr := errors.New("read-only file system")
		uc := NewExportConfig(runtimeConfig(validEnv()), &fakeWriter{err: writeErr})

		_, err := uc.Run(context.Background(), ExportConfigParams{Format: "env", Output: "/tmp/.env.example"})
		assert.ErrorIs(t, err, writeErr)
	})
}
