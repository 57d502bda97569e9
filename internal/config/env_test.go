package config

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("merges .env then .env.local without overriding", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOOLCFG_TEST_A=from-env\nTOOLCFG_TEST_B=from-env\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("TOOLCFG_TEST_B=from-local\nTOOLCFG_TEST_C=from-local\n"), 0644))

		t.Setenv("TOOLCFG_TEST_A", "from-process")
		// Registered so t.Setenv restores them after the test
		t.Setenv("TOOLCFG_TEST_B", "")
		t.Setenv("TOOLCFG_TEST_C", "")
		require.NoError(t, os.Unsetenv("TOOLCFG_TEST_B"))
		require.NoError(t, os.Unsetenv("TOOLCFG_TEST_C"))

		loaded, err := LoadEnvFiles(dir, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}, loaded)

		assert.Equal(t, "from-process", os.Getenv("TOOLCFG_TEST_A"))
		assert.Equal(t, "from-env", os.Getenv("TOOLCFG_TEST_B"))
		assert.Equal(t, "from-local", os.Getenv("TOOLCFG_TEST_C"))
	})

	t.Run("malformed file is skipped and .env.local still loads", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TOOLCFG_TEST_BROKEN=\"unterminated\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("TOOLCFG_TEST_D=from-local\n"), 0644))

		t.Setenv("TOOLCFG_TEST_BROKEN", "")
		t.Setenv("TOOLCFG_TEST_D", "")
		require.NoError(t, os.Unsetenv("TOOLCFG_TEST_BROKEN"))
		require.NoError(t, os.Unsetenv("TOOLCFG_TEST_D"))

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil))

		loaded, err := LoadEnvFiles(dir, logger)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, ".env.local")}, loaded)
		assert.Equal(t, "from-local", os.Getenv("TOOLCFG_TEST_D"))
		assert.Contains(t, logs.String(), "failed to load env file")
		assert.Contains(t, logs.String(), filepath.Join(dir, ".env"))
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		loaded, err := LoadEnvFiles(t.TempDir(), discardLogger())
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run("directory named .env is skipped", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0755))

		loaded, err := LoadEnvFiles(dir, discardLogger())
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})
}

func TestMapEnv(t *testing.T) {
	env := MapEnv{"SET": "", "FULL": "x"}

	v, ok := env.LookupEnv("SET")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = env.LookupEnv("UNSET")
	assert.False(t, ok)

	assert.Nil(t, lookup(env, "UNSET"))
	assert.Equal(t, "x", *lookup(env, "FULL"))
}
