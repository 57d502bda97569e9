package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "foundry.toml")

	require.NoError(t, NewFileWriterAdapter().WriteFile(path, []byte("solc_version = \"0.8.20\"\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "solc_version = \"0.8.20\"\n", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	w := NewFileWriterAdapter()

	require.NoError(t, w.WriteFile(path, []byte("first")))
	require.NoError(t, w.WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.example")

	require.NoError(t, NewFileWriterAdapter().WriteFile(path, []byte("API_KEY=\n")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".env.example", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
