package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// FileWriterAdapter writes export output to disk
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteFile atomically replaces path with data, creating parent directories.
// Readers never observe a partially written file.
func (w *FileWriterAdapter) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
