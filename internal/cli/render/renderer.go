package render

import (
	"encoding/json"
	"io"

	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// Renderer renders the result of a use case
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ShowConfigResult]     = (*ConfigRenderer)(nil)
	_ Renderer[*usecase.ValidateConfigResult] = (*ValidateRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult]   = (*NetworksRenderer)(nil)
	_ Renderer[*usecase.ExportConfigResult]   = (*ExportRenderer)(nil)
)

// writeJSON writes v as indented JSON
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
