package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// ExportRenderer renders export results
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{out: out}
}

// Render prints the exported document, or a summary when it went to a file
func (r *ExportRenderer) Render(result *usecase.ExportConfigResult) error {
	if result.Path == "" {
		_, err := r.out.Write(result.Data)
		return err
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Exported %s config to %s", result.Format, getRelativePath(result.Path))))
	if result.Masked {
		fmt.Fprintln(r.out, FormatWarning("The file holds masked values; pass --no-redact to export the real ones"))
	}
	if len(result.Requires) > 0 {
		fmt.Fprintf(r.out, "🔑 Requires env: %s\n", strings.Join(result.Requires, ", "))
	}
	return nil
}
