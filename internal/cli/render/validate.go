package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/usecase"
)

// ValidateRenderer renders validation results
type ValidateRenderer struct {
	out  io.Writer
	json bool
}

// NewValidateRenderer creates a new validate renderer
func NewValidateRenderer(out io.Writer, json bool) *ValidateRenderer {
	return &ValidateRenderer{out: out, json: json}
}

type problemJSON struct {
	Field  string `json:"field"`
	EnvVar string `json:"envVar,omitempty"`
	Error  string `json:"error"`
}

type checkJSON struct {
	Name    string `json:"name"`
	Skipped bool   `json:"skipped,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Error   string `json:"error,omitempty"`
}

type validateJSON struct {
	Valid    bool          `json:"valid"`
	Problems []problemJSON `json:"problems"`
	Checks   []checkJSON   `json:"checks,omitempty"`
}

// Render renders the validation result
func (r *ValidateRenderer) Render(result *usecase.ValidateConfigResult) error {
	if r.json {
		return writeJSON(r.out, toValidateJSON(result))
	}

	if len(result.Problems) == 0 {
		fmt.Fprintln(r.out, FormatSuccess("Configuration is valid"))
	} else {
		fmt.Fprintf(r.out, "%d configuration problem(s):\n", len(result.Problems))
		for _, p := range result.Problems {
			fmt.Fprintf(r.out, "  %s\n", color.New(color.FgRed).Sprintf("❌ %s", p.Error()))
		}
		verr := &domain.ValidationError{Problems: result.Problems}
		if vars := verr.EnvVars(); len(vars) > 0 {
			fmt.Fprintln(r.out)
			fmt.Fprintf(r.out, "🔑 Check these variables in .env or the environment: %s\n", strings.Join(vars, ", "))
		}
	}

	if len(result.Checks) > 0 {
		fmt.Fprintln(r.out)
		for _, c := range result.Checks {
			switch {
			case c.Skipped:
				fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: skipped (%s)", c.Name, c.Detail)))
			case c.Err != nil:
				fmt.Fprintln(r.out, FormatError(fmt.Sprintf("%s check failed: %v", c.Name, c.Err)))
			default:
				fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s: %s", c.Name, c.Detail)))
			}
		}
	}

	return nil
}

func toValidateJSON(result *usecase.ValidateConfigResult) validateJSON {
	out := validateJSON{
		Valid:    result.Valid(),
		Problems: make([]problemJSON, 0, len(result.Problems)),
	}
	for _, p := range result.Problems {
		out.Problems = append(out.Problems, problemJSON{
			Field:  p.Field,
			EnvVar: p.EnvVar,
			Error:  p.Err.Error(),
		})
	}
	for _, c := range result.Checks {
		cj := checkJSON{Name: c.Name, Skipped: c.Skipped, Detail: c.Detail}
		if c.Err != nil {
			cj.Error = c.Err.Error()
		}
		out.Checks = append(out.Checks, cj)
	}
	return out
}
