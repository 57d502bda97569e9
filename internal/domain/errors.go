package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration loading
var (
	// ErrMissingValue is returned when a required environment value is unset or empty
	ErrMissingValue = errors.New("missing value")

	// ErrInvalidValue is returned when a value is present but malformed
	ErrInvalidValue = errors.New("invalid value")

	// ErrNetworkMismatch is returned when the fork target drifts from the remote endpoint
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrUnknownFormat is returned for an unsupported export format
	ErrUnknownFormat = errors.New("unknown format")
)

// FieldError reports a problem with one configuration field
type FieldError struct {
	Field  string // path in the configuration object, e.g. networks.sepolia.url
	EnvVar string // environment variable the field is sourced from, if any
	Err    error
}

func (e FieldError) Error() string {
	if e.EnvVar != "" {
		return fmt.Sprintf("%s (%s): %v", e.Field, e.EnvVar, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError aggregates every problem found while loading configuration
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Unwrap exposes the individual problems to errors.Is and errors.As
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		errs[i] = p
	}
	return errs
}

// EnvVars returns the environment variables named by the problems, without duplicates
func (e *ValidationError) EnvVars() []string {
	seen := make(map[string]bool)
	var vars []string
	for _, p := range e.Problems {
		if p.EnvVar == "" || seen[p.EnvVar] {
			continue
		}
		seen[p.EnvVar] = true
		vars = append(vars, p.EnvVar)
	}
	return vars
}
