package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/trebuchet-org/toolcfg/internal/domain"
	"github.com/trebuchet-org/toolcfg/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Format is an export format
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatFoundry Format = "foundry"
	FormatEnv     Format = "env"
)

// Formats lists the supported export formats
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatFoundry, FormatEnv}
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, s)
}

// Encode writes cfg in the given format
func Encode(w io.Writer, format Format, cfg *config.ToolchainConfiguration) error {
	switch format {
	case FormatJSON:
		return EncodeJSON(w, cfg)
	case FormatYAML:
		return EncodeYAML(w, cfg)
	case FormatFoundry:
		return EncodeFoundryTOML(w, cfg)
	case FormatEnv:
		return EncodeEnvTemplate(w)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownFormat, format)
	}
}

// EncodeJSON writes the configuration object as indented JSON
func EncodeJSON(w io.Writer, cfg *config.ToolchainConfiguration) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// EncodeYAML writes the configuration object as YAML
func EncodeYAML(w io.Writer, cfg *config.ToolchainConfiguration) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

// EncodeEnvTemplate writes a .env skeleton listing every variable the
// configuration reads, with empty values
func EncodeEnvTemplate(w io.Writer) error {
	content, err := godotenv.Marshal(map[string]string{
		config.EnvRPCURL:     "",
		config.EnvPrivateKey: "",
		config.EnvAPIKey:     "",
	})
	if err != nil {
		return fmt.Errorf("failed to encode env template: %w", err)
	}
	_, err = io.WriteString(w, content+"\n")
	return err
}

// Marshal encodes cfg into a byte slice
func Marshal(format Format, cfg *config.ToolchainConfiguration) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
