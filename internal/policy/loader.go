package policy

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the serialization format of a policy artifact.
type Format string

// Supported policy file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat returns the policy format for a file path based on its
// extension. Unrecognized extensions default to YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads and parses a policy file from the given path. The format is
// detected from the file extension. Environment variables in the format
// ${VAR_NAME} are expanded before parsing.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open policy file %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close policy file: %w", cerr)
		}
	}()

	return LoadFromReader(file, DetectFormat(path))
}

// LoadFromReader reads and parses a policy document from an io.Reader.
// Environment variables in the format ${VAR_NAME} are expanded before
// parsing. Unknown option names are rejected.
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(content)))

	var cfg Config

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(expanded))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse policy TOML: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(expanded))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("policy: unsupported format %q", format)
	}

	return &cfg, nil
}

// Marshal serializes the policy in the given format.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		data, err := toml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal policy TOML: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal policy YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("policy: unsupported format %q", format)
	}
}
