package policy

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// documentSchema is the structural contract for policy artifacts. Each block
// closes over its recognized option names (additionalProperties: false), so
// a typo'd or foreign option is reported with its exact location before the
// semantic validator runs.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "typecheck": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "plugins": {"type": "array", "items": {"type": "string"}},
        "allow_redefinition": {"type": "boolean"},
        "check_untyped_defs": {"type": "boolean"},
        "disallow_any_explicit": {"type": "boolean"},
        "disallow_any_generics": {"type": "boolean"},
        "disallow_untyped_calls": {"type": "boolean"},
        "disallow_incomplete_defs": {"type": "boolean"},
        "ignore_errors": {"type": "boolean"},
        "ignore_missing_imports": {"type": "boolean"},
        "implicit_reexport": {"type": "boolean"},
        "local_partial_types": {"type": "boolean"},
        "strict_optional": {"type": "boolean"},
        "strict_equality": {"type": "boolean"},
        "no_implicit_optional": {"type": "boolean"},
        "warn_no_return": {"type": "boolean"},
        "warn_unused_ignores": {"type": "boolean"},
        "warn_redundant_casts": {"type": "boolean"},
        "warn_unused_configs": {"type": "boolean"},
        "warn_unreachable": {"type": "boolean"}
      }
    },
    "lint": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "format": {"type": "string"},
        "show_source": {"type": "boolean"},
        "statistics": {"type": "boolean"},
        "doctests": {"type": "boolean"},
        "docstring_style": {"type": "string"},
        "docstring_strictness": {"type": "string"},
        "max_complexity": {"type": "integer", "exclusiveMinimum": 0},
        "max_line_length": {"type": "integer", "exclusiveMinimum": 0},
        "ignore": {"type": "array", "items": {"type": "string"}, "uniqueItems": true},
        "exclude": {"type": "array", "items": {"type": "string"}, "uniqueItems": true}
      }
    },
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"type": "string"},
        "format": {"type": "string"},
        "output": {"type": "string"},
        "pretty": {"type": "boolean"}
      }
    }
  }
}`

// ValidateDocument checks a raw policy document against the structural
// schema before any decoding into Config. It reports unknown options, type
// mismatches, non-positive limits, and duplicate list entries with their
// document paths. Returns a ValidationError, or nil if the document conforms.
func ValidateDocument(content []byte, format Format) error {
	doc, err := decodeGeneric(content, format)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("policy: schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := &ValidationError{}
	for _, desc := range result.Errors() {
		errs.Addf("%s: %s", desc.Field(), desc.Description())
	}

	return errs.ToError()
}

// decodeGeneric parses a policy document into untyped maps for schema
// validation.
func decodeGeneric(content []byte, format Format) (map[string]any, error) {
	doc := map[string]any{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse policy TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("policy: unsupported format %q", format)
	}

	return doc, nil
}
