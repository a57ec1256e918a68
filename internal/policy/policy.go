// Package policy provides loading, parsing, and validation of the taskvet
// static-analysis policy artifact.
package policy

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// Block names. Every Setting belongs to exactly one of these.
const (
	BlockTypecheck = "typecheck"
	BlockLint      = "lint"
	BlockLogging   = "logging"
)

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Default scalar limits written by `taskvet policy init`.
const (
	DefaultMaxComplexity = 6
	DefaultMaxLineLength = 80
)

// Config represents the complete taskvet policy artifact: two policy blocks
// consumed by the analysis tooling plus the tool's own logging settings.
type Config struct {
	Typecheck TypecheckConfig `yaml:"typecheck" toml:"typecheck"`
	Lint      LintConfig      `yaml:"lint" toml:"lint"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// TypecheckConfig declares strictness flags for the type-checking pass.
// Each boolean toggles one class of check; Plugins names extensions to load.
type TypecheckConfig struct {
	Plugins []string `yaml:"plugins" toml:"plugins"`

	AllowRedefinition      bool `yaml:"allow_redefinition" toml:"allow_redefinition"`
	CheckUntypedDefs       bool `yaml:"check_untyped_defs" toml:"check_untyped_defs"`
	DisallowAnyExplicit    bool `yaml:"disallow_any_explicit" toml:"disallow_any_explicit"`
	DisallowAnyGenerics    bool `yaml:"disallow_any_generics" toml:"disallow_any_generics"`
	DisallowUntypedCalls   bool `yaml:"disallow_untyped_calls" toml:"disallow_untyped_calls"`
	DisallowIncompleteDefs bool `yaml:"disallow_incomplete_defs" toml:"disallow_incomplete_defs"`
	IgnoreErrors           bool `yaml:"ignore_errors" toml:"ignore_errors"`
	IgnoreMissingImports   bool `yaml:"ignore_missing_imports" toml:"ignore_missing_imports"`
	ImplicitReexport       bool `yaml:"implicit_reexport" toml:"implicit_reexport"`
	LocalPartialTypes      bool `yaml:"local_partial_types" toml:"local_partial_types"`
	StrictOptional         bool `yaml:"strict_optional" toml:"strict_optional"`
	StrictEquality         bool `yaml:"strict_equality" toml:"strict_equality"`
	NoImplicitOptional     bool `yaml:"no_implicit_optional" toml:"no_implicit_optional"`
	WarnNoReturn           bool `yaml:"warn_no_return" toml:"warn_no_return"`
	WarnUnusedIgnores      bool `yaml:"warn_unused_ignores" toml:"warn_unused_ignores"`
	WarnRedundantCasts     bool `yaml:"warn_redundant_casts" toml:"warn_redundant_casts"`
	WarnUnusedConfigs      bool `yaml:"warn_unused_configs" toml:"warn_unused_configs"`
	WarnUnreachable        bool `yaml:"warn_unreachable" toml:"warn_unreachable"`
}

// LintConfig declares formatting, complexity, and documentation constraints
// for the style pass.
//
//nolint:govet // Field order mirrors the artifact layout, not memory alignment
type LintConfig struct {
	// Format selects the report output format. Empty defaults to "default".
	Format string `yaml:"format" toml:"format"`

	// ShowSource includes the offending source line in each report entry.
	ShowSource bool `yaml:"show_source" toml:"show_source"`

	// Statistics prints per-rule violation counts after the report.
	Statistics bool `yaml:"statistics" toml:"statistics"`

	// Doctests enables checking of code embedded in documentation.
	Doctests bool `yaml:"doctests" toml:"doctests"`

	// DocstringStyle selects the documentation convention to enforce.
	// Empty defaults to "pep257".
	DocstringStyle string `yaml:"docstring_style" toml:"docstring_style"`

	// DocstringStrictness selects how much documentation is mandatory.
	// Empty defaults to "long".
	DocstringStrictness string `yaml:"docstring_strictness" toml:"docstring_strictness"`

	// MaxComplexity is the maximum allowed cyclomatic complexity per function.
	MaxComplexity int `yaml:"max_complexity" toml:"max_complexity"`

	// MaxLineLength is the maximum allowed source line length in columns.
	MaxLineLength int `yaml:"max_line_length" toml:"max_line_length"`

	// Ignore lists rule codes to suppress, in author order.
	Ignore []string `yaml:"ignore" toml:"ignore"`

	// Exclude lists path globs excluded from analysis, in author order.
	Exclude []string `yaml:"exclude" toml:"exclude"`
}

// LoggingConfig defines taskvet's own logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
	Pretty bool   `yaml:"pretty" toml:"pretty"` // force colored console output
}

// Default returns the strict policy written by `taskvet policy init`:
// every strictness flag enabled, nothing escapes analysis beyond the
// standard scratch directories, and the lesson's agreed suppressions.
func Default() *Config {
	return &Config{
		Typecheck: TypecheckConfig{
			Plugins:                nil,
			AllowRedefinition:      false,
			CheckUntypedDefs:       true,
			DisallowAnyExplicit:    true,
			DisallowAnyGenerics:    true,
			DisallowUntypedCalls:   true,
			DisallowIncompleteDefs: true,
			IgnoreErrors:           false,
			IgnoreMissingImports:   false,
			ImplicitReexport:       false,
			LocalPartialTypes:      true,
			StrictOptional:         true,
			StrictEquality:         true,
			NoImplicitOptional:     true,
			WarnNoReturn:           true,
			WarnUnusedIgnores:      true,
			WarnRedundantCasts:     true,
			WarnUnusedConfigs:      true,
			WarnUnreachable:        true,
		},
		Lint: LintConfig{
			Format:              "default",
			ShowSource:          true,
			Statistics:          false,
			Doctests:            true,
			DocstringStyle:      "pep257",
			DocstringStrictness: "long",
			MaxComplexity:       DefaultMaxComplexity,
			MaxLineLength:       DefaultMaxLineLength,
			Ignore:              []string{"D100", "D104", "W504"},
			Exclude:             []string{".git", "__pycache__", ".venv", ".eggs", "*.egg"},
		},
		Logging: LoggingConfig{
			Level:  LevelInfo,
			Format: "console",
			Output: "stdout",
			Pretty: false,
		},
	}
}

// GetEffectiveFormat returns the lint output format with default fallback.
func (l *LintConfig) GetEffectiveFormat() string {
	if l.Format == "" {
		return "default"
	}
	return l.Format
}

// GetEffectiveDocstringStyle returns the docstring convention with default fallback.
func (l *LintConfig) GetEffectiveDocstringStyle() string {
	if l.DocstringStyle == "" {
		return "pep257"
	}
	return l.DocstringStyle
}

// GetEffectiveDocstringStrictness returns the docstring strictness with default fallback.
func (l *LintConfig) GetEffectiveDocstringStrictness() string {
	if l.DocstringStrictness == "" {
		return "long"
	}
	return l.DocstringStrictness
}

// GetMaxComplexityOption returns the complexity ceiling as an Option.
// Returns None if the value is not set (zero or negative).
func (l *LintConfig) GetMaxComplexityOption() mo.Option[int] {
	if l.MaxComplexity <= 0 {
		return mo.None[int]()
	}
	return mo.Some(l.MaxComplexity)
}

// GetMaxLineLengthOption returns the line length ceiling as an Option.
// Returns None if the value is not set (zero or negative).
func (l *LintConfig) GetMaxLineLengthOption() mo.Option[int] {
	if l.MaxLineLength <= 0 {
		return mo.None[int]()
	}
	return mo.Some(l.MaxLineLength)
}

// IsStrict reports whether every strictness flag that tightens checking is on
// and every flag that loosens it is off.
func (t *TypecheckConfig) IsStrict() bool {
	tightening := t.CheckUntypedDefs && t.DisallowAnyExplicit && t.DisallowAnyGenerics &&
		t.DisallowUntypedCalls && t.DisallowIncompleteDefs && t.LocalPartialTypes &&
		t.StrictOptional && t.StrictEquality && t.NoImplicitOptional &&
		t.WarnNoReturn && t.WarnUnusedIgnores && t.WarnRedundantCasts &&
		t.WarnUnusedConfigs && t.WarnUnreachable
	loosening := t.AllowRedefinition || t.IgnoreErrors || t.IgnoreMissingImports ||
		t.ImplicitReexport

	return tightening && !loosening
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
