package policy

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Valid lint output formats.
var validLintFormats = map[string]bool{
	"":        true, // Empty defaults to default
	"default": true,
	"json":    true,
	"quiet":   true,
}

// Valid docstring conventions.
var validDocstringStyles = map[string]bool{
	"":       true, // Empty defaults to pep257
	"pep257": true,
	"numpy":  true,
	"google": true,
	"all":    true,
}

// Valid docstring strictness levels.
var validDocstringStrictness = map[string]bool{
	"":      true, // Empty defaults to long
	"none":  true,
	"short": true,
	"long":  true,
}

// Valid logging levels.
var validLogLevels = map[string]bool{
	"":      true, // Empty defaults to info
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Valid logging formats.
var validLogFormats = map[string]bool{
	"":        true, // Empty defaults to json
	"json":    true,
	"console": true,
	"text":    true, // Alias for console
	"pretty":  true,
}

// ruleCodePattern matches well-formed rule-code tokens: a short uppercase
// prefix naming the rule family followed by the rule number (D100, W504).
var ruleCodePattern = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{1,4}$`)

// Validate checks the policy for errors.
// It validates value ranges, rule-code tokens, exclusion globs, and
// cross-field constraints. Returns a ValidationError containing all errors
// found, or nil if valid.
func (c *Config) Validate() error {
	errs := &ValidationError{}

	validateTypecheck(c, errs)
	validateLint(c, errs)
	validateLogging(c, errs)

	return errs.ToError()
}

// validateTypecheck validates the type-check policy block.
func validateTypecheck(c *Config, errs *ValidationError) {
	for i, plugin := range c.Typecheck.Plugins {
		if strings.TrimSpace(plugin) == "" {
			errs.Addf("typecheck.plugins[%d] must not be empty", i)
		}
	}

	for _, dup := range lo.FindDuplicates(c.Typecheck.Plugins) {
		errs.Addf("typecheck.plugins contains duplicate entry %q", dup)
	}

	// A policy that silences the checker contradicts the strictness flags
	// the rest of the block turns on.
	if c.Typecheck.IgnoreErrors && c.Typecheck.IsStrictExceptIgnores() {
		errs.Add("typecheck.ignore_errors disables every other typecheck option")
	}
}

// IsStrictExceptIgnores reports whether any tightening flag is enabled,
// ignoring the ignore_errors kill switch itself.
func (t *TypecheckConfig) IsStrictExceptIgnores() bool {
	return t.CheckUntypedDefs || t.DisallowAnyExplicit || t.DisallowAnyGenerics ||
		t.DisallowUntypedCalls || t.DisallowIncompleteDefs || t.StrictOptional ||
		t.StrictEquality || t.NoImplicitOptional || t.WarnNoReturn ||
		t.WarnUnusedIgnores || t.WarnRedundantCasts || t.WarnUnreachable
}

// validateLint validates the style/lint policy block.
func validateLint(c *Config, errs *ValidationError) {
	l := &c.Lint

	if !validLintFormats[l.Format] {
		errs.Addf("lint.format is invalid (got %q, valid: default, json, quiet)", l.Format)
	}

	if !validDocstringStyles[l.DocstringStyle] {
		errs.Addf("lint.docstring_style is invalid (got %q, valid: pep257, numpy, google, all)",
			l.DocstringStyle)
	}

	if !validDocstringStrictness[l.DocstringStrictness] {
		errs.Addf("lint.docstring_strictness is invalid (got %q, valid: none, short, long)",
			l.DocstringStrictness)
	}

	if l.MaxComplexity <= 0 {
		errs.Addf("lint.max_complexity must be a positive integer (got %d)", l.MaxComplexity)
	}

	if l.MaxLineLength <= 0 {
		errs.Addf("lint.max_line_length must be a positive integer (got %d)", l.MaxLineLength)
	}

	validateRuleCodes(l.Ignore, errs)
	validateExcludes(l.Exclude, errs)
}

// validateRuleCodes validates the ignored rule-code list: every entry must
// be a well-formed token and appear at most once.
func validateRuleCodes(codes []string, errs *ValidationError) {
	for i, code := range codes {
		if !ruleCodePattern.MatchString(code) {
			errs.Addf("lint.ignore[%d] is not a valid rule code (got %q)", i, code)
		}
	}

	for _, dup := range lo.FindDuplicates(codes) {
		errs.Addf("lint.ignore contains duplicate rule code %q", dup)
	}
}

// validateExcludes validates the excluded-path list: every entry must be a
// syntactically valid glob pattern and appear at most once.
func validateExcludes(patterns []string, errs *ValidationError) {
	for i, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			errs.Addf("lint.exclude[%d] must not be empty", i)
			continue
		}
		// filepath.Match reports ErrBadPattern for malformed globs such as
		// an unclosed character class; the match outcome itself is unused.
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			errs.Addf("lint.exclude[%d] is not a valid glob pattern (got %q)", i, pattern)
		}
	}

	for _, dup := range lo.FindDuplicates(patterns) {
		errs.Addf("lint.exclude contains duplicate pattern %q", dup)
	}
}

// validateLogging validates the logging block.
func validateLogging(c *Config, errs *ValidationError) {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs.Addf("logging.level is invalid (got %q, valid: debug, info, warn, error)",
			c.Logging.Level)
	}

	if !validLogFormats[c.Logging.Format] {
		errs.Addf("logging.format is invalid (got %q, valid: json, console, text, pretty)",
			c.Logging.Format)
	}
}
