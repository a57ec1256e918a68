package policy

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"
)

// Setting is one declared configuration entry: an option name, its value,
// and the block that owns it. Values are booleans, strings, integers, or
// ordered string lists; list order is the author's and is preserved.
type Setting struct {
	Value any
	Block string
	Key   string
}

// String renders the setting as block.key=value.
func (s Setting) String() string {
	return fmt.Sprintf("%s.%s=%v", s.Block, s.Key, s.Value)
}

// Settings flattens the policy blocks into the full list of declared
// settings, in artifact order. The logging block is taskvet's own runtime
// configuration and is not part of the policy contract, so it is excluded.
func (c *Config) Settings() []Setting {
	t := &c.Typecheck
	l := &c.Lint

	return []Setting{
		{Block: BlockTypecheck, Key: "plugins", Value: t.Plugins},
		{Block: BlockTypecheck, Key: "allow_redefinition", Value: t.AllowRedefinition},
		{Block: BlockTypecheck, Key: "check_untyped_defs", Value: t.CheckUntypedDefs},
		{Block: BlockTypecheck, Key: "disallow_any_explicit", Value: t.DisallowAnyExplicit},
		{Block: BlockTypecheck, Key: "disallow_any_generics", Value: t.DisallowAnyGenerics},
		{Block: BlockTypecheck, Key: "disallow_untyped_calls", Value: t.DisallowUntypedCalls},
		{Block: BlockTypecheck, Key: "disallow_incomplete_defs", Value: t.DisallowIncompleteDefs},
		{Block: BlockTypecheck, Key: "ignore_errors", Value: t.IgnoreErrors},
		{Block: BlockTypecheck, Key: "ignore_missing_imports", Value: t.IgnoreMissingImports},
		{Block: BlockTypecheck, Key: "implicit_reexport", Value: t.ImplicitReexport},
		{Block: BlockTypecheck, Key: "local_partial_types", Value: t.LocalPartialTypes},
		{Block: BlockTypecheck, Key: "strict_optional", Value: t.StrictOptional},
		{Block: BlockTypecheck, Key: "strict_equality", Value: t.StrictEquality},
		{Block: BlockTypecheck, Key: "no_implicit_optional", Value: t.NoImplicitOptional},
		{Block: BlockTypecheck, Key: "warn_no_return", Value: t.WarnNoReturn},
		{Block: BlockTypecheck, Key: "warn_unused_ignores", Value: t.WarnUnusedIgnores},
		{Block: BlockTypecheck, Key: "warn_redundant_casts", Value: t.WarnRedundantCasts},
		{Block: BlockTypecheck, Key: "warn_unused_configs", Value: t.WarnUnusedConfigs},
		{Block: BlockTypecheck, Key: "warn_unreachable", Value: t.WarnUnreachable},
		{Block: BlockLint, Key: "format", Value: l.Format},
		{Block: BlockLint, Key: "show_source", Value: l.ShowSource},
		{Block: BlockLint, Key: "statistics", Value: l.Statistics},
		{Block: BlockLint, Key: "doctests", Value: l.Doctests},
		{Block: BlockLint, Key: "docstring_style", Value: l.DocstringStyle},
		{Block: BlockLint, Key: "docstring_strictness", Value: l.DocstringStrictness},
		{Block: BlockLint, Key: "max_complexity", Value: l.MaxComplexity},
		{Block: BlockLint, Key: "max_line_length", Value: l.MaxLineLength},
		{Block: BlockLint, Key: "ignore", Value: l.Ignore},
		{Block: BlockLint, Key: "exclude", Value: l.Exclude},
	}
}

// SettingsByBlock groups the declared settings by owning block.
func (c *Config) SettingsByBlock() map[string][]Setting {
	return lo.GroupBy(c.Settings(), func(s Setting) string { return s.Block })
}

// EquivalentTo reports whether two policies declare the same key/value set
// per block, independent of key ordering. List-valued settings compare
// element-wise: their order is the author's and carries through a round trip.
func (c *Config) EquivalentTo(other *Config) bool {
	if other == nil {
		return false
	}

	mine := settingsIndex(c)
	theirs := settingsIndex(other)

	if len(mine) != len(theirs) {
		return false
	}

	for key, val := range mine {
		otherVal, ok := theirs[key]
		if !ok || !valuesEqual(val, otherVal) {
			return false
		}
	}

	return true
}

// settingsIndex maps "block.key" to value for set comparison.
func settingsIndex(c *Config) map[string]any {
	return lo.SliceToMap(c.Settings(), func(s Setting) (string, any) {
		return s.Block + "." + s.Key, s.Value
	})
}

// valuesEqual compares two setting values. Nil and empty string lists are
// the same declaration.
func valuesEqual(a, b any) bool {
	if as, ok := a.([]string); ok {
		bs, ok := b.([]string)
		if !ok {
			return false
		}
		if len(as) == 0 && len(bs) == 0 {
			return true
		}
		return reflect.DeepEqual(as, bs)
	}

	return a == b
}
