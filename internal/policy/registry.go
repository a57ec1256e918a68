package policy

// KnownTypecheckOptions lists every option name the type-check block accepts,
// in artifact order. Anything else in the block is a typo or an option from a
// different tool and is rejected at load time.
var KnownTypecheckOptions = []string{
	"plugins",
	"allow_redefinition",
	"check_untyped_defs",
	"disallow_any_explicit",
	"disallow_any_generics",
	"disallow_untyped_calls",
	"disallow_incomplete_defs",
	"ignore_errors",
	"ignore_missing_imports",
	"implicit_reexport",
	"local_partial_types",
	"strict_optional",
	"strict_equality",
	"no_implicit_optional",
	"warn_no_return",
	"warn_unused_ignores",
	"warn_redundant_casts",
	"warn_unused_configs",
	"warn_unreachable",
}

// KnownLintOptions lists every option name the lint block accepts.
var KnownLintOptions = []string{
	"format",
	"show_source",
	"statistics",
	"doctests",
	"docstring_style",
	"docstring_strictness",
	"max_complexity",
	"max_line_length",
	"ignore",
	"exclude",
}

// KnownLoggingOptions lists every option name the logging block accepts.
var KnownLoggingOptions = []string{
	"level",
	"format",
	"output",
	"pretty",
}

// IsKnownOption reports whether key is a recognized option of the given block.
func IsKnownOption(block, key string) bool {
	var known []string
	switch block {
	case BlockTypecheck:
		known = KnownTypecheckOptions
	case BlockLint:
		known = KnownLintOptions
	case BlockLogging:
		known = KnownLoggingOptions
	default:
		return false
	}

	for _, k := range known {
		if k == key {
			return true
		}
	}

	return false
}
