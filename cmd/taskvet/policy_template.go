package main

// defaultPolicyTemplate is the artifact written by `taskvet policy init`:
// the strict homework policy with every strictness flag enabled.
const defaultPolicyTemplate = `# taskvet static-analysis policy
#
# typecheck: strictness flags for the type-checking pass.
# lint:      formatting, complexity, and documentation constraints.
# logging:   taskvet's own log output.

typecheck:
  plugins: []
  allow_redefinition: false
  check_untyped_defs: true
  disallow_any_explicit: true
  disallow_any_generics: true
  disallow_untyped_calls: true
  disallow_incomplete_defs: true
  ignore_errors: false
  ignore_missing_imports: false
  implicit_reexport: false
  local_partial_types: true
  strict_optional: true
  strict_equality: true
  no_implicit_optional: true
  warn_no_return: true
  warn_unused_ignores: true
  warn_redundant_casts: true
  warn_unused_configs: true
  warn_unreachable: true

lint:
  format: default
  show_source: true
  statistics: false
  doctests: true
  docstring_style: pep257
  docstring_strictness: long
  max_complexity: 6
  max_line_length: 80
  ignore:
    - D100
    - D104
    - W504
  exclude:
    - .git
    - __pycache__
    - .venv
    - .eggs
    - "*.egg"

logging:
  level: info
  format: console
  output: stdout
  pretty: false
`
