package domain

import "fmt"

// ConfigurationError marks caller mistakes that must be rejected before any
// computation runs: an unrecognized theme token or an inverted filter range.
// A wrong palette or a nonsense predicate is worse than a visible failure,
// so these are never silently defaulted.
type ConfigurationError struct {
	Field  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Detail)
}

func configErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
