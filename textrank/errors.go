package textrank

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrInvalidInput  = errors.New("textrank: invalid input")
	ErrConfiguration = errors.New("textrank: invalid configuration")
)

// InvalidInputError reports text that cannot be ranked: empty or
// whitespace-only, not valid UTF-8, or larger than Config.MaxInputBytes.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "textrank: invalid input: " + e.Reason
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigurationError reports a Config field that failed validation.
// Field is the yaml name of the field, e.g. "window" or "pos_tags[0]".
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("textrank: invalid configuration: %s %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
