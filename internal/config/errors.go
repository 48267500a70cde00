package config

import (
	"errors"
	"strings"
)

// ErrInvalidConfiguration is the sentinel wrapped by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// FieldError describes a single violated environment variable.
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + " " + f.Reason
}

// ConfigurationError is returned when one or more environment variables are
// missing or invalid. It lists every violation, not only the first.
type ConfigurationError struct {
	Fields []FieldError
}

func (e *ConfigurationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return ErrInvalidConfiguration.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// HasField reports whether the named environment variable is among the violations.
func (e *ConfigurationError) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Field == name {
			return true
		}
	}
	return false
}
