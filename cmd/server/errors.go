package main

import (
	"errors"
	"fmt"
)

// ErrStartup is wrapped by every StartupError.
var ErrStartup = errors.New("server startup failed")

// StartupError reports that the HTTP listener could not be bound.
type StartupError struct {
	Addr string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: cannot listen on %s: %v", ErrStartup, e.Addr, e.Err)
}

// Unwrap exposes both the sentinel and the underlying network error.
func (e *StartupError) Unwrap() []error {
	return []error{ErrStartup, e.Err}
}
