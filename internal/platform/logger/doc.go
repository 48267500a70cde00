// Package logger builds the process-wide slog JSON logger from the server
// configuration and offers buffer-backed helpers for asserting on log output
// in tests.
package logger
