// Package config handles configuration loading, parsing, and validation
// from the process environment and an optional .env file. It produces a
// single validated Config value at process start, which is then passed
// explicitly to every component that needs it.
package config
