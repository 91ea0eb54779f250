// Package logging provides structured logging using Go's standard library log/slog,
// configured from environment variables through an envconf.Registry.
package logging
