package envconf

import (
	"io"
	"log/slog"
)

// Option defines a function type for configuring a Registry.
type Option func(*Registry)

// WithPrefix sets the namespace prepended to every field key.
// The prefix is trimmed and upper-cased; it must be a valid identifier.
func WithPrefix(prefix string) Option {
	return func(r *Registry) {
		r.prefix = prefix
		r.hasPrefix = true
	}
}

// WithDescription sets the text printed under the usage header.
func WithDescription(description string) Option {
	return func(r *Registry) {
		r.description = description
	}
}

// WithOutput sets where error lines and usage are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.out = w
		}
	}
}

// WithExit sets the function called with status 1 when required keys are missing.
// Defaults to os.Exit.
func WithExit(exit func(code int)) Option {
	return func(r *Registry) {
		if exit != nil {
			r.exit = exit
		}
	}
}

// WithLogger sets the logger used for resolution diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}
