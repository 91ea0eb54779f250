package fxenv

import (
	"github.com/0xalexb/envconf"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	Lookup   envconf.LookupFunc
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level used when the log_level variable is unset.
// Valid levels are: "debug", "info", "warn", "error".
// If not set, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLookup sets where environment variables are read from.
// If not set, the process environment is used.
func WithLookup(lookup envconf.LookupFunc) Option {
	return func(opts *Options) {
		opts.Lookup = lookup
	}
}
