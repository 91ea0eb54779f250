package fxenv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/envconf"
	"github.com/0xalexb/envconf/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for an application using Fx
// whose configuration comes from environment variables.
type App struct {
	app *fx.App
	err error
}

// NewApp registers the logging fields on reg, resolves it and creates an Fx
// application with the results supplied. Configuration errors are reported by
// Start.
func NewApp(reg *envconf.Registry, opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if reg == nil {
		return &App{err: ErrNilRegistry}
	}

	values, err := resolve(reg, &options)
	if err != nil {
		return &App{err: err}
	}

	return &App{
		app: configure(reg, values, &options),
	}
}

func resolve(reg *envconf.Registry, options *Options) (envconf.Values, error) {
	err := logging.Register(reg, logging.LoggerConfig{Level: options.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("registering logging fields: %w", err)
	}

	values, err := reg.Resolve(options.Lookup)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}

	return values, nil
}

func configure(reg *envconf.Registry, values envconf.Values, options *Options) *fx.App {
	loggerConfig := logging.ConfigFrom(values)
	logger := createLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Supply(reg),
		fx.Supply(values),
		fx.Options(options.Modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app == nil {
		return errAppNotInitialized
	}

	if app.err != nil {
		return fmt.Errorf("failed to start app: %w", app.err)
	}

	if app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
