package fxenv

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/envconf"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNilRegistry is returned when a nil registry is provided.
var ErrNilRegistry = errors.New("registry must not be nil")

// NewModule creates an Fx module resolving reg and supplying the result as
// envconf.Values tagged `name:"<name>"`. A nil lookup reads the process environment.
// Resolution happens when the values are first requested by the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, reg *envconf.Registry, lookup envconf.LookupFunc) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if reg == nil {
		return fx.Error(ErrNilRegistry)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (envconf.Values, error) {
					values, err := reg.Resolve(lookup)
					if err != nil {
						slog.Error("failed to resolve configuration", "name", name, "error", err)

						return nil, fmt.Errorf("resolving %s configuration: %w", name, err)
					}

					return values, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
