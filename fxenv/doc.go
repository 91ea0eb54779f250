// Package fxenv wires envconf registries into Uber's Fx dependency injection framework.
//
// NewModule supplies the resolved envconf.Values of a registry under a DI name
// tag, so several registries can coexist in one container:
//
//	fx.New(
//	    fxenv.NewModule("db", dbRegistry, nil),
//	    fx.Invoke(fx.Annotate(func(values envconf.Values) { ... }, fx.ParamTags(`name:"db"`))),
//	)
//
// NewApp is a starting point for applications: it registers the logging
// fields on the registry, resolves it, and supplies the values, the registry
// and a configured *slog.Logger to the container.
package fxenv
