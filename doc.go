// Package envconf builds application configuration from environment variables.
//
// Fields are registered on a Registry with an optional default, help text and
// transform. Resolve then reads every field in registration order, reports all
// missing variables at once together with the usage text, and exits the
// process with status 1. A value rejected by its transform aborts the pass and
// is returned as a *TransformError after the usage is printed.
//
// # Keys
//
// A field name is trimmed and lower-cased and must match [A-Za-z][A-Za-z0-9_]*.
// Its environment key is the upper-cased name, joined to the registry prefix
// with an underscore:
//
//	reg, _ := envconf.New(envconf.WithPrefix("someproj"))
//	reg.MustRegister("foo") // SOMEPROJ_FOO
//
// # Defaults
//
// WithDefault marks a default as supplied, whatever its value. A default of 0,
// "" or false is applied when the key is absent. Defaults are returned as
// given and are not passed through the transform.
//
// # Reading values
//
// Values are read through Field, Get or Snapshot once Resolve has completed.
// Resolve can be called again and replaces the snapshot; Register fails with
// ErrAlreadyResolved after the first successful pass.
//
//	port, err := envconf.Get[int](reg, "port")
package envconf
