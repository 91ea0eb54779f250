// Package transform provides ready-made transform functions for envconf fields.
//
// Every constructor returns a func(raw string) (any, error) that can be passed
// to envconf.WithTransform:
//
//	reg.MustRegister("port", envconf.WithTransform(transform.Int()))
//	reg.MustRegister("hosts", envconf.WithTransform(transform.List(",", transform.String())))
//
// Structured values can be decoded from YAML (JSON is valid YAML) using
// github.com/goccy/go-yaml. YAMLPath reads a single section addressed with a
// colon-separated path such as "api:permissions":
//
//	reg.MustRegister("limits", envconf.WithTransform(transform.YAML[map[string]int]()))
//	reg.MustRegister("admin", envconf.WithTransform(transform.YAMLPath[bool]("roles:admin")))
package transform
