package envconf

import (
	"fmt"
	"strings"
)

// DefaultHelp is the help text of fields registered without WithHelp.
const DefaultHelp = "Description not provided"

// TransformFunc converts the raw environment value into the field's value.
type TransformFunc func(raw string) (any, error)

// LookupFunc reports the value of an environment variable and whether it is set.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc reading from a static mapping.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}
}

type source string

const (
	sourceEnv     source = "env"
	sourceDefault source = "default"
)

// Field describes a single registered configuration field.
type Field struct {
	key        string
	name       string
	def        any
	hasDefault bool
	help       string
	transform  TransformFunc
}

// FieldOption configures a field at registration time.
type FieldOption func(*Field)

// WithDefault sets the value used when the key is absent from the environment.
// The default is returned as is, it is not passed through the transform.
// Zero values such as 0, "" or false are valid defaults.
func WithDefault(value any) FieldOption {
	return func(f *Field) {
		f.def = value
		f.hasDefault = true
	}
}

// WithHelp sets the help text shown in usage.
func WithHelp(help string) FieldOption {
	return func(f *Field) {
		f.help = help
	}
}

// WithTransform sets the function converting the raw value.
// A nil transform keeps the identity transform.
func WithTransform(fn TransformFunc) FieldOption {
	return func(f *Field) {
		if fn != nil {
			f.transform = fn
		}
	}
}

func identity(raw string) (any, error) {
	return raw, nil
}

// Key returns the fully-qualified environment variable name.
func (f Field) Key() string {
	return f.key
}

// Name returns the short name the field was registered with.
func (f Field) Name() string {
	return f.name
}

// Help returns the help text.
func (f Field) Help() string {
	return f.help
}

// Default returns the default value and whether one was supplied.
func (f Field) Default() (any, bool) {
	return f.def, f.hasDefault
}

func (f *Field) lookup(lookup LookupFunc) (string, bool) {
	return lookup(f.key)
}

func (f *Field) resolve(lookup LookupFunc) (any, source, error) {
	raw, ok := f.lookup(lookup)
	if !ok {
		if f.hasDefault {
			return f.def, sourceDefault, nil
		}

		return nil, "", fmt.Errorf("%s %w", f.key, ErrMissingKey)
	}

	value, err := f.transform(raw)
	if err != nil {
		return nil, "", &TransformError{Key: f.key, Raw: raw, Err: err}
	}

	return value, sourceEnv, nil
}

func (f *Field) describe(indent, width int) string {
	var b strings.Builder

	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString(f.key)
	b.WriteString(strings.Repeat(" ", max(width-len(f.key), 0)))
	b.WriteString(" - ")
	b.WriteString(f.help)

	if f.hasDefault {
		_, _ = fmt.Fprintf(&b, " (default=%v)", f.def)
	}

	return b.String()
}
