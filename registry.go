package envconf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"strings"
)

// ExitCodeMissing is the status passed to the exit function when keys are missing.
const ExitCodeMissing = 1

var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Values is a resolved configuration snapshot keyed by short field name.
type Values map[string]any

// Registry holds the ordered field specifications and the resolved snapshot.
// Registration and resolution are expected to run from a single goroutine at
// startup; a resolved snapshot may then be read concurrently.
type Registry struct {
	prefix      string
	hasPrefix   bool
	description string

	fields   []*Field
	index    map[string]*Field
	keys     map[string]struct{}
	width    int
	computed Values

	snapshot Values
	resolved bool

	out    io.Writer
	exit   func(code int)
	logger *slog.Logger
}

// New creates a Registry. It returns ErrInvalidPrefix when WithPrefix was
// given something that is not an identifier.
func New(opts ...Option) (*Registry, error) {
	reg := &Registry{
		index:    make(map[string]*Field),
		keys:     make(map[string]struct{}),
		computed: make(Values),
		out:      os.Stdout,
		exit:     os.Exit,
		logger:   slog.Default(),
	}

	for _, apply := range opts {
		apply(reg)
	}

	reg.description = strings.TrimSpace(reg.description)

	if reg.hasPrefix {
		reg.prefix = strings.TrimSpace(reg.prefix)
		if !validName(reg.prefix) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPrefix, reg.prefix)
		}
	}

	return reg, nil
}

func validName(name string) bool {
	return namePattern.MatchString(name)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) applyPrefix(name string) string {
	if r.prefix == "" {
		return strings.ToUpper(name)
	}

	return strings.ToUpper(r.prefix + "_" + name)
}

// Prefix returns the validated prefix, empty when none was set.
func (r *Registry) Prefix() string {
	return r.prefix
}

// Description returns the trimmed description.
func (r *Registry) Description() string {
	return r.description
}

// Register adds a field. The name is trimmed and lower-cased; its key is the
// upper-cased name joined to the prefix with an underscore.
func (r *Registry) Register(name string, opts ...FieldOption) error {
	if r.resolved {
		return fmt.Errorf("register %q: %w", name, ErrAlreadyResolved)
	}

	name = normalizeName(name)
	if !validName(name) {
		return fmt.Errorf("%w: %q is not a valid environment variable name", ErrInvalidName, name)
	}

	if r.nameTaken(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	key := r.applyPrefix(name)
	if _, exists := r.keys[key]; exists {
		return fmt.Errorf("%w: key %s", ErrDuplicateName, key)
	}

	field := &Field{
		key:       key,
		name:      name,
		help:      DefaultHelp,
		transform: identity,
	}

	for _, apply := range opts {
		apply(field)
	}

	r.keys[key] = struct{}{}
	r.width = max(r.width, len(key))
	r.index[name] = field
	r.fields = append(r.fields, field)

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, opts ...FieldOption) {
	err := r.Register(name, opts...)
	if err != nil {
		panic(err)
	}
}

// AddComputed stores a value that is not backed by an environment variable.
// Computed values are part of every snapshot, including later resolutions.
// Callers must serialize AddComputed with concurrent readers.
func (r *Registry) AddComputed(name string, value any) error {
	name = normalizeName(name)
	if !validName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	if r.nameTaken(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	r.computed[name] = value

	if r.resolved {
		r.snapshot[name] = value
	}

	return nil
}

func (r *Registry) nameTaken(name string) bool {
	if _, exists := r.index[name]; exists {
		return true
	}

	_, exists := r.computed[name]

	return exists
}

// Resolve reads every registered field in registration order. A nil lookup
// reads the process environment.
//
// Missing keys are collected across all fields; when any are missing the usage
// is printed and the exit function is called with ExitCodeMissing. If exit
// returns, a *MissingKeysError is returned. A transform failure prints the usage
// and returns a *TransformError right away.
//
// Resolve may be called again; each successful call replaces the snapshot.
func (r *Registry) Resolve(lookup LookupFunc) (Values, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	values := make(Values, len(r.fields)+len(r.computed))

	var (
		missing  []string
		defaults int
	)

	for _, field := range r.fields {
		value, src, err := field.resolve(lookup)
		if err == nil {
			values[field.name] = value

			if src == sourceDefault {
				defaults++
			}

			r.logger.Debug("field resolved", slog.String("key", field.key), slog.String("source", string(src)))

			continue
		}

		var transformErr *TransformError
		if errors.As(err, &transformErr) {
			r.printf("Error while trying transform %s value %q\n", transformErr.Key, transformErr.Raw)
			r.Usage()

			return nil, transformErr
		}

		r.printf("Error: %s not available in environment\n", field.key)

		missing = append(missing, field.key)
	}

	if len(missing) > 0 {
		r.Usage()
		r.exit(ExitCodeMissing)

		return nil, &MissingKeysError{Keys: missing}
	}

	maps.Copy(values, r.computed)

	r.snapshot = values
	r.resolved = true

	r.logger.Info("configuration resolved",
		slog.Int("fields", len(r.fields)),
		slog.Int("defaults", defaults),
		slog.String("prefix", r.prefix),
	)

	return maps.Clone(values), nil
}

// ResolveMap resolves against a static mapping instead of the process environment.
func (r *Registry) ResolveMap(env map[string]string) (Values, error) {
	return r.Resolve(MapLookup(env))
}

// Resolved reports whether a resolution pass has completed.
func (r *Registry) Resolved() bool {
	return r.resolved
}

// Field returns the resolved value stored under name.
func (r *Registry) Field(name string) (any, error) {
	if !r.resolved {
		return nil, ErrNotResolved
	}

	value, ok := r.snapshot[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	return value, nil
}

// Snapshot returns a shallow copy of the resolved values.
func (r *Registry) Snapshot() (Values, error) {
	if !r.resolved {
		return nil, ErrNotResolved
	}

	return maps.Clone(r.snapshot), nil
}

// Fields returns copies of the registered fields in registration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.fields))
	for i, field := range r.fields {
		out[i] = *field
	}

	return out
}

// Get returns the resolved value stored under name as T.
func Get[T any](r *Registry, name string) (T, error) {
	var zero T

	value, err := r.Field(name)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, not %T", ErrTypeMismatch, name, value, zero)
	}

	return typed, nil
}

func (r *Registry) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
