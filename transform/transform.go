package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrEmptyValue is returned when a value that must not be empty is empty.
var ErrEmptyValue = errors.New("empty value")

// ErrNotAllowed is returned by OneOf when the value is not one of the choices.
var ErrNotAllowed = errors.New("value not allowed")

// Func converts a raw environment value.
type Func = func(raw string) (any, error)

// String returns the raw value unchanged.
func String() Func {
	return func(raw string) (any, error) {
		return raw, nil
	}
}

// NonEmpty returns the trimmed value, rejecting blank input.
func NonEmpty() Func {
	return func(raw string) (any, error) {
		value := strings.TrimSpace(raw)
		if value == "" {
			return nil, ErrEmptyValue
		}

		return value, nil
	}
}

// Int parses a base 10 int.
func Int() Func {
	return func(raw string) (any, error) {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing int: %w", err)
		}

		return value, nil
	}
}

// Int64 parses an int64, accepting base prefixes such as 0x.
func Int64() Func {
	return func(raw string) (any, error) {
		value, err := strconv.ParseInt(strings.TrimSpace(raw), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing int64: %w", err)
		}

		return value, nil
	}
}

// Uint parses a non-negative uint.
func Uint() Func {
	return func(raw string) (any, error) {
		value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
		if err != nil {
			return nil, fmt.Errorf("parsing uint: %w", err)
		}

		return uint(value), nil
	}
}

// Float parses a float64.
func Float() Func {
	return func(raw string) (any, error) {
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing float: %w", err)
		}

		return value, nil
	}
}

// Bool parses the values accepted by strconv.ParseBool.
func Bool() Func {
	return func(raw string) (any, error) {
		value, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing bool: %w", err)
		}

		return value, nil
	}
}

// Duration parses a time.Duration such as "1m30s".
func Duration() Func {
	return func(raw string) (any, error) {
		value, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("parsing duration: %w", err)
		}

		return value, nil
	}
}

// List splits the value on sep, trims each item, drops empty items and applies
// elem to the rest. The result is a []any in input order.
func List(sep string, elem Func) Func {
	return func(raw string) (any, error) {
		parts := strings.Split(raw, sep)
		values := make([]any, 0, len(parts))

		for i, part := range parts {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			value, err := elem(part)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			values = append(values, value)
		}

		return values, nil
	}
}

// Strings splits the value on sep into a []string, dropping empty items.
func Strings(sep string) Func {
	return func(raw string) (any, error) {
		parts := strings.Split(raw, sep)
		values := make([]string, 0, len(parts))

		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}

		return values, nil
	}
}

// OneOf accepts one of the given choices, compared case-insensitively,
// and returns the choice as it was declared.
func OneOf(choices ...string) Func {
	return func(raw string) (any, error) {
		value := strings.TrimSpace(raw)

		for _, choice := range choices {
			if strings.EqualFold(value, choice) {
				return choice, nil
			}
		}

		return nil, fmt.Errorf("%w: %q, expected one of %s", ErrNotAllowed, value, strings.Join(choices, ", "))
	}
}
