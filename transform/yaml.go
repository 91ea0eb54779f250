package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned when the path is not found in the YAML value.
var ErrPathNotFound = errors.New("path not found")

// YAML decodes the whole value into a T.
func YAML[T any]() Func {
	return func(raw string) (any, error) {
		if strings.TrimSpace(raw) == "" {
			return nil, ErrEmptyValue
		}

		var target T

		err := yaml.Unmarshal([]byte(raw), &target)
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return target, nil
	}
}

// YAMLPath decodes the section of the value found at path into a T.
// The path uses colon (:) as separator, e.g. "database:primary".
// An empty path decodes the whole value like YAML.
func YAMLPath[T any](path string) Func {
	if path == "" {
		return YAML[T]()
	}

	yamlPath, pathErr := yaml.PathString(convertToYAMLPath(path))

	return func(raw string) (any, error) {
		if pathErr != nil {
			return nil, fmt.Errorf("invalid path %q: %w", path, pathErr)
		}

		if strings.TrimSpace(raw) == "" {
			return nil, ErrEmptyValue
		}

		var target T

		err := yamlPath.Read(strings.NewReader(raw), &target)
		if err != nil {
			if yaml.IsNotFoundNodeError(err) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}

			return nil, fmt.Errorf("reading path %q: %w", path, err)
		}

		return target, nil
	}
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
