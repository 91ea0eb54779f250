package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/envconf"
)

// Field names registered by Register.
const (
	LevelField  = "log_level"
	FormatField = "log_format"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownLevel is returned by ParseLevel for unsupported level names.
var ErrUnknownLevel = errors.New("unknown log level")

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format string
}

// NewLogger creates a new slog.Logger writing to w.
// Unknown or empty levels fall back to INFO; any format other than "text" is JSON.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level, err := ParseLevel(config.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

// ParseLevel converts a level name into a slog.Level. The empty string is INFO.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// Register adds the log_level and log_format fields to reg.
// Values from defaults are used when the variables are unset; empty values
// fall back to "info" and "json".
func Register(reg *envconf.Registry, defaults LoggerConfig) error {
	level := defaults.Level
	if level == "" {
		level = "info"
	}

	format := defaults.Format
	if format == "" {
		format = FormatJSON
	}

	err := reg.Register(LevelField,
		envconf.WithDefault(level),
		envconf.WithHelp("log level: debug, info, warn or error"),
		envconf.WithTransform(transformLevel),
	)
	if err != nil {
		return fmt.Errorf("registering %s: %w", LevelField, err)
	}

	err = reg.Register(FormatField,
		envconf.WithDefault(format),
		envconf.WithHelp("log output format: json or text"),
		envconf.WithTransform(transformFormat),
	)
	if err != nil {
		return fmt.Errorf("registering %s: %w", FormatField, err)
	}

	return nil
}

func transformLevel(raw string) (any, error) {
	_, err := ParseLevel(raw)
	if err != nil {
		return nil, err
	}

	return strings.ToLower(strings.TrimSpace(raw)), nil
}

func transformFormat(raw string) (any, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	if format != FormatJSON && format != FormatText {
		return nil, fmt.Errorf("unknown log format %q", raw)
	}

	return format, nil
}

// ConfigFrom builds a LoggerConfig from resolved values.
// Missing or non-string entries leave the corresponding setting empty.
func ConfigFrom(values envconf.Values) LoggerConfig {
	level, _ := values[LevelField].(string)
	format, _ := values[FormatField].(string)

	return LoggerConfig{Level: level, Format: format}
}
