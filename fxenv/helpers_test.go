package fxenv_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/0xalexb/envconf"

	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, opts ...envconf.Option) *envconf.Registry {
	t.Helper()

	base := []envconf.Option{
		envconf.WithOutput(io.Discard),
		envconf.WithExit(func(int) {}),
		envconf.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}

	reg, err := envconf.New(append(base, opts...)...)
	require.NoError(t, err)

	return reg
}
