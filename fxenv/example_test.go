package fxenv_test

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/0xalexb/envconf"
	"github.com/0xalexb/envconf/fxenv"
	"github.com/0xalexb/envconf/transform"

	"go.uber.org/fx"
)

// ServerConfig is the typed view of the server fields.
type ServerConfig struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// NewServerConfig reads the resolved registry.
func NewServerConfig(reg *envconf.Registry) (*ServerConfig, error) {
	host, err := envconf.Get[string](reg, "host")
	if err != nil {
		return nil, err
	}

	port, err := envconf.Get[int](reg, "port")
	if err != nil {
		return nil, err
	}

	timeout, err := envconf.Get[time.Duration](reg, "timeout")
	if err != nil {
		return nil, err
	}

	return &ServerConfig{Host: host, Port: port, Timeout: timeout}, nil
}

// Address returns the listen address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Example_appWithRegistry demonstrates resolving a registry into an Fx application.
func Example_appWithRegistry() {
	reg, err := envconf.New(
		envconf.WithPrefix("server"),
		envconf.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	reg.MustRegister("host", envconf.WithDefault("localhost"))
	reg.MustRegister("port", envconf.WithDefault(8080), envconf.WithTransform(transform.Int()))
	reg.MustRegister("timeout", envconf.WithDefault(30*time.Second), envconf.WithTransform(transform.Duration()))

	var cfg *ServerConfig

	app := fxenv.NewApp(reg,
		fxenv.WithLogLevel("error"),
		fxenv.WithLookup(envconf.MapLookup(map[string]string{
			"SERVER_HOST": "api.example.com",
			"SERVER_PORT": "9000",
		})),
		fxenv.WithModules(
			fx.Provide(NewServerConfig),
			fx.Invoke(func(c *ServerConfig) {
				cfg = c
			}),
		),
	)

	err = app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	fmt.Printf("Server address: %s\n", cfg.Address())
	fmt.Printf("Timeout: %s\n", cfg.Timeout)
	// Output:
	// Server address: api.example.com:9000
	// Timeout: 30s
}
