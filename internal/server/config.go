package server

import (
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/cicd-workshop/pkg/constants"
	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// Config holds server configuration.
type Config struct {
	// Server settings
	Host string
	Port int

	// Env is the deployment environment; "test" suppresses auto-start.
	Env string

	// HTTP timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Host:            constants.DefaultHost,
		Port:            constants.DefaultPort,
		Env:             constants.EnvDevelopment,
		ReadTimeout:     constants.ReadTimeout,
		WriteTimeout:    constants.WriteTimeout,
		IdleTimeout:     constants.IdleTimeout,
		ShutdownTimeout: constants.ShutdownTimeout,
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// TestMode reports whether the server must not start on its own.
func (c Config) TestMode() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), constants.EnvTest)
}

// withDefaults fills zero timeouts.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	return c
}

// ResolvePort parses a configured port value.
// An empty value yields DefaultPort with no error. A value that is not a
// number or is outside [1, 65535] also yields DefaultPort, together with a
// validation error the caller is expected to log.
func ResolvePort(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return constants.DefaultPort, nil
	}

	port, err := strconv.Atoi(value)
	if err != nil {
		return constants.DefaultPort, errors.NewValidationError("port", value, "not a number")
	}
	if port < constants.MinPort || port > constants.MaxPort {
		return constants.DefaultPort, errors.NewValidationError("port", value, "must be between 1 and 65535")
	}
	return port, nil
}
