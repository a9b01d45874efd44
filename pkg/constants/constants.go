// Package constants provides shared constants used throughout the workshop app.
// This includes the public response literals, network defaults, timeouts,
// and file permissions that should be consistent across the application.
package constants

import "time"

// Application identity
const (
	// AppName is the binary and service name
	AppName = "workshop"

	// AppVersion is the version reported on the welcome page
	AppVersion = "1.0.0"

	// WelcomeMessage is the body served at the root endpoint
	WelcomeMessage = "<h1>Welcome to the CI/CD Workshop App! Version: " + AppVersion + "</h1>"

	// HealthMessage is the exact body served at the health endpoint
	HealthMessage = "OK"
)

// Network constants
const (
	// DefaultPort is used when PORT is absent or invalid
	DefaultPort = 3000

	// DefaultHost binds all interfaces
	DefaultHost = ""

	// MinPort is the lowest port accepted from configuration
	MinPort = 1

	// MaxPort is the highest port accepted from configuration
	MaxPort = 65535
)

// Timeout constants define the HTTP server timeouts
const (
	// ReadTimeout is the maximum duration for reading an entire request
	ReadTimeout = 10 * time.Second

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout = 10 * time.Second

	// IdleTimeout is the keep-alive idle timeout
	IdleTimeout = 120 * time.Second

	// ShutdownTimeout bounds graceful connection draining on close
	ShutdownTimeout = 30 * time.Second
)

// Environment values
const (
	// EnvTest marks a test run; the server is not started automatically
	EnvTest = "test"

	// EnvDevelopment is the default environment
	EnvDevelopment = "development"

	// EnvProduction is the deployed environment
	EnvProduction = "production"
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
