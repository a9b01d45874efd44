package app

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/cicd-workshop/internal/server"
	"github.com/agentstation/cicd-workshop/pkg/constants"
	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Server configuration
	Host            string
	Port            int
	PortErr         error // set when PORT was unusable and DefaultPort was substituted
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags)
//  2. Environment variables
//  3. .env.local, then .env
//  4. Config file (configFile, or .workshop.yaml in the working or home directory)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults(v)

	if err := readConfigFile(v, configFile); err != nil {
		return nil, err
	}

	port, portErr := server.ResolvePort(v.GetString("port"))

	config := &Config{
		ConfigFile: v.ConfigFileUsed(),

		Host:            v.GetString("host"),
		Port:            port,
		PortErr:         portErr,
		Env:             resolveEnv(v),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		IdleTimeout:     v.GetDuration("idle_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so flag values take
// precedence over the config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", constants.DefaultHost)
	v.SetDefault("read_timeout", constants.ReadTimeout)
	v.SetDefault("write_timeout", constants.WriteTimeout)
	v.SetDefault("idle_timeout", constants.IdleTimeout)
	v.SetDefault("shutdown_timeout", constants.ShutdownTimeout)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// readConfigFile reads an explicit config file, or searches for
// .workshop.yaml. Only a missing file found by search is tolerated.
func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("viper", "read "+configFile, err)
		}
		return nil
	}

	v.SetConfigType("yaml")
	v.SetConfigName("." + constants.AppName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if stderrors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("viper", "read "+filepath.Base(v.ConfigFileUsed()), err)
	}
	return nil
}

// resolveEnv returns APP_ENV, then GO_ENV, then development.
func resolveEnv(v *viper.Viper) string {
	for _, key := range []string{"app_env", "go_env"} {
		if env := strings.TrimSpace(v.GetString(key)); env != "" {
			return strings.ToLower(env)
		}
	}
	return constants.EnvDevelopment
}

// loadEnvFiles loads environment variables from .env files.
// godotenv never overrides a variable that is already set, so .env.local
// is loaded first to take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
