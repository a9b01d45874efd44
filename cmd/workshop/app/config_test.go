package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".workshop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3000, config.Port)
	assert.NoError(t, config.PortErr)
	assert.Equal(t, "", config.Host)
	assert.Equal(t, "development", config.Env)
	assert.Equal(t, 10*time.Second, config.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.ShutdownTimeout)
	assert.Equal(t, "auto", config.LogFormat)
}

func TestLoadConfigEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantEnv  string
		wantPort int
		wantErr  bool
	}{
		{name: "APP_ENV", env: map[string]string{"APP_ENV": "test"}, wantEnv: "test", wantPort: 3000},
		{name: "GO_ENV fallback", env: map[string]string{"GO_ENV": "Test"}, wantEnv: "test", wantPort: 3000},
		{name: "APP_ENV wins", env: map[string]string{"APP_ENV": "production", "GO_ENV": "test"}, wantEnv: "production", wantPort: 3000},
		{name: "PORT", env: map[string]string{"PORT": "4000"}, wantEnv: "development", wantPort: 4000},
		{name: "PORT out of range", env: map[string]string{"PORT": "70000"}, wantEnv: "development", wantPort: 3000, wantErr: true},
		{name: "PORT zero", env: map[string]string{"PORT": "0"}, wantEnv: "development", wantPort: 3000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config, err := LoadConfig("")
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnv, config.Env)
			assert.Equal(t, tt.wantPort, config.Port)
			if tt.wantErr {
				assert.Error(t, config.PortErr)
			} else {
				assert.NoError(t, config.PortErr)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `port: 4100
host: 127.0.0.1
app_env: test
shutdown_timeout: 5s
log_level: debug
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, 4100, config.Port)
	assert.Equal(t, "127.0.0.1", config.Host)
	assert.Equal(t, "test", config.Env)
	assert.Equal(t, 5*time.Second, config.ShutdownTimeout)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4200")
	path := writeConfig(t, "port: 4100\n")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4200, config.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "json", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "yaml", "error")
	assert.True(t, config.Quiet)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "error", config.LogLevel)
}
