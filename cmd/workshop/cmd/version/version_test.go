package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cicd-workshop/internal/cmd/application"
)

func testApp(format string) *application.Mock {
	return &application.Mock{
		VersionFunc:      func() string { return "v1.2.3" },
		CommitFunc:       func() string { return "abc123" },
		DateFunc:         func() string { return "2025-01-01" },
		BuiltByFunc:      func() string { return "goreleaser" },
		OutputFormatFunc: func() string { return format },
	}
}

func TestVersionHumanOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewCommand(testApp(""))
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "workshop v1.2.3 (app 1.0.0)")
	assert.Contains(t, out, "commit:   abc123")
	assert.Contains(t, out, "built by: goreleaser")
}

func TestVersionJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewCommand(testApp("json"))
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var info Info
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "1.0.0", info.AppVersion)
	assert.NotEmpty(t, info.GoVersion)
}

func TestVersionInvalidFormat(t *testing.T) {
	cmd := NewCommand(testApp("xml"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
