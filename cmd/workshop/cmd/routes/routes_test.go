package routes

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cicd-workshop/internal/cmd/application"
	"github.com/agentstation/cicd-workshop/internal/server"
)

func TestList(t *testing.T) {
	routes := List(server.NewRouter())
	require.Len(t, routes, 2)

	assert.Equal(t, Route{Method: "GET", Path: "/", ContentType: server.ContentTypeHTML, Allow: "GET, HEAD"}, routes[0])
	assert.Equal(t, Route{Method: "GET", Path: "/health", ContentType: server.ContentTypeText, Allow: "GET, HEAD"}, routes[1])
}

func TestRoutesCommandJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewCommand(&application.Mock{OutputFormatFunc: func() string { return "json" }})
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var routes []Route
	require.NoError(t, json.Unmarshal(buf.Bytes(), &routes))
	require.Len(t, routes, 2)
	assert.Equal(t, "/health", routes[1].Path)
}

func TestRoutesCommandTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewCommand(&application.Mock{})
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "/health")
	assert.Contains(t, strings.ToUpper(buf.String()), "METHOD")
}

func TestRoutesCommandRejectsArgs(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}
