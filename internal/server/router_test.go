package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/cicd-workshop/pkg/errors"
)

func TestRouterHandle(t *testing.T) {
	router := NewRouter()

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantBody    string
		contains    string
		contentType string
	}{
		{
			name:        "welcome page",
			method:      http.MethodGet,
			path:        "/",
			wantStatus:  http.StatusOK,
			contains:    "Welcome to the CI/CD Workshop App!",
			contentType: ContentTypeHTML,
		},
		{
			name:        "health",
			method:      http.MethodGet,
			path:        "/health",
			wantStatus:  http.StatusOK,
			wantBody:    "OK",
			contentType: ContentTypeText,
		},
		{
			name:        "lowercase method",
			method:      "get",
			path:        "/health",
			wantStatus:  http.StatusOK,
			wantBody:    "OK",
			contentType: ContentTypeText,
		},
		{
			name:        "head on welcome",
			method:      http.MethodHead,
			path:        "/",
			wantStatus:  http.StatusOK,
			contains:    "Version: 1.0.0",
			contentType: ContentTypeHTML,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
			wantBody:   "Not Found",
		},
		{
			name:       "trailing slash is a different path",
			method:     http.MethodGet,
			path:       "/health/",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "wrong method on known path",
			method:     http.MethodPost,
			path:       "/health",
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   "Method Not Allowed",
		},
		{
			name:       "delete on root",
			method:     http.MethodDelete,
			path:       "/",
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := router.Handle(tt.method, tt.path)
			assert.Equal(t, tt.wantStatus, resp.Status)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, string(resp.Body))
			}
			if tt.contains != "" {
				assert.Contains(t, string(resp.Body), tt.contains)
			}
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.ContentType)
			}
		})
	}
}

func TestRouterHandleIsRepeatable(t *testing.T) {
	router := NewRouter()

	for _, path := range []string{"/", "/health", "/nope"} {
		first := router.Handle(http.MethodGet, path)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, router.Handle(http.MethodGet, path), "path %s call %d", path, i)
		}
	}
}

func TestRouterResponsesAreIndependent(t *testing.T) {
	router := NewRouter()

	resp := router.Handle(http.MethodGet, "/health")
	resp.Body[0] = 'X'

	assert.Equal(t, "OK", string(router.Handle(http.MethodGet, "/health").Body))
}

func TestRouterRegister(t *testing.T) {
	router := NewRouter()

	err := router.Register(http.MethodGet, "/health", Health)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDuplicateRoute)

	err = router.Register("get", "/", Welcome)
	assert.ErrorIs(t, err, errors.ErrDuplicateRoute, "method is case-insensitive")

	require.NoError(t, router.Register(http.MethodPost, "/health", Health))
	assert.Equal(t, http.StatusOK, router.Handle(http.MethodPost, "/health").Status)
}

func TestRouterRoutes(t *testing.T) {
	router := NewRouter()

	routes := router.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "/", routes[0].Path)
	assert.Equal(t, http.MethodGet, routes[1].Method)
	assert.Equal(t, "/health", routes[1].Path)

	routes[0].Path = "/mutated"
	assert.Equal(t, "/", router.Routes()[0].Path)
}

func TestRouterAllowed(t *testing.T) {
	router := NewRouter()

	assert.Equal(t, []string{http.MethodGet, http.MethodHead}, router.Allowed("/"))
	assert.Nil(t, router.Allowed("/nope"))
}

func TestRouterServeHTTP(t *testing.T) {
	srv := httptest.NewServer(NewRouter())
	defer srv.Close()

	t.Run("GET /", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "Welcome to the CI/CD")
		assert.Contains(t, string(body), "Version: 1.0.0")
		assert.Equal(t, ContentTypeHTML, resp.Header.Get("Content-Type"))
	})

	t.Run("GET /health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "OK", string(body))
	})

	t.Run("GET /nope", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("POST /health", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/health", "text/plain", strings.NewReader("x"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "GET, HEAD", resp.Header.Get("Allow"))
	})

	t.Run("HEAD /health", func(t *testing.T) {
		resp, err := http.Head(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body)
		assert.Equal(t, int64(2), resp.ContentLength)
	})
}
