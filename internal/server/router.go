package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/agentstation/cicd-workshop/pkg/constants"
	"github.com/agentstation/cicd-workshop/pkg/errors"
)

// Content types for the two response forms.
const (
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeText = "text/plain; charset=utf-8"
)

// Response is a complete HTTP response produced by a route handler.
// It is built fresh for every request and never mutated after it is written.
type Response struct {
	Status      int
	Body        []byte
	ContentType string
}

// HandlerFunc produces a response. Handlers take no request state.
type HandlerFunc func() Response

// Route is a (method, path, handler) entry in the route table.
type Route struct {
	Method  string      `json:"method"`
	Path    string      `json:"path"`
	Handler HandlerFunc `json:"-"`
}

type routeKey struct {
	method string
	path   string
}

// Router maps a method and an exact path to a response.
// It performs no I/O and keeps no per-request state, so it is safe for
// concurrent use once construction is done.
type Router struct {
	routes []Route
	index  map[routeKey]HandlerFunc
	allow  map[string][]string
}

// NewRouter returns a router with the welcome and health routes registered.
func NewRouter() *Router {
	r := &Router{
		index: make(map[routeKey]HandlerFunc),
		allow: make(map[string][]string),
	}
	r.mustRegister(http.MethodGet, "/", Welcome)
	r.mustRegister(http.MethodGet, "/health", Health)
	return r
}

// Welcome serves the root page.
func Welcome() Response {
	return Response{
		Status:      http.StatusOK,
		Body:        []byte(constants.WelcomeMessage),
		ContentType: ContentTypeHTML,
	}
}

// Health serves the liveness probe.
func Health() Response {
	return Response{
		Status:      http.StatusOK,
		Body:        []byte(constants.HealthMessage),
		ContentType: ContentTypeText,
	}
}

// Register adds a route. A second registration for the same method and path
// is rejected.
func (r *Router) Register(method, path string, h HandlerFunc) error {
	key := routeKey{method: strings.ToUpper(method), path: path}
	if _, exists := r.index[key]; exists {
		return &errors.RouteError{Method: key.method, Path: path}
	}
	r.index[key] = h
	r.allow[path] = append(r.allow[path], key.method)
	r.routes = append(r.routes, Route{Method: key.method, Path: path, Handler: h})
	return nil
}

func (r *Router) mustRegister(method, path string, h HandlerFunc) {
	if err := r.Register(method, path, h); err != nil {
		panic("programming error: " + err.Error())
	}
}

// Routes returns the route table in registration order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// Handle resolves a request to its response.
// HEAD is answered by the GET handler for the same path.
func (r *Router) Handle(method, path string) Response {
	method = strings.ToUpper(method)
	if h, ok := r.index[routeKey{method: method, path: path}]; ok {
		return h()
	}
	if method == http.MethodHead {
		if h, ok := r.index[routeKey{method: http.MethodGet, path: path}]; ok {
			return h()
		}
	}
	if _, ok := r.allow[path]; ok {
		return textResponse(http.StatusMethodNotAllowed)
	}
	return textResponse(http.StatusNotFound)
}

// Allowed returns the methods registered for path, including the implied HEAD.
func (r *Router) Allowed(path string) []string {
	methods := r.allow[path]
	if len(methods) == 0 {
		return nil
	}
	allowed := make([]string, 0, len(methods)+1)
	allowed = append(allowed, methods...)
	hasGet, hasHead := false, false
	for _, m := range methods {
		hasGet = hasGet || m == http.MethodGet
		hasHead = hasHead || m == http.MethodHead
	}
	if hasGet && !hasHead {
		allowed = append(allowed, http.MethodHead)
	}
	return allowed
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp := r.Handle(req.Method, req.URL.Path)

	if resp.Status == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", strings.Join(r.Allowed(req.URL.Path), ", "))
	}
	w.Header().Set("Content-Type", resp.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Body)))
	w.WriteHeader(resp.Status)
	// Write errors mean the client went away; nothing left to report to.
	_, _ = w.Write(resp.Body)
}

// textResponse builds a plain-text response carrying the status text.
func textResponse(status int) Response {
	return Response{
		Status:      status,
		Body:        []byte(http.StatusText(status)),
		ContentType: ContentTypeText,
	}
}
