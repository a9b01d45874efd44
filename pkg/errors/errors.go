// Package errors provides custom error types for the workshop app.
// These errors enable programmatic error checking at the process boundary
// (bind failures exit non-zero) and surface lifecycle misuse such as
// closing a server twice.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors
var (
	// ErrBind indicates that a listening socket could not be opened
	ErrBind = errors.New("bind failed")

	// ErrServerClosed indicates an operation on a server that was already closed
	ErrServerClosed = errors.New("server closed")

	// ErrInvalidState indicates a lifecycle transition that is not allowed
	ErrInvalidState = errors.New("invalid state")

	// ErrDuplicateRoute indicates a second registration for the same method and path
	ErrDuplicateRoute = errors.New("duplicate route")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// BindError represents a failure to listen on an address
type BindError struct {
	Addr string
	Err  error
}

// Error implements the error interface
func (e *BindError) Error() string {
	return fmt.Sprintf("cannot listen on %s: %v", e.Addr, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *BindError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *BindError) Is(target error) bool {
	return target == ErrBind
}

// NewBindError creates a new BindError
func NewBindError(addr string, err error) *BindError {
	return &BindError{Addr: addr, Err: err}
}

// StateError represents an operation attempted in the wrong lifecycle state
type StateError struct {
	Op    string // "start", "close"
	State string
	Err   error
}

// Error implements the error interface
func (e *StateError) Error() string {
	if e.Err != nil && e.Err != ErrInvalidState {
		return fmt.Sprintf("cannot %s server in state %s: %v", e.Op, e.State, e.Err)
	}
	return fmt.Sprintf("cannot %s server in state %s", e.Op, e.State)
}

// Unwrap implements errors.Unwrap
func (e *StateError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// NewStateError creates a new StateError
func NewStateError(op, state string, err error) *StateError {
	if err == nil {
		err = ErrInvalidState
	}
	return &StateError{Op: op, State: state, Err: err}
}

// RouteError represents a rejected route registration
type RouteError struct {
	Method string
	Path   string
}

// Error implements the error interface
func (e *RouteError) Error() string {
	return fmt.Sprintf("route %s %s already registered", e.Method, e.Path)
}

// Is implements errors.Is support
func (e *RouteError) Is(target error) bool {
	return target == ErrDuplicateRoute
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "create", "start"
	Resource  string // "config", "server", "logger"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// Helper functions for error checking

// IsBindError checks if an error is a bind failure
func IsBindError(err error) bool {
	return errors.Is(err, ErrBind)
}

// IsServerClosed checks if an error reports an already closed server
func IsServerClosed(err error) bool {
	return errors.Is(err, ErrServerClosed)
}

// IsInvalidState checks if an error is a lifecycle state error
func IsInvalidState(err error) bool {
	return errors.Is(err, ErrInvalidState)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
