package csp

import (
	"cmp"
	"errors"
	"fmt"
)

// Identifier values uniquely identify particular variables within
// a single Model.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// IdentifierFromString returns an Identifier based on a provided
// string.
func IdentifierFromString(s string) Identifier {
	return Identifier(s)
}

// Assignment is a partial mapping of variables to values. During search it
// grows monotonically along a branch and is unwound on backtrack; a returned
// solution is always a complete Assignment.
type Assignment[V cmp.Ordered] map[Identifier]V

// Clone returns an independent copy of the assignment.
func (a Assignment[V]) Clone() Assignment[V] {
	if a == nil {
		return nil
	}
	out := make(Assignment[V], len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// ErrNoSolution is returned by Solve when the search tree has been
// exhausted without finding a complete consistent assignment.
var ErrNoSolution = errors.New("constraints not satisfiable")

// ErrAttemptsExceeded is returned when an attempt ceiling was configured
// and the search hit it before a solution could be found.
var ErrAttemptsExceeded = errors.New("attempt ceiling reached before a solution could be found")

// ModelError reports a structurally invalid model: an empty domain, an
// empty constraint scope, or a constraint referencing an unregistered
// variable. Model errors are raised while the model is being built and
// never reach the search.
type ModelError struct {
	Reason string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("invalid model: %s", e.Reason)
}

// NewModelError returns a ModelError with a formatted reason.
func NewModelError(format string, args ...any) *ModelError {
	return &ModelError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError reports an invalid solver configuration, such as an
// unknown inference technique name. Configuration is validated before any
// node is expanded.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid solver configuration: %s", e.Reason)
}

// NewConfigurationError returns a ConfigurationError with a formatted
// reason.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
