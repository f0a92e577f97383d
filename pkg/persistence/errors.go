// Package persistence provides standardized error types for persistence operations.
package persistence

import (
	"errors"
	"fmt"
)

// Standard persistence error types that all implementations should use.
var (
	// ErrDatabaseMissing indicates the target database file does not exist.
	// The tool that owns the database creates it on first start; this
	// importer never does.
	ErrDatabaseMissing = errors.New("workflow database not found")

	// ErrWorkflowNotFound indicates a workflow row was not found by the given identifier.
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// WorkflowError wraps workflow storage errors with additional context.
type WorkflowError struct {
	Op   string // Operation being performed (e.g., "Save", "ByID")
	Name string // Workflow display name if applicable
	Err  error  // Underlying error
}

func (e *WorkflowError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s operation failed for workflow %q: %v", e.Op, e.Name, e.Err)
	}

	return fmt.Sprintf("%s operation failed: %v", e.Op, e.Err)
}

func (e *WorkflowError) Unwrap() error {
	return e.Err
}

// Is implements error comparison for workflow errors.
func (e *WorkflowError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewWorkflowError creates a new workflow error with context.
func NewWorkflowError(op, name string, err error) *WorkflowError {
	return &WorkflowError{
		Op:   op,
		Name: name,
		Err:  err,
	}
}

// IsDatabaseMissing checks if an error indicates the target database file is absent.
func IsDatabaseMissing(err error) bool {
	return errors.Is(err, ErrDatabaseMissing)
}

// IsWorkflowNotFound checks if an error indicates a workflow row was not found.
func IsWorkflowNotFound(err error) bool {
	return errors.Is(err, ErrWorkflowNotFound)
}
