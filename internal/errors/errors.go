// Package errors defines the structured error taxonomy shared by the
// CLI and MCP surfaces.
package errors

import "fmt"

// ErrorCode represents a todo error code.
type ErrorCode string

const (
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400: bad user input
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404: unknown task id
	ErrInternal       ErrorCode = "INTERNAL"        // 500: persistence or runtime failure
)

// TodoError represents a structured error with code, status, and details.
type TodoError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TodoError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TodoError {
	return &TodoError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when a task cannot be found.
func NewNotFound(id string) *TodoError {
	return &TodoError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("item %q not found", id),
		Details: map[string]any{"id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TodoError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TodoError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TodoError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TodoError); ok {
		return tErr.Code == code
	}
	return false
}
