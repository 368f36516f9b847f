package service

import "errors"

// ErrNotFound signals that a request targeted a record that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError carries the human-readable message returned to the client
// with a 400 status.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(msg string) error {
	return &ValidationError{Message: msg}
}
