package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorMutationInFlight is returned when a mutation for the same project and
// action is already running. Callers map it to HTTP 409.
var ErrorMutationInFlight = errors.New("another change for this project is still in progress")

// ValidationError marks user-correctable input failures. Handlers map it to
// HTTP 400 with the message intact instead of a generic store error.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
