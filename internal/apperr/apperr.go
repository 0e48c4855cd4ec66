// Package apperr defines the error classes services hand back to the HTTP
// layer. Controllers pick status codes by class, never by message text, but
// messages always name the entity or relationship involved so that a missing
// Lap is distinguishable from a missing Card.
package apperr

import "fmt"

// NotFoundError: a referenced entity id did not resolve. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s with ID %d not found", entity, id)}
}

func NotFoundf(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError: the entity exists but the actor lacks the required
// relationship to it. Maps to 401.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func Forbiddenf(format string, args ...any) *ForbiddenError {
	return &ForbiddenError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError: malformed or out-of-range input. Maps to 422.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func Validationf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError: the operation would violate a dependency constraint, such
// as deleting a resource that still has laps recorded against it. Maps to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func Conflictf(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// BadRequestError: request-level problems that are neither validation of a
// single field nor authorization, e.g. signup with a taken email or a failed
// login. Maps to 400.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func BadRequest(message string) *BadRequestError {
	return &BadRequestError{Message: message}
}
