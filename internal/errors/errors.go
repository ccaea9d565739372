package errors

import (
	"errors"
	"fmt"
)

// Common error types for the Hemoglobin client
var (
	// Session errors
	ErrNoSession     = errors.New("no active session")
	ErrInvalidToken  = errors.New("invalid token")
	ErrStorageFailed = errors.New("session storage failed")

	// Client configuration errors
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidTimeout  = errors.New("invalid timeout")

	// Request errors
	ErrRequestFailed = errors.New("request failed")
	ErrNotFound      = errors.New("not found")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
