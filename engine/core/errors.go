package core

import "fmt"

// ValidationError reports malformed caller input. It is always raised
// before any native SDL call is made.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Op + ": " + e.Reason
}

// Validationf builds a ValidationError with a formatted reason.
func Validationf(op, format string, args ...any) error {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// BackendError reports a failure signalled by the SDL library on an
// otherwise well-formed call. It wraps SDL's last-error text.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	if e.Err == nil {
		return e.Op + ": backend failure"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error { return e.Err }

// Backend wraps an SDL error. Returns nil if err is nil so call sites
// can wrap unconditionally.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// Backendf builds a BackendError for failures that have no error value,
// only a sentinel (nil handle, negative status).
func Backendf(op, format string, args ...any) error {
	return &BackendError{Op: op, Err: fmt.Errorf(format, args...)}
}
