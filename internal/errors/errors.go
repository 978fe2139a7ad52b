// Package errors provides consistent error types for the HabitFlare CLI.
// It defines two main categories: UserError (fixable by the user) and
// SystemError (environment or storage issues).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrEmptyHabitName  = errors.New("habit name cannot be empty")
	ErrInvalidWeekday  = errors.New("invalid weekday index")
	ErrInvalidDay      = errors.New("invalid calendar date")
	ErrFutureDate      = errors.New("cannot complete habits for future dates")
	ErrDatabaseCorrupt = errors.New("database corrupted")
)

// UserError represents an error that the user can fix.
// Examples: empty habit name, unknown habit, malformed date.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot
// directly fix. Examples: unreadable database, disk failure.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError returns true if err is (or wraps) a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// FormatForUser renders an error for terminal display, including the
// suggestion line for user errors.
func FormatForUser(err error) string {
	if err == nil {
		return ""
	}

	var ue *UserError
	if errors.As(err, &ue) {
		if ue.Suggestion != "" {
			return fmt.Sprintf("%s\n  hint: %s", ue.Error(), ue.Suggestion)
		}
		return ue.Error()
	}

	return err.Error()
}

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need both this package and stdlib errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
