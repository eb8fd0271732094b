package loco

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for generated code.
var (
	// ErrBuilderConsumed is reported when a builder is used after a
	// terminal Build or Create operation.
	ErrBuilderConsumed = errors.New("loco: builder already consumed")

	// ErrDefaultFailed is reported when a fallible default expression
	// fails during Build or Create.
	ErrDefaultFailed = errors.New("loco: default evaluation failed")
)

// UsageError reports a method call on an already-consumed builder.
// Generated builders panic with it: builder misuse is a programming error
// in the calling test, never a recoverable runtime condition.
type UsageError struct {
	factory string
	op      string
}

// Error returns the error string.
func (e *UsageError) Error() string {
	return fmt.Sprintf("loco: %s on consumed %sBuilder", e.op, e.factory)
}

// Is reports whether the target error matches UsageError.
// This allows errors.Is(usageErr, ErrBuilderConsumed) to return true.
func (e *UsageError) Is(err error) bool {
	return err == ErrBuilderConsumed
}

// Factory returns the factory name.
func (e *UsageError) Factory() string {
	return e.factory
}

// Op returns the method that was called after consumption.
func (e *UsageError) Op() string {
	return e.op
}

// NewUsageError returns a new UsageError for the given factory and operation.
func NewUsageError(factory, op string) *UsageError {
	return &UsageError{factory: factory, op: op}
}

// IsUsageError returns true if the error is a UsageError.
func IsUsageError(err error) bool {
	if err == nil {
		return false
	}
	var e *UsageError
	return errors.As(err, &e) || errors.Is(err, ErrBuilderConsumed)
}

// DefaultError tags a failed default-expression evaluation with the factory
// and field it belongs to. The invocation is aborted before any persistence.
type DefaultError struct {
	Factory string
	Field   string
	Err     error
}

// Error returns the error string.
func (e *DefaultError) Error() string {
	return fmt.Sprintf("loco: %s default for field %q failed: %v", e.Factory, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *DefaultError) Unwrap() error {
	return e.Err
}

// Is reports whether the target error matches DefaultError.
func (e *DefaultError) Is(err error) bool {
	return err == ErrDefaultFailed
}

// NewDefaultError returns a new DefaultError for the given factory field.
func NewDefaultError(factory, field string, err error) *DefaultError {
	return &DefaultError{Factory: factory, Field: field, Err: err}
}

// IsDefaultError returns true if the error is a DefaultError.
func IsDefaultError(err error) bool {
	if err == nil {
		return false
	}
	var e *DefaultError
	return errors.As(err, &e) || errors.Is(err, ErrDefaultFailed)
}
