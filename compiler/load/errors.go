package load

import (
	"errors"
	"strings"
)

// ErrInvalidDefinition indicates a factory definition error.
var ErrInvalidDefinition = errors.New("loco: invalid factory definition")

// DefinitionError represents a structural or type error in a factory
// definition. It is fatal to building the factory; there is no partial or
// degraded factory.
type DefinitionError struct {
	Factory string // factory name
	Field   string // field name (if applicable)
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	var b strings.Builder
	b.WriteString("loco: definition error")
	if e.Factory != "" {
		b.WriteString(" on factory ")
		b.WriteString(e.Factory)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DefinitionError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for DefinitionError.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrInvalidDefinition
}

// NewDefinitionError creates a new DefinitionError.
func NewDefinitionError(factory, field, message string, cause error) *DefinitionError {
	return &DefinitionError{
		Factory: factory,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// IsDefinitionError reports whether the error is a DefinitionError.
func IsDefinitionError(err error) bool {
	var defErr *DefinitionError
	return errors.As(err, &defErr)
}
