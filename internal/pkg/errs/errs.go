package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the root cause of every error produced by this package.
// Callers classify errors with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
)

// sanitize flattens a value into a single-line string for error messages.
func sanitize(v any) string {
	s := fmt.Sprintf("%s", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError reports that an object identified by a parameter could not be found.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports that a named value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports that a named value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeValue(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// sanitizeValue flattens values of any kind (including numbers) to a single line.
func sanitizeValue(v any) string {
	s := fmt.Sprintf("%v", v)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ValueIsRequiredError reports that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports that an aggregate version value is invalid.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, sanitize(e.ParamName))
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}
