// Package errs provides standardized error types for the order management core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Validation failures surfaced to callers are always built from these types so
// a field-specific message can be rendered and the error class can be matched
// with errors.Is.
package errs
