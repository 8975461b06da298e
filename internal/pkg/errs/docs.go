// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error kind per failure class:
//   - ObjectNotFoundError: a referenced delivery, order, or user does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or violates a business rule
//   - ValueIsOutOfRangeError: a numeric value violates its bounds
//   - InvalidStateError: an operation is not permitted from the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Domain and application code return these errors; the HTTP adapter maps each
// sentinel to exactly one status code, so classification happens in one place.
package errs
