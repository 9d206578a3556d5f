// Package errs provides standardized error types for the print-order service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the order core:
//   - ValueIsRequiredError: a required value is missing (400)
//   - ValueIsInvalidError: a value is malformed or unacceptable (400)
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds (400)
//   - InvalidTransitionError: an illegal state-machine transition (400)
//   - NotAuthorizedError: caller is not the owner or not an admin (403)
//   - ObjectNotFoundError: unknown order or request identifier (404)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// Business-rule violations are always reported synchronously with a specific
// message; storage failures are not modeled here and bubble up as-is.
package errs
