// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a write collides with existing state
//   - InvalidTransitionError: For when a lifecycle transition is not allowed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// KindOf maps any error onto the four kinds the request layer reports:
// NotFound, BadRequest, Conflict and Internal.
package errs
