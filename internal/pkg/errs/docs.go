// Package errs provides standardized error types for the food-bank ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an entity cannot be found
//   - SlotIsTakenError: a pickup slot is already occupied by an active order
//   - ActionIsForbiddenError: the caller may not perform the operation
//   - StateIsInvalidError: an order is not in the state an action requires
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and never
// match on message text. StateIsInvalid is deliberately distinct from
// ObjectNotFound so "no such order" and "order is past the point of change"
// remain separate signals.
package errs
