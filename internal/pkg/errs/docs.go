// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure class the service reports:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is malformed or outside the accepted set
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - BusinessRuleError: For when well-formed input violates a workflow invariant
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrBusinessRule)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which is how
// the HTTP adapter maps errors to status codes and the queue consumers decide
// whether a message is worth redelivering.
package errs
