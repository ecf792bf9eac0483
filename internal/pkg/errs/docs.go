// Package errs provides standardized error types for the appraise application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced object does not exist
//   - UnauthorizedError: the acting user may not perform the operation
//   - InvalidStateError: a transition or precondition of the order lifecycle is violated
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The boundary layer classifies errors with errors.Is against the sentinels to map
// them onto transport responses; the core never inspects error strings.
package errs
