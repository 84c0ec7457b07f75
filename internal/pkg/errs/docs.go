// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - AccessForbiddenError: For when the caller's role lacks permission
//   - PolicyRejectedError: For when a business rule declines an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// AccessForbidden and PolicyRejected are deliberately distinct: the former is
// an authorization failure (the caller's role may never perform the action),
// the latter a business-rule decline (the action exists but policy refuses it
// for this caller). HTTP adapters map both to 403 but tests and callers can
// tell them apart via errors.Is.
package errs
