// Package errs provides standardized error types for the logistics platform.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Two groups of error types exist:
//
// Value errors, raised while validating inputs and constructing domain
// objects:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found
//
// Domain errors, raised by the access policy engine and the lifecycle state
// machines:
//   - AuthenticationMalformedError: a principal could not be derived from
//     token claims; fatal to the request
//   - SecurityViolationError: an access policy denied the operation
//   - TenantViolationError: the resource belongs to a different tenant;
//     distinguished from SecurityViolationError for audit purposes
//   - BusinessRuleViolationError: an invalid state transition or invariant
//     breach; client-correctable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrSecurityViolation)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// The domain error classes propagate unchanged from the point of detection
// to the boundary; the HTTP layer maps them to status codes.
package errs
