package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Each structured error
// type below unwraps to exactly one of these.
var (
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")

	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")

	ErrAuthenticationMalformed = errors.New("authentication malformed")
	ErrSecurityViolation       = errors.New("security violation")
	ErrTenantViolation         = errors.New("tenant violation")
	ErrBusinessRuleViolation   = errors.New("business rule violation")
)

// sanitize flattens multi-line values so error messages stay single-line
// in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", " "), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is required: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is required: %s", e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("value is invalid: %s (cause: %s)", e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("value is invalid: %s", e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value fell outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %v is %s, min value is %v, max value is %v",
		e.Value, e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("object not found: param is: %s, ID is: %v (cause: %s)",
			e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("object not found: %v", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// AuthenticationMalformedError indicates that a principal could not be
// derived from verified token claims. It is always fatal to the request
// and never retried.
type AuthenticationMalformedError struct {
	ClaimName string
	Cause     error
}

// NewAuthenticationMalformedError creates an AuthenticationMalformedError
// naming the offending claim.
func NewAuthenticationMalformedError(claimName string) *AuthenticationMalformedError {
	return &AuthenticationMalformedError{ClaimName: claimName}
}

// NewAuthenticationMalformedErrorWithCause creates an
// AuthenticationMalformedError wrapping the underlying cause.
func NewAuthenticationMalformedErrorWithCause(claimName string, cause error) *AuthenticationMalformedError {
	return &AuthenticationMalformedError{ClaimName: claimName, Cause: cause}
}

func (e *AuthenticationMalformedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("authentication malformed: %s (cause: %s)", e.ClaimName, e.Cause))
	}
	return sanitize(fmt.Sprintf("authentication malformed: %s", e.ClaimName))
}

func (e *AuthenticationMalformedError) Unwrap() error {
	return ErrAuthenticationMalformed
}

// SecurityViolationError indicates that an access policy denied the
// operation for the current principal.
type SecurityViolationError struct {
	Operation string
	Cause     error
}

// NewSecurityViolationError creates a SecurityViolationError naming the
// denied operation.
func NewSecurityViolationError(operation string) *SecurityViolationError {
	return &SecurityViolationError{Operation: operation}
}

// NewSecurityViolationErrorWithCause creates a SecurityViolationError
// wrapping the underlying cause.
func NewSecurityViolationErrorWithCause(operation string, cause error) *SecurityViolationError {
	return &SecurityViolationError{Operation: operation, Cause: cause}
}

func (e *SecurityViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("security violation: %s (cause: %s)", e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("security violation: %s", e.Operation))
}

func (e *SecurityViolationError) Unwrap() error {
	return ErrSecurityViolation
}

// TenantViolationError indicates that a resource's owning tenant does not
// match the principal's tenant. Handled like a security violation but kept
// distinct for auditing.
type TenantViolationError struct {
	Operation      string
	ResourceTenant string
}

// NewTenantViolationError creates a TenantViolationError recording the
// denied operation and the tenant that owns the resource.
func NewTenantViolationError(operation, resourceTenant string) *TenantViolationError {
	return &TenantViolationError{Operation: operation, ResourceTenant: resourceTenant}
}

func (e *TenantViolationError) Error() string {
	return sanitize(fmt.Sprintf("tenant violation: %s, resource tenant is: %s", e.Operation, e.ResourceTenant))
}

func (e *TenantViolationError) Unwrap() error {
	return ErrTenantViolation
}

// BusinessRuleViolationError indicates an invalid state transition or a
// domain invariant breach. Surfaced as a client-correctable error.
type BusinessRuleViolationError struct {
	Rule  string
	Cause error
}

// NewBusinessRuleViolationError creates a BusinessRuleViolationError naming
// the violated rule.
func NewBusinessRuleViolationError(rule string) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule}
}

// NewBusinessRuleViolationErrorWithCause creates a
// BusinessRuleViolationError wrapping the underlying cause.
func NewBusinessRuleViolationErrorWithCause(rule string, cause error) *BusinessRuleViolationError {
	return &BusinessRuleViolationError{Rule: rule, Cause: cause}
}

func (e *BusinessRuleViolationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("business rule violation: %s (cause: %s)", e.Rule, e.Cause))
	}
	return sanitize(fmt.Sprintf("business rule violation: %s", e.Rule))
}

func (e *BusinessRuleViolationError) Unwrap() error {
	return ErrBusinessRuleViolation
}
