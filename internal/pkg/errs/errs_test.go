package errs_test

import (
	"errors"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("userId", "123")

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("userId", "123", cause)

		assert.Equal(t, "userId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: userId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("age", 150, 0, 120)

		assert.Equal(t, "age", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is age, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("username")

		assert.Equal(t, "username", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: username", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("username", cause)

		assert.Equal(t, "username", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: username (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestAuthenticationMalformedError(t *testing.T) {
	t.Run("NewAuthenticationMalformedError", func(t *testing.T) {
		err := errs.NewAuthenticationMalformedError("actor_type")

		assert.Equal(t, "actor_type", err.ClaimName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "authentication malformed: actor_type", err.Error())
		assert.Equal(t, errs.ErrAuthenticationMalformed, err.Unwrap())
	})

	t.Run("NewAuthenticationMalformedErrorWithCause", func(t *testing.T) {
		cause := errors.New("subject is not a UUID")
		err := errs.NewAuthenticationMalformedErrorWithCause("sub", cause)

		assert.Equal(t, "sub", err.ClaimName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "authentication malformed: sub (cause: subject is not a UUID)", err.Error())
		assert.Equal(t, errs.ErrAuthenticationMalformed, err.Unwrap())
	})
}

func TestSecurityViolationError(t *testing.T) {
	t.Run("NewSecurityViolationError", func(t *testing.T) {
		err := errs.NewSecurityViolationError("suspend agency")

		assert.Equal(t, "suspend agency", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "security violation: suspend agency", err.Error())
		assert.Equal(t, errs.ErrSecurityViolation, err.Unwrap())
	})

	t.Run("NewSecurityViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("role SHIPMENT_MANAGER is required")
		err := errs.NewSecurityViolationErrorWithCause("validate shipment", cause)

		assert.Equal(t, "validate shipment", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"security violation: validate shipment (cause: role SHIPMENT_MANAGER is required)",
			err.Error())
		assert.Equal(t, errs.ErrSecurityViolation, err.Unwrap())
	})
}

func TestTenantViolationError(t *testing.T) {
	t.Run("NewTenantViolationError", func(t *testing.T) {
		err := errs.NewTenantViolationError("read shipment", "a1b2c3")

		assert.Equal(t, "read shipment", err.Operation)
		assert.Equal(t, "a1b2c3", err.ResourceTenant)
		assert.Equal(t, "tenant violation: read shipment, resource tenant is: a1b2c3", err.Error())
		assert.Equal(t, errs.ErrTenantViolation, err.Unwrap())
	})

	t.Run("tenant violations are not security violations", func(t *testing.T) {
		err := errs.NewTenantViolationError("read shipment", "a1b2c3")

		assert.ErrorIs(t, err, errs.ErrTenantViolation)
		assert.NotErrorIs(t, err, errs.ErrSecurityViolation)
	})
}

func TestBusinessRuleViolationError(t *testing.T) {
	t.Run("NewBusinessRuleViolationError", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("agency is already suspended")

		assert.Equal(t, "agency is already suspended", err.Rule)
		require.NoError(t, err.Cause)
		assert.Equal(t, "business rule violation: agency is already suspended", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolation, err.Unwrap())
	})

	t.Run("NewBusinessRuleViolationErrorWithCause", func(t *testing.T) {
		cause := errors.New("Delivered is terminal")
		err := errs.NewBusinessRuleViolationErrorWithCause("parcel status transition", cause)

		assert.Equal(t, "parcel status transition", err.Rule)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"business rule violation: parcel status transition (cause: Delivered is terminal)",
			err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolation, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrAuthenticationMalformed)
		require.Error(t, errs.ErrSecurityViolation)
		require.Error(t, errs.ErrTenantViolation)
		require.Error(t, errs.ErrBusinessRuleViolation)
	})
}
