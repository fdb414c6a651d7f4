package shipment_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []shipment.Status{
			shipment.Open,
			shipment.PendingValidation,
			shipment.Confirmed,
			shipment.Validated,
			shipment.Rejected,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Unknown, shipment.Status(-1), shipment.Status(42)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   shipment.Status
		expected string
	}{
		{shipment.Open, "Open"},
		{shipment.PendingValidation, "PendingValidation"},
		{shipment.Confirmed, "Confirmed"},
		{shipment.Validated, "Validated"},
		{shipment.Rejected, "Rejected"},
		{shipment.Unknown, "Unknown"},
		{shipment.Status(99), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Confirm(t *testing.T) {
	t.Run("Open confirms", func(t *testing.T) {
		newStatus, err := shipment.Open.Confirm()

		require.NoError(t, err)
		assert.Equal(t, shipment.Confirmed, newStatus)
	})

	t.Run("any other status is a business rule violation", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.PendingValidation, shipment.Confirmed, shipment.Validated, shipment.Rejected, shipment.Unknown} {
			_, err := status.Confirm()

			require.Error(t, err, "expected %s to refuse confirmation", status)
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		}
	})
}

func TestStatus_MarkValidated(t *testing.T) {
	t.Run("PendingValidation validates", func(t *testing.T) {
		newStatus, err := shipment.PendingValidation.MarkValidated()

		require.NoError(t, err)
		assert.Equal(t, shipment.Validated, newStatus)
	})

	t.Run("any other status is a business rule violation", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Open, shipment.Confirmed, shipment.Validated, shipment.Rejected} {
			_, err := status.MarkValidated()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		}
	})
}

func TestStatus_MarkRejected(t *testing.T) {
	t.Run("PendingValidation rejects", func(t *testing.T) {
		newStatus, err := shipment.PendingValidation.MarkRejected()

		require.NoError(t, err)
		assert.Equal(t, shipment.Rejected, newStatus)
	})

	t.Run("any other status is a business rule violation", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Open, shipment.Confirmed, shipment.Validated, shipment.Rejected} {
			_, err := status.MarkRejected()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		}
	})
}

func TestStatus_AllowsParcelAttachment(t *testing.T) {
	assert.True(t, shipment.Open.AllowsParcelAttachment())
	assert.True(t, shipment.PendingValidation.AllowsParcelAttachment())
	assert.True(t, shipment.Validated.AllowsParcelAttachment())
	assert.False(t, shipment.Confirmed.AllowsParcelAttachment())
	assert.False(t, shipment.Rejected.AllowsParcelAttachment())
}

func TestStatus_AllowsCustomerChanges(t *testing.T) {
	assert.True(t, shipment.PendingValidation.AllowsCustomerChanges())
	assert.False(t, shipment.Open.AllowsCustomerChanges())
	assert.False(t, shipment.Confirmed.AllowsCustomerChanges())
	assert.False(t, shipment.Validated.AllowsCustomerChanges())
	assert.False(t, shipment.Rejected.AllowsCustomerChanges())
}
