package parcel_test

import (
	"fmt"
	"testing"

	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []parcel.Status {
	return []parcel.Status{
		parcel.Registered,
		parcel.InTransit,
		parcel.InSorting,
		parcel.OutForDelivery,
		parcel.Delivered,
		parcel.Failed,
		parcel.Returned,
	}
}

// allowedTransitions mirrors the documented table and drives the exhaustive
// pair check below.
func allowedTransitions() map[parcel.Status][]parcel.Status {
	return map[parcel.Status][]parcel.Status{
		parcel.Registered:     {parcel.InTransit, parcel.InSorting},
		parcel.InTransit:      {parcel.InSorting, parcel.OutForDelivery, parcel.Failed},
		parcel.InSorting:      {parcel.InTransit, parcel.OutForDelivery},
		parcel.OutForDelivery: {parcel.Delivered, parcel.Failed, parcel.InTransit},
		parcel.Delivered:      {},
		parcel.Failed:         {parcel.Returned, parcel.InTransit},
		parcel.Returned:       {},
	}
}

func TestStatus_ValidateTransitionTo_ExhaustivePairs(t *testing.T) {
	for _, from := range allStatuses() {
		allowed := make(map[parcel.Status]bool)
		for _, to := range allowedTransitions()[from] {
			allowed[to] = true
		}

		for _, to := range allStatuses() {
			name := fmt.Sprintf("%s to %s", from.String(), to.String())

			t.Run(name, func(t *testing.T) {
				err := from.ValidateTransitionTo(to)

				if from != to && allowed[to] {
					require.NoError(t, err)
					return
				}
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
			})
		}
	}
}

func TestStatus_SelfTransitionAlwaysRejected(t *testing.T) {
	for _, status := range allStatuses() {
		err := status.ValidateTransitionTo(status)

		require.Error(t, err, "self-transition from %s must fail", status)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, parcel.Delivered.IsTerminal())
	assert.True(t, parcel.Returned.IsTerminal())

	for _, status := range []parcel.Status{parcel.Registered, parcel.InTransit, parcel.InSorting, parcel.OutForDelivery, parcel.Failed} {
		assert.False(t, status.IsTerminal(), "%s must not be terminal", status)
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range allStatuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []parcel.Status{parcel.Unknown, parcel.Status(-1), parcel.Status(42)} {
		require.Error(t, status.Validate())
	}
}

func TestStatus_ValidateTransitionTo_InvalidTarget(t *testing.T) {
	err := parcel.Registered.ValidateTransitionTo(parcel.Status(42))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
