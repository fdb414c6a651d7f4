package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testShipmentNumber = "SHP-20260829-A1B-000001"

func newOpenShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), testShipmentNumber, "two pallets of parts", time.Now())
	require.NoError(t, err)
	return s
}

func newCustomerShipment(t *testing.T, customerID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewCustomerShipment(
		kernel.NewUUID(), kernel.NewUUID(), testShipmentNumber, "household goods",
		customerID, kernel.NewUUID(), time.Now())
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("employee path starts Open without customer fields", func(t *testing.T) {
		s := newOpenShipment(t)

		assert.Equal(t, shipment.Open, s.Status())
		assert.Nil(t, s.CustomerID())
		assert.Nil(t, s.PickupLocationID())
		require.NoError(t, s.Validate())
	})

	t.Run("rejects malformed shipment numbers", func(t *testing.T) {
		malformed := []string{
			"",
			"SHP-2026-A1B-000001",
			"SHP-20260829-a1b-000001",
			"SHP-20260829-A1B-1",
			"TRK-20260829-A1B-000001",
		}

		for _, number := range malformed {
			_, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), number, "parts", time.Now())
			require.Error(t, err, "expected %q to be rejected", number)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestNewCustomerShipment(t *testing.T) {
	t.Run("customer path starts PendingValidation with customer fields", func(t *testing.T) {
		customerID := kernel.NewUUID()
		s := newCustomerShipment(t, customerID)

		assert.Equal(t, shipment.PendingValidation, s.Status())
		require.NotNil(t, s.CustomerID())
		assert.True(t, s.CustomerID().IsEqual(customerID))
		assert.NotNil(t, s.PickupLocationID())
		assert.True(t, s.IsOwnedByCustomer(customerID))
		assert.False(t, s.IsOwnedByCustomer(kernel.NewUUID()))
	})

	t.Run("requires valid customer and pickup location ids", func(t *testing.T) {
		_, err := shipment.NewCustomerShipment(
			kernel.NewUUID(), kernel.NewUUID(), testShipmentNumber, "goods",
			kernel.UUID{}, kernel.NewUUID(), time.Now())
		require.Error(t, err)
	})
}

func TestShipment_Confirm(t *testing.T) {
	t.Run("Open confirms and closes parcel attachment", func(t *testing.T) {
		s := newOpenShipment(t)
		require.NoError(t, s.ValidateParcelAttachment())

		require.NoError(t, s.Confirm())

		assert.Equal(t, shipment.Confirmed, s.Status())
		err := s.ValidateParcelAttachment()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("confirming twice is a business rule violation", func(t *testing.T) {
		s := newOpenShipment(t)
		require.NoError(t, s.Confirm())

		require.ErrorIs(t, s.Confirm(), errs.ErrBusinessRuleViolation)
	})
}

func TestShipment_MarkValidated(t *testing.T) {
	t.Run("records validator and timestamp", func(t *testing.T) {
		s := newCustomerShipment(t, kernel.NewUUID())
		validator := kernel.NewUUID()
		at := time.Now()

		require.NoError(t, s.MarkValidated(validator, at))

		assert.Equal(t, shipment.Validated, s.Status())
		require.NotNil(t, s.ValidatedByID())
		assert.True(t, s.ValidatedByID().IsEqual(validator))
		require.NotNil(t, s.ValidatedAt())
		assert.Equal(t, at, *s.ValidatedAt())
	})

	t.Run("employee shipments cannot be validated", func(t *testing.T) {
		s := newOpenShipment(t)

		err := s.MarkValidated(kernel.NewUUID(), time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, shipment.Open, s.Status())
	})
}

func TestShipment_MarkRejected(t *testing.T) {
	t.Run("records the reason", func(t *testing.T) {
		s := newCustomerShipment(t, kernel.NewUUID())

		require.NoError(t, s.MarkRejected("pickup location out of coverage"))

		assert.Equal(t, shipment.Rejected, s.Status())
		assert.Equal(t, "pickup location out of coverage", s.RejectionReason())
	})

	t.Run("requires a non-blank reason", func(t *testing.T) {
		s := newCustomerShipment(t, kernel.NewUUID())

		err := s.MarkRejected("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, shipment.PendingValidation, s.Status())
	})
}

func TestShipment_CustomerChangeWindow(t *testing.T) {
	t.Run("customer may change only while pending validation", func(t *testing.T) {
		s := newCustomerShipment(t, kernel.NewUUID())
		require.NoError(t, s.ValidateCustomerChange())

		require.NoError(t, s.MarkValidated(kernel.NewUUID(), time.Now()))

		err := s.ValidateCustomerChange()
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestShipment_UpdateDescription(t *testing.T) {
	t.Run("allowed while Open", func(t *testing.T) {
		s := newOpenShipment(t)

		require.NoError(t, s.UpdateDescription("three pallets of parts"))
		assert.Equal(t, "three pallets of parts", s.Description())
	})

	t.Run("refused after confirmation", func(t *testing.T) {
		s := newOpenShipment(t)
		require.NoError(t, s.Confirm())

		err := s.UpdateDescription("three pallets of parts")
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores all lifecycle fields", func(t *testing.T) {
		id := kernel.NewUUID()
		agencyID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		pickupID := kernel.NewUUID()
		validator := kernel.NewUUID()
		validatedAt := time.Now()

		s, err := shipment.RestoreShipment(
			id, agencyID, testShipmentNumber, "household goods",
			shipment.Validated,
			&customerID, &pickupID, &validator, &validatedAt, "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, shipment.Validated, s.Status())
		assert.True(t, s.AgencyID().IsEqual(agencyID))
		require.NotNil(t, s.ValidatedByID())
		assert.True(t, s.ValidatedByID().IsEqual(validator))
	})

	t.Run("rejects invalid status values", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), testShipmentNumber, "goods",
			shipment.Status(42),
			nil, nil, nil, nil, "", time.Now())
		require.Error(t, err)
	})
}
