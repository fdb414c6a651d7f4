package agency_test

import (
	"testing"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgency(t *testing.T) *agency.Agency {
	t.Helper()
	a, err := agency.NewAgency(kernel.NewUUID(), "Acme Logistics", "ops@acme.test", "+1-555-0100", "1 Depot Rd", 25, 1000)
	require.NoError(t, err)
	return a
}

func TestNewAgency(t *testing.T) {
	t.Run("starts active and unsuspended", func(t *testing.T) {
		a := newTestAgency(t)

		assert.True(t, a.IsActive())
		assert.False(t, a.IsSuspended())
		assert.True(t, a.CanCreateShipment())
		require.NoError(t, a.Validate())
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := agency.NewAgency(kernel.NewUUID(), "  ", "ops@acme.test", "", "1 Depot Rd", 25, 1000)
		require.Error(t, err)
	})

	t.Run("rejects non-positive subscription limits", func(t *testing.T) {
		_, err := agency.NewAgency(kernel.NewUUID(), "Acme", "ops@acme.test", "", "1 Depot Rd", 0, 1000)
		require.Error(t, err)

		_, err = agency.NewAgency(kernel.NewUUID(), "Acme", "ops@acme.test", "", "1 Depot Rd", 25, -1)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var a agency.Agency
		require.ErrorIs(t, a.Validate(), agency.ErrAgencyIsNotConstructed)
	})
}

func TestAgency_Suspend(t *testing.T) {
	t.Run("records the reason and blocks shipment creation", func(t *testing.T) {
		a := newTestAgency(t)

		require.NoError(t, a.Suspend("unpaid invoices"))

		assert.True(t, a.IsSuspended())
		assert.Equal(t, "unpaid invoices", a.SuspensionReason())
		assert.False(t, a.CanCreateShipment())
	})

	t.Run("requires a non-blank reason", func(t *testing.T) {
		a := newTestAgency(t)

		err := a.Suspend("   ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.False(t, a.IsSuspended())
	})

	t.Run("re-suspending is a business rule violation", func(t *testing.T) {
		a := newTestAgency(t)
		require.NoError(t, a.Suspend("unpaid invoices"))

		err := a.Suspend("fraud report")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Equal(t, "unpaid invoices", a.SuspensionReason(), "original reason must be preserved")
	})
}

func TestAgency_Unsuspend(t *testing.T) {
	t.Run("clears flag and reason", func(t *testing.T) {
		a := newTestAgency(t)
		require.NoError(t, a.Suspend("unpaid invoices"))

		require.NoError(t, a.Unsuspend())

		assert.False(t, a.IsSuspended())
		assert.Empty(t, a.SuspensionReason())
		assert.True(t, a.CanCreateShipment())
	})

	t.Run("unsuspending a non-suspended agency is a business rule violation", func(t *testing.T) {
		a := newTestAgency(t)

		err := a.Unsuspend()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestAgency_ActivationIsIndependentOfSuspension(t *testing.T) {
	a := newTestAgency(t)

	a.Deactivate()
	assert.False(t, a.IsActive())
	assert.False(t, a.CanCreateShipment())

	require.NoError(t, a.Suspend("compliance hold"))
	a.Activate()

	// Active again, but still suspended: shipment creation stays blocked.
	assert.True(t, a.IsActive())
	assert.False(t, a.CanCreateShipment())

	require.NoError(t, a.Unsuspend())
	assert.True(t, a.CanCreateShipment())
}

func TestRestoreAgency(t *testing.T) {
	t.Run("restores lifecycle flags", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := agency.RestoreAgency(id, "Acme", "ops@acme.test", "", "1 Depot Rd", false, true, "fraud report", 25, 1000)

		require.NoError(t, err)
		assert.False(t, a.IsActive())
		assert.True(t, a.IsSuspended())
		assert.Equal(t, "fraud report", a.SuspensionReason())
		assert.False(t, a.CanCreateShipment())
	})
}

func TestAgencyLocation(t *testing.T) {
	agencyID := kernel.NewUUID()

	t.Run("operational iff active and not temporarily closed", func(t *testing.T) {
		l, err := agency.NewAgencyLocation(kernel.NewUUID(), agencyID, "Downtown Hub", "5 Market St")
		require.NoError(t, err)
		assert.True(t, l.IsOperational())

		l.CloseTemporarily()
		assert.False(t, l.IsOperational())

		l.Reopen()
		assert.True(t, l.IsOperational())

		l.Deactivate()
		assert.False(t, l.IsOperational())
	})

	t.Run("requires name and address", func(t *testing.T) {
		_, err := agency.NewAgencyLocation(kernel.NewUUID(), agencyID, "", "5 Market St")
		require.Error(t, err)

		_, err = agency.NewAgencyLocation(kernel.NewUUID(), agencyID, "Downtown Hub", " ")
		require.Error(t, err)
	})

	t.Run("carries the owning tenant id", func(t *testing.T) {
		l, err := agency.NewAgencyLocation(kernel.NewUUID(), agencyID, "Downtown Hub", "5 Market St")
		require.NoError(t, err)
		assert.True(t, l.AgencyID().IsEqual(agencyID))
	})
}
