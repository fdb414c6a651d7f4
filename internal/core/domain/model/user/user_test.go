package user_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployee(t *testing.T) *user.User {
	t.Helper()
	agencyID := kernel.NewUUID()
	u, err := user.NewUser(kernel.NewUUID(), "employee@acme.example", auth.ActorTypeAgencyEmployee, &agencyID)
	require.NoError(t, err)
	return u
}

func agencyRole(t *testing.T, code string) *user.Role {
	t.Helper()
	role, err := user.NewRole(kernel.NewUUID(), code, auth.RoleScopeAgency)
	require.NoError(t, err)
	return role
}

func TestNewUser(t *testing.T) {
	t.Run("starts inactive with unverified email and no roles", func(t *testing.T) {
		u := newEmployee(t)

		assert.False(t, u.IsActive())
		assert.False(t, u.IsEmailVerified())
		assert.False(t, u.IsDeleted())
		assert.Empty(t, u.RoleCodes())
		require.NoError(t, u.Validate())
	})

	t.Run("employee requires an agency", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "employee@acme.example", auth.ActorTypeAgencyEmployee, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-employees cannot carry an agency", func(t *testing.T) {
		agencyID := kernel.NewUUID()
		for _, actorType := range []auth.ActorType{auth.ActorTypePlatformAdmin, auth.ActorTypeCustomer} {
			_, err := user.NewUser(kernel.NewUUID(), "someone@acme.example", actorType, &agencyID)

			require.ErrorIs(t, err, errs.ErrBusinessRuleViolation, "actor type %s accepted an agency", actorType)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		agencyID := kernel.NewUUID()
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", auth.ActorTypeAgencyEmployee, &agencyID)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_GrantRole(t *testing.T) {
	t.Run("grants a matching active role", func(t *testing.T) {
		u := newEmployee(t)
		role := agencyRole(t, "SHIPMENT_MANAGER")

		require.NoError(t, u.GrantRole(role))

		assert.True(t, u.HasRole("SHIPMENT_MANAGER"))
	})

	t.Run("rejects a duplicate grant", func(t *testing.T) {
		u := newEmployee(t)
		role := agencyRole(t, "SHIPMENT_MANAGER")
		require.NoError(t, u.GrantRole(role))

		err := u.GrantRole(role)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("rejects an inactive role", func(t *testing.T) {
		u := newEmployee(t)
		role := agencyRole(t, "SHIPMENT_MANAGER")
		role.Deactivate()

		err := u.GrantRole(role)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.False(t, u.HasRole("SHIPMENT_MANAGER"))
	})

	t.Run("rejects a scope mismatch", func(t *testing.T) {
		u := newEmployee(t)
		platformRole, err := user.NewRole(kernel.NewUUID(), "PLATFORM_AUDITOR", auth.RoleScopePlatform)
		require.NoError(t, err)

		err = u.GrantRole(platformRole)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.False(t, u.HasRole("PLATFORM_AUDITOR"))
	})
}

func TestUser_RevokeRole(t *testing.T) {
	t.Run("revokes a granted role", func(t *testing.T) {
		u := newEmployee(t)
		require.NoError(t, u.GrantRole(agencyRole(t, "SHIPMENT_MANAGER")))

		require.NoError(t, u.RevokeRole("SHIPMENT_MANAGER"))

		assert.False(t, u.HasRole("SHIPMENT_MANAGER"))
	})

	t.Run("rejects revoking a role that was never granted", func(t *testing.T) {
		u := newEmployee(t)

		err := u.RevokeRole("SHIPMENT_MANAGER")

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})
}

func TestUser_AssignToAgency(t *testing.T) {
	t.Run("moves an employee and keeps the roles", func(t *testing.T) {
		u := newEmployee(t)
		require.NoError(t, u.GrantRole(agencyRole(t, "SHIPMENT_MANAGER")))
		newAgencyID := kernel.NewUUID()

		require.NoError(t, u.AssignToAgency(newAgencyID))

		require.NotNil(t, u.AgencyID())
		assert.True(t, u.AgencyID().IsEqual(newAgencyID))
		assert.True(t, u.HasRole("SHIPMENT_MANAGER"))
	})

	t.Run("rejected for non-employees", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "customer@acme.example", auth.ActorTypeCustomer, nil)
		require.NoError(t, err)

		err = u.AssignToAgency(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		assert.Nil(t, u.AgencyID())
	})
}

func TestUser_SoftDelete(t *testing.T) {
	t.Run("tombstones and deactivates", func(t *testing.T) {
		u := newEmployee(t)
		require.NoError(t, u.Activate())
		now := time.Now()

		require.NoError(t, u.SoftDelete(now))

		assert.True(t, u.IsDeleted())
		assert.False(t, u.IsActive())
		require.NotNil(t, u.DeletedAt())
		assert.Equal(t, now, *u.DeletedAt())
	})

	t.Run("second delete is rejected", func(t *testing.T) {
		u := newEmployee(t)
		require.NoError(t, u.SoftDelete(time.Now()))

		err := u.SoftDelete(time.Now())

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("deleted users refuse mutations", func(t *testing.T) {
		u := newEmployee(t)
		require.NoError(t, u.SoftDelete(time.Now()))

		require.ErrorIs(t, u.Activate(), errs.ErrBusinessRuleViolation)
		require.ErrorIs(t, u.VerifyEmail(), errs.ErrBusinessRuleViolation)
		require.ErrorIs(t, u.GrantRole(agencyRole(t, "SHIPMENT_MANAGER")), errs.ErrBusinessRuleViolation)
		require.ErrorIs(t, u.AssignToAgency(kernel.NewUUID()), errs.ErrBusinessRuleViolation)
	})
}

func TestUser_Lifecycle(t *testing.T) {
	u := newEmployee(t)

	require.NoError(t, u.VerifyEmail())
	require.NoError(t, u.Activate())

	assert.True(t, u.IsActive())
	assert.True(t, u.IsEmailVerified())

	require.NoError(t, u.Deactivate())
	assert.False(t, u.IsActive())
}

func TestRole(t *testing.T) {
	t.Run("starts active", func(t *testing.T) {
		role, err := user.NewRole(kernel.NewUUID(), "PARCEL_OPERATOR", auth.RoleScopeAgency)
		require.NoError(t, err)

		assert.True(t, role.IsActive())
		assert.Equal(t, "PARCEL_OPERATOR", role.Code())
		assert.Equal(t, auth.RoleScopeAgency, role.Scope())
		require.NoError(t, role.Validate())
	})

	t.Run("requires a code", func(t *testing.T) {
		_, err := user.NewRole(kernel.NewUUID(), "  ", auth.RoleScopeAgency)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a valid scope", func(t *testing.T) {
		_, err := user.NewRole(kernel.NewUUID(), "PARCEL_OPERATOR", auth.RoleScopeUnknown)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var role user.Role
		require.ErrorIs(t, role.Validate(), user.ErrRoleIsNotConstructed)
	})
}
