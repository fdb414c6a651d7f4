package user

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrRoleIsNotConstructed is returned when a Role instance was not
	// created through NewRole or RestoreRole.
	ErrRoleIsNotConstructed = errors.New("Role must be created via NewRole or RestoreRole constructor")
)

// Role is a grantable permission bundle identified by a unique code and
// bound to a single scope.
type Role struct {
	id     kernel.UUID
	code   string
	scope  auth.RoleScope
	active bool

	guard guard.ConstructorGuard
}

// NewRole creates an active role.
func NewRole(id kernel.UUID, code string, scope auth.RoleScope) (*Role, error) {
	role := &Role{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		role.setID(id),
		role.setCode(code),
		role.setScope(scope),
	); err != nil {
		return nil, err
	}

	return role, nil
}

// RestoreRole reconstructs a role from persistence.
func RestoreRole(id kernel.UUID, code string, scope auth.RoleScope, active bool) (*Role, error) {
	role, err := NewRole(id, code, scope)
	if err != nil {
		return nil, err
	}

	role.active = active
	return role, nil
}

// Validate ensures the Role was created through a constructor.
func (r *Role) Validate() error {
	if r == nil {
		return ErrRoleIsNotConstructed
	}
	return r.guard.Validate(ErrRoleIsNotConstructed)
}

// ID returns the role's unique identifier.
func (r *Role) ID() kernel.UUID {
	return r.id
}

// Code returns the unique role code.
func (r *Role) Code() string {
	return r.code
}

// Scope returns the actor-class scope the role is grantable within.
func (r *Role) Scope() auth.RoleScope {
	return r.scope
}

// IsActive reports whether the role may still be granted.
func (r *Role) IsActive() bool {
	return r.active
}

// Deactivate retires the role. Existing grants stay; new grants fail.
func (r *Role) Deactivate() {
	r.active = false
}

// Activate re-enables the role for granting.
func (r *Role) Activate() {
	r.active = true
}

func (r *Role) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Role) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("role code")
	}
	r.code = code
	return nil
}

func (r *Role) setScope(scope auth.RoleScope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	r.scope = scope
	return nil
}
