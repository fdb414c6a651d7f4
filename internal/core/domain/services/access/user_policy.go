package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
)

// UserPolicy decides who may administer user accounts and role grants.
type UserPolicy struct{}

// NewUserPolicy creates a new UserPolicy instance.
func NewUserPolicy() UserPolicy {
	return UserPolicy{}
}

// CanManage reports whether the principal may mutate the target user.
// targetAgencyID is the target's agency, nil for platform and customer
// accounts.
func (p UserPolicy) CanManage(principal auth.Principal, targetAgencyID *kernel.UUID) bool {
	return p.ValidateManage(principal, targetAgencyID) == nil
}

// ValidateManage is the aborting variant of CanManage. Platform
// administrators manage any account; an agency admin manages only the
// employees of its own agency.
func (UserPolicy) ValidateManage(principal auth.Principal, targetAgencyID *kernel.UUID) error {
	if targetAgencyID == nil {
		return platformOnly(principal, "manage user")
	}
	return decide(principal, "manage user", *targetAgencyID, RoleAgencyAdmin)
}
