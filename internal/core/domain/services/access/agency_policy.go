package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
)

// AgencyPolicy decides who may read, create, and administer agencies.
//
// Agencies are the tenant roots, so the rules here are stricter than for
// the tenant-owned families: creation and suspension belong to the
// platform, and an employee only ever sees its own agency.
type AgencyPolicy struct{}

// NewAgencyPolicy creates a new AgencyPolicy instance.
func NewAgencyPolicy() AgencyPolicy {
	return AgencyPolicy{}
}

// CanAccess reports whether the principal may read the agency.
func (p AgencyPolicy) CanAccess(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateAccess(principal, agencyID) == nil
}

// ValidateAccess is the aborting variant of CanAccess.
func (AgencyPolicy) ValidateAccess(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "read agency", agencyID)
}

// CanCreate reports whether the principal may register a new agency.
// Platform administrators only.
func (p AgencyPolicy) CanCreate(principal auth.Principal) bool {
	return p.ValidateCreate(principal) == nil
}

// ValidateCreate is the aborting variant of CanCreate.
func (AgencyPolicy) ValidateCreate(principal auth.Principal) error {
	return platformOnly(principal, "create agency")
}

// CanModify reports whether the principal may update the agency's details.
func (p AgencyPolicy) CanModify(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateModify(principal, agencyID) == nil
}

// ValidateModify is the aborting variant of CanModify.
func (AgencyPolicy) ValidateModify(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "modify agency", agencyID, RoleAgencyAdmin)
}

// CanSuspend reports whether the principal may suspend or unsuspend the
// agency. Suspension is a compliance action reserved for the platform.
func (p AgencyPolicy) CanSuspend(principal auth.Principal) bool {
	return p.ValidateSuspend(principal) == nil
}

// ValidateSuspend is the aborting variant of CanSuspend.
func (AgencyPolicy) ValidateSuspend(principal auth.Principal) error {
	return platformOnly(principal, "suspend agency")
}

// CanDelete reports whether the principal may deactivate the agency.
func (p AgencyPolicy) CanDelete(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateDelete(principal, agencyID) == nil
}

// ValidateDelete is the aborting variant of CanDelete.
func (AgencyPolicy) ValidateDelete(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "delete agency", agencyID, RoleAgencyAdmin)
}
