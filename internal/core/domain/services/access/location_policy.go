package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
)

// LocationPolicy decides who may read and manage agency locations.
type LocationPolicy struct{}

// NewLocationPolicy creates a new LocationPolicy instance.
func NewLocationPolicy() LocationPolicy {
	return LocationPolicy{}
}

// CanAccess reports whether the principal may read a location of the given
// agency.
func (p LocationPolicy) CanAccess(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateAccess(principal, agencyID) == nil
}

// ValidateAccess is the aborting variant of CanAccess.
func (LocationPolicy) ValidateAccess(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "read location", agencyID)
}

// CanCreate reports whether the principal may add a location to the agency.
func (p LocationPolicy) CanCreate(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateCreate(principal, agencyID) == nil
}

// ValidateCreate is the aborting variant of CanCreate.
func (LocationPolicy) ValidateCreate(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "create location", agencyID, RoleLocationManager, RoleAgencyAdmin)
}

// CanModify reports whether the principal may update a location's details.
func (p LocationPolicy) CanModify(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateModify(principal, agencyID) == nil
}

// ValidateModify is the aborting variant of CanModify.
func (LocationPolicy) ValidateModify(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "modify location", agencyID, RoleLocationManager, RoleAgencyAdmin)
}

// CanUpdateStatus reports whether the principal may close, reopen,
// activate, or deactivate a location.
func (p LocationPolicy) CanUpdateStatus(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateUpdateStatus(principal, agencyID) == nil
}

// ValidateUpdateStatus is the aborting variant of CanUpdateStatus.
func (LocationPolicy) ValidateUpdateStatus(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "update location status", agencyID, RoleLocationManager, RoleAgencyAdmin)
}

// CanDelete reports whether the principal may remove a location.
func (p LocationPolicy) CanDelete(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateDelete(principal, agencyID) == nil
}

// ValidateDelete is the aborting variant of CanDelete.
func (LocationPolicy) ValidateDelete(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "delete location", agencyID, RoleAgencyAdmin)
}
