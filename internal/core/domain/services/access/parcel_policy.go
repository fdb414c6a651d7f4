package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ParcelPolicy decides who may read, register, and operate on parcels.
// Customer tracking does not pass through here; it is a separate
// tracking-number lookup that exposes only scan-level facts.
type ParcelPolicy struct{}

// NewParcelPolicy creates a new ParcelPolicy instance.
func NewParcelPolicy() ParcelPolicy {
	return ParcelPolicy{}
}

// CanAccess reports whether the principal may read the parcel.
func (p ParcelPolicy) CanAccess(principal auth.Principal, pc *parcel.Parcel) bool {
	return p.ValidateAccess(principal, pc) == nil
}

// ValidateAccess is the aborting variant of CanAccess.
func (ParcelPolicy) ValidateAccess(principal auth.Principal, pc *parcel.Parcel) error {
	return decide(principal, "read parcel", pc.AgencyID())
}

// CanCreate reports whether the principal may register a parcel on a
// shipment of the agency.
func (p ParcelPolicy) CanCreate(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateCreate(principal, agencyID) == nil
}

// ValidateCreate is the aborting variant of CanCreate.
func (ParcelPolicy) ValidateCreate(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "register parcel", agencyID)
}

// CanModify reports whether the principal may edit the parcel's content.
func (p ParcelPolicy) CanModify(principal auth.Principal, pc *parcel.Parcel) bool {
	return p.ValidateModify(principal, pc) == nil
}

// ValidateModify is the aborting variant of CanModify.
func (ParcelPolicy) ValidateModify(principal auth.Principal, pc *parcel.Parcel) error {
	return decide(principal, "modify parcel", pc.AgencyID(), RoleParcelOperator, RoleAgencyAdmin)
}

// CanUpdateStatus reports whether the principal may record scan
// transitions, deliveries, and failures.
func (p ParcelPolicy) CanUpdateStatus(principal auth.Principal, pc *parcel.Parcel) bool {
	return p.ValidateUpdateStatus(principal, pc) == nil
}

// ValidateUpdateStatus is the aborting variant of CanUpdateStatus.
func (ParcelPolicy) ValidateUpdateStatus(principal auth.Principal, pc *parcel.Parcel) error {
	return decide(principal, "update parcel status", pc.AgencyID(), RoleParcelOperator, RoleAgencyAdmin)
}

// CanDelete reports whether the principal may remove the parcel.
func (p ParcelPolicy) CanDelete(principal auth.Principal, pc *parcel.Parcel) bool {
	return p.ValidateDelete(principal, pc) == nil
}

// ValidateDelete is the aborting variant of CanDelete.
func (ParcelPolicy) ValidateDelete(principal auth.Principal, pc *parcel.Parcel) error {
	return decide(principal, "delete parcel", pc.AgencyID(), RoleAgencyAdmin)
}
