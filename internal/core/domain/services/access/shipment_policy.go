package access

import (
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// ShipmentPolicy decides who may read, create, and operate on shipments.
//
// Two creation paths exist: the employee path (any employee of the owning
// agency) and the separate customer path. A customer never gains employee
// permissions; they may only read, update, and cancel shipments they
// originated, and the state machine further restricts those changes to the
// pending-validation window.
type ShipmentPolicy struct{}

// NewShipmentPolicy creates a new ShipmentPolicy instance.
func NewShipmentPolicy() ShipmentPolicy {
	return ShipmentPolicy{}
}

// CanAccess reports whether the principal may read the shipment.
func (p ShipmentPolicy) CanAccess(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateAccess(principal, s) == nil
}

// ValidateAccess is the aborting variant of CanAccess. Customers are
// always denied here; their read path is ValidateCustomerAccess.
func (ShipmentPolicy) ValidateAccess(principal auth.Principal, s *shipment.Shipment) error {
	return decide(principal, "read shipment", s.AgencyID())
}

// CanCustomerAccess reports whether the principal may read the shipment
// through the customer path. Ownership only.
func (p ShipmentPolicy) CanCustomerAccess(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateCustomerAccess(principal, s) == nil
}

// ValidateCustomerAccess is the aborting variant of CanCustomerAccess.
func (ShipmentPolicy) ValidateCustomerAccess(principal auth.Principal, s *shipment.Shipment) error {
	if err := principal.Validate(); err != nil {
		return errs.NewSecurityViolationErrorWithCause("read shipment", err)
	}
	if !principal.IsCustomer() || !s.IsOwnedByCustomer(principal.UserID()) {
		return errs.NewSecurityViolationError("read shipment")
	}
	return nil
}

// CanCreate reports whether the principal may create a shipment for the
// agency through the employee path.
func (p ShipmentPolicy) CanCreate(principal auth.Principal, agencyID kernel.UUID) bool {
	return p.ValidateCreate(principal, agencyID) == nil
}

// ValidateCreate is the aborting variant of CanCreate.
func (ShipmentPolicy) ValidateCreate(principal auth.Principal, agencyID kernel.UUID) error {
	return decide(principal, "create shipment", agencyID)
}

// CanCreateAsCustomer reports whether the principal may use the customer
// creation path.
func (p ShipmentPolicy) CanCreateAsCustomer(principal auth.Principal) bool {
	return p.ValidateCreateAsCustomer(principal) == nil
}

// ValidateCreateAsCustomer is the aborting variant of CanCreateAsCustomer.
func (ShipmentPolicy) ValidateCreateAsCustomer(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return errs.NewSecurityViolationErrorWithCause("create customer shipment", err)
	}
	if !principal.IsCustomer() {
		return errs.NewSecurityViolationError("create customer shipment")
	}
	return nil
}

// CanModify reports whether the principal may update the shipment's content
// through the employee path.
func (p ShipmentPolicy) CanModify(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateModify(principal, s) == nil
}

// ValidateModify is the aborting variant of CanModify.
func (ShipmentPolicy) ValidateModify(principal auth.Principal, s *shipment.Shipment) error {
	return decide(principal, "modify shipment", s.AgencyID(), RoleShipmentManager, RoleAgencyAdmin)
}

// CanUpdateStatus reports whether the principal may confirm, validate, or
// reject the shipment.
func (p ShipmentPolicy) CanUpdateStatus(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateUpdateStatus(principal, s) == nil
}

// ValidateUpdateStatus is the aborting variant of CanUpdateStatus.
func (ShipmentPolicy) ValidateUpdateStatus(principal auth.Principal, s *shipment.Shipment) error {
	return decide(principal, "update shipment status", s.AgencyID(), RoleShipmentManager, RoleAgencyAdmin)
}

// CanDelete reports whether the principal may delete the shipment through
// the employee path.
func (p ShipmentPolicy) CanDelete(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateDelete(principal, s) == nil
}

// ValidateDelete is the aborting variant of CanDelete.
func (ShipmentPolicy) ValidateDelete(principal auth.Principal, s *shipment.Shipment) error {
	return decide(principal, "delete shipment", s.AgencyID(), RoleAgencyAdmin)
}

// CanCustomerChange reports whether the principal may update or cancel the
// shipment through the customer path. Ownership only; the state machine
// decides whether the shipment is still in the modifiable window.
func (p ShipmentPolicy) CanCustomerChange(principal auth.Principal, s *shipment.Shipment) bool {
	return p.ValidateCustomerChange(principal, s) == nil
}

// ValidateCustomerChange is the aborting variant of CanCustomerChange.
func (ShipmentPolicy) ValidateCustomerChange(principal auth.Principal, s *shipment.Shipment) error {
	if err := principal.Validate(); err != nil {
		return errs.NewSecurityViolationErrorWithCause("change customer shipment", err)
	}
	if !principal.IsCustomer() || !s.IsOwnedByCustomer(principal.UserID()) {
		return errs.NewSecurityViolationError("change customer shipment")
	}
	return nil
}
