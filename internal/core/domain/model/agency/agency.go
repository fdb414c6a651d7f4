package agency

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrAgencyIsNotConstructed is returned when an Agency instance was not
	// created through NewAgency or RestoreAgency.
	ErrAgencyIsNotConstructed = errors.New("Agency must be created via NewAgency or RestoreAgency constructor")
)

// Agency is the tenant root. Every tenant-owned entity (locations,
// shipments, parcels) carries this aggregate's id as an explicit foreign
// key so that policy checks and persistence queries can filter by tenant
// without traversing object graphs.
type Agency struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	// address is the registered street address of the agency head office.
	address string

	active           bool
	suspended        bool
	suspensionReason string

	// Subscription limits enforced by the application layer.
	maxUsers             int
	maxShipmentsPerMonth int

	guard guard.ConstructorGuard
}

// NewAgency creates an active, unsuspended agency.
func NewAgency(id kernel.UUID, name, email, phone, address string, maxUsers, maxShipmentsPerMonth int) (*Agency, error) {
	agency := &Agency{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agency.setID(id),
		agency.setName(name),
		agency.setContact(email, phone, address),
		agency.setLimits(maxUsers, maxShipmentsPerMonth),
	); err != nil {
		return nil, err
	}

	return agency, nil
}

// RestoreAgency reconstructs an agency from persistence, including its
// lifecycle flags. Used only by repository adapters.
func RestoreAgency(
	id kernel.UUID,
	name, email, phone, address string,
	active, suspended bool,
	suspensionReason string,
	maxUsers, maxShipmentsPerMonth int,
) (*Agency, error) {
	agency, err := NewAgency(id, name, email, phone, address, maxUsers, maxShipmentsPerMonth)
	if err != nil {
		return nil, err
	}

	agency.active = active
	agency.suspended = suspended
	agency.suspensionReason = suspensionReason
	return agency, nil
}

// Validate ensures the Agency was created through a constructor.
func (a *Agency) Validate() error {
	if a == nil {
		return ErrAgencyIsNotConstructed
	}
	return a.guard.Validate(ErrAgencyIsNotConstructed)
}

// ID returns the agency's unique identifier (the tenant key).
func (a *Agency) ID() kernel.UUID {
	return a.id
}

// Name returns the agency's display name.
func (a *Agency) Name() string {
	return a.name
}

// Email returns the agency's contact email.
func (a *Agency) Email() string {
	return a.email
}

// Phone returns the agency's contact phone number.
func (a *Agency) Phone() string {
	return a.phone
}

// Address returns the agency's registered address.
func (a *Agency) Address() string {
	return a.address
}

// IsActive reports the deactivation flag.
func (a *Agency) IsActive() bool {
	return a.active
}

// IsSuspended reports the suspension flag.
func (a *Agency) IsSuspended() bool {
	return a.suspended
}

// SuspensionReason returns the recorded reason, or the empty string when
// the agency is not suspended.
func (a *Agency) SuspensionReason() string {
	return a.suspensionReason
}

// MaxUsers returns the subscription's user limit.
func (a *Agency) MaxUsers() int {
	return a.maxUsers
}

// MaxShipmentsPerMonth returns the subscription's monthly shipment limit.
func (a *Agency) MaxShipmentsPerMonth() int {
	return a.maxShipmentsPerMonth
}

// Suspend sets the suspension flag with a non-blank reason.
//
// Re-suspending an already-suspended agency is a business rule violation,
// not a no-op: the recorded reason is audit-relevant and silently
// overwriting it would lose the original cause. Callers wanting idempotency
// check IsSuspended first.
func (a *Agency) Suspend(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("suspension reason")
	}
	if a.suspended {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("agency %s is already suspended", a.id))
	}

	a.suspended = true
	a.suspensionReason = reason
	return nil
}

// Unsuspend clears the suspension flag and reason.
func (a *Agency) Unsuspend() error {
	if !a.suspended {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("agency %s is not suspended", a.id))
	}

	a.suspended = false
	a.suspensionReason = ""
	return nil
}

// Activate sets the active flag. Independent of suspension.
func (a *Agency) Activate() {
	a.active = true
}

// Deactivate clears the active flag. Independent of suspension.
func (a *Agency) Deactivate() {
	a.active = false
}

// UpdateDetails replaces the agency's name and contact fields.
func (a *Agency) UpdateDetails(name, email, phone, address string) error {
	return errors.Join(
		a.setName(name),
		a.setContact(email, phone, address),
	)
}

// CanCreateShipment reports whether the agency may create shipments.
// Every shipment-creation path consults this before a shipment number is
// allocated, so a blocked agency never consumes a number.
func (a *Agency) CanCreateShipment() bool {
	return a.active && !a.suspended
}

func (a *Agency) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agency) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("agency name")
	}
	a.name = name
	return nil
}

func (a *Agency) setContact(email, phone, address string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("agency email")
	}
	a.email = email
	a.phone = phone
	a.address = address
	return nil
}

func (a *Agency) setLimits(maxUsers, maxShipmentsPerMonth int) error {
	if maxUsers <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxUsers",
			fmt.Errorf("%d is not greater than 0", maxUsers))
	}
	if maxShipmentsPerMonth <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxShipmentsPerMonth",
			fmt.Errorf("%d is not greater than 0", maxShipmentsPerMonth))
	}
	a.maxUsers = maxUsers
	a.maxShipmentsPerMonth = maxShipmentsPerMonth
	return nil
}
