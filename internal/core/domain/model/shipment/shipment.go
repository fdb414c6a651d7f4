package shipment

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through one of the constructors.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment, NewCustomerShipment, or RestoreShipment constructor")

	// shipmentNumberPattern is the generated, human-traceable number format:
	// SHP-{YYYYMMDD}-{3-char agency prefix}-{6-digit sequence}.
	shipmentNumberPattern = regexp.MustCompile(`^SHP-\d{8}-[A-Z0-9]{3}-\d{6}$`)
)

// Shipment is a tenant-owned aggregate root. It carries its owning agency id
// as an explicit tenant key and owns zero or more parcels. Parcels keep an
// independent lifecycle; a shipment being Confirmed does not force its
// parcels into any particular state.
type Shipment struct {
	id             kernel.UUID
	agencyID       kernel.UUID
	shipmentNumber string
	status         Status

	// description is the customer-visible content summary.
	description string

	// customerID and pickupLocationID are set only on customer-created
	// shipments.
	customerID       *kernel.UUID
	pickupLocationID *kernel.UUID

	validatedByID   *kernel.UUID
	validatedAt     *time.Time
	rejectionReason string

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewShipment creates an employee-originated shipment in Open status.
func NewShipment(id, agencyID kernel.UUID, shipmentNumber, description string, createdAt time.Time) (*Shipment, error) {
	s := &Shipment{
		status:    Open,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setAgencyID(agencyID),
		s.setShipmentNumber(shipmentNumber),
		s.setDescription(description),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// NewCustomerShipment creates a customer-originated shipment in
// PendingValidation status, carrying the owning customer and the chosen
// pickup location.
func NewCustomerShipment(
	id, agencyID kernel.UUID,
	shipmentNumber, description string,
	customerID, pickupLocationID kernel.UUID,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, agencyID, shipmentNumber, description, createdAt)
	if err != nil {
		return nil, err
	}

	if err = customerID.Validate(); err != nil {
		return nil, err
	}
	if err = pickupLocationID.Validate(); err != nil {
		return nil, err
	}

	s.status = PendingValidation
	s.customerID = &customerID
	s.pickupLocationID = &pickupLocationID
	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// Used only by repository adapters.
func RestoreShipment(
	id, agencyID kernel.UUID,
	shipmentNumber, description string,
	status Status,
	customerID, pickupLocationID, validatedByID *kernel.UUID,
	validatedAt *time.Time,
	rejectionReason string,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(id, agencyID, shipmentNumber, description, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.customerID = customerID
	s.pickupLocationID = pickupLocationID
	s.validatedByID = validatedByID
	s.validatedAt = validatedAt
	s.rejectionReason = rejectionReason
	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// AgencyID returns the owning agency (the tenant key).
func (s *Shipment) AgencyID() kernel.UUID {
	return s.agencyID
}

// ShipmentNumber returns the generated human-readable number.
func (s *Shipment) ShipmentNumber() string {
	return s.shipmentNumber
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Description returns the content summary.
func (s *Shipment) Description() string {
	return s.description
}

// CustomerID returns the owning customer for customer-originated shipments,
// nil otherwise.
func (s *Shipment) CustomerID() *kernel.UUID {
	return s.customerID
}

// PickupLocationID returns the chosen pickup location for
// customer-originated shipments, nil otherwise.
func (s *Shipment) PickupLocationID() *kernel.UUID {
	return s.pickupLocationID
}

// ValidatedByID returns the validating employee, once validated.
func (s *Shipment) ValidatedByID() *kernel.UUID {
	return s.validatedByID
}

// ValidatedAt returns the validation timestamp, once validated.
func (s *Shipment) ValidatedAt() *time.Time {
	return s.validatedAt
}

// RejectionReason returns the recorded reason, once rejected.
func (s *Shipment) RejectionReason() string {
	return s.rejectionReason
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// Confirm transitions an Open shipment to Confirmed, closing it for parcel
// attachment. The caller must have enforced the attachment invariant before
// flipping state; after this call AllowsParcelAttachment reports false.
func (s *Shipment) Confirm() error {
	newStatus, err := s.status.Confirm()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// MarkValidated transitions a PendingValidation shipment to Validated and
// records who validated it and when.
func (s *Shipment) MarkValidated(validatedBy kernel.UUID, at time.Time) error {
	if err := validatedBy.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.MarkValidated()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.validatedByID = &validatedBy
	s.validatedAt = &at
	return nil
}

// MarkRejected transitions a PendingValidation shipment to Rejected with a
// non-blank reason.
func (s *Shipment) MarkRejected(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}

	newStatus, err := s.status.MarkRejected()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.rejectionReason = reason
	return nil
}

// UpdateDescription replaces the content summary. Allowed while the
// shipment is Open or still pending validation.
func (s *Shipment) UpdateDescription(description string) error {
	if s.status != Open && s.status != PendingValidation {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("shipment %s is no longer modifiable", s.shipmentNumber))
	}
	return s.setDescription(description)
}

// ValidateParcelAttachment returns a business error when the shipment no
// longer accepts parcels.
func (s *Shipment) ValidateParcelAttachment() error {
	if !s.status.AllowsParcelAttachment() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("shipment %s no longer accepts parcels", s.shipmentNumber))
	}
	return nil
}

// IsOwnedByCustomer reports whether the given customer originated this
// shipment.
func (s *Shipment) IsOwnedByCustomer(customerID kernel.UUID) bool {
	return s.customerID != nil && s.customerID.IsEqual(customerID)
}

// ValidateCustomerChange returns a business error unless the shipment is
// still pending validation. Customers may update or cancel only in that
// window.
func (s *Shipment) ValidateCustomerChange() error {
	if !s.status.AllowsCustomerChanges() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("shipment %s is no longer modifiable", s.shipmentNumber))
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	s.agencyID = agencyID
	return nil
}

func (s *Shipment) setShipmentNumber(number string) error {
	if !shipmentNumberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("shipment number",
			fmt.Errorf("%q does not match the SHP-YYYYMMDD-XXX-NNNNNN format", number))
	}
	s.shipmentNumber = number
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("shipment description")
	}
	s.description = description
	return nil
}
