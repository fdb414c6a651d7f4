package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")
)

// Parcel is a tenant-owned aggregate root belonging to exactly one agency
// and exactly one shipment. The notes field is append-only: failure reasons
// accumulate rather than replace each other, preserving scan history.
type Parcel struct {
	id             kernel.UUID
	agencyID       kernel.UUID
	shipmentID     kernel.UUID
	trackingNumber string
	status         Status

	// description is the declared content, editable only while Registered.
	description string

	currentLocationID *kernel.UUID
	lastScanAt        *time.Time

	deliveredAt *time.Time
	receivedBy  string

	notes string

	guard guard.ConstructorGuard
}

// NewParcel registers a parcel on a shipment, in Registered status.
func NewParcel(id, agencyID, shipmentID kernel.UUID, trackingNumber, description string) (*Parcel, error) {
	p := &Parcel{
		status: Registered,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setAgencyID(agencyID),
		p.setShipmentID(shipmentID),
		p.setTrackingNumber(trackingNumber),
		p.setDescription(description),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence.
// Used only by repository adapters.
func RestoreParcel(
	id, agencyID, shipmentID kernel.UUID,
	trackingNumber, description string,
	status Status,
	currentLocationID *kernel.UUID,
	lastScanAt, deliveredAt *time.Time,
	receivedBy, notes string,
) (*Parcel, error) {
	p, err := NewParcel(id, agencyID, shipmentID, trackingNumber, description)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.currentLocationID = currentLocationID
	p.lastScanAt = lastScanAt
	p.deliveredAt = deliveredAt
	p.receivedBy = receivedBy
	p.notes = notes
	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// AgencyID returns the owning agency (the tenant key).
func (p *Parcel) AgencyID() kernel.UUID {
	return p.agencyID
}

// ShipmentID returns the owning shipment.
func (p *Parcel) ShipmentID() kernel.UUID {
	return p.shipmentID
}

// TrackingNumber returns the generated tracking number.
func (p *Parcel) TrackingNumber() string {
	return p.trackingNumber
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// Description returns the declared content.
func (p *Parcel) Description() string {
	return p.description
}

// CurrentLocationID returns the location of the most recent scan, if any.
func (p *Parcel) CurrentLocationID() *kernel.UUID {
	return p.currentLocationID
}

// LastScanAt returns the time of the most recent scan, if any.
func (p *Parcel) LastScanAt() *time.Time {
	return p.lastScanAt
}

// DeliveredAt returns the delivery timestamp, once delivered.
func (p *Parcel) DeliveredAt() *time.Time {
	return p.deliveredAt
}

// ReceivedBy returns who signed for the delivery, once delivered.
func (p *Parcel) ReceivedBy() string {
	return p.receivedBy
}

// Notes returns the accumulated free-text notes.
func (p *Parcel) Notes() string {
	return p.notes
}

// IsModifiable reports whether content edits are still allowed.
// Only Registered parcels are modifiable.
func (p *Parcel) IsModifiable() bool {
	return p.status == Registered
}

// ChangeStatus performs a scan transition: the target must be reachable per
// the transition table, lastScanAt is stamped, and the current location is
// updated when a scan location is provided. A scan without a location keeps
// the last known location rather than clearing it. Reaching Delivered
// through this path also stamps deliveredAt.
func (p *Parcel) ChangeStatus(to Status, locationID *kernel.UUID, now time.Time) error {
	if err := p.status.ValidateTransitionTo(to); err != nil {
		return err
	}
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}

	p.status = to
	p.lastScanAt = &now
	if locationID != nil {
		p.currentLocationID = locationID
	}
	if to == Delivered {
		p.deliveredAt = &now
	}
	return nil
}

// MarkDelivered completes the delivery. Stricter than the general table:
// the current status must be exactly OutForDelivery. Stamps deliveredAt and
// records who received the parcel. On any other status the parcel is left
// unchanged.
func (p *Parcel) MarkDelivered(receivedBy string, locationID *kernel.UUID, now time.Time) error {
	if p.status != OutForDelivery {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"parcel delivery",
			fmt.Errorf("parcel must be %s to be delivered, is %s", OutForDelivery.String(), p.status.String()),
		)
	}
	if strings.TrimSpace(receivedBy) == "" {
		return errs.NewValueIsRequiredError("receivedBy")
	}

	if err := p.ChangeStatus(Delivered, locationID, now); err != nil {
		return err
	}

	p.receivedBy = receivedBy
	return nil
}

// MarkFailed records a failed delivery attempt. Rejected when the parcel is
// already in a terminal state. The failure reason is appended to the notes
// field, never replacing earlier entries.
func (p *Parcel) MarkFailed(reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}
	if p.status.IsTerminal() {
		return errs.NewBusinessRuleViolationErrorWithCause(
			"parcel failure",
			fmt.Errorf("parcel is already %s", p.status.String()),
		)
	}

	if err := p.ChangeStatus(Failed, nil, now); err != nil {
		return err
	}

	p.appendNote(reason)
	return nil
}

// UpdateDescription replaces the declared content. Allowed only while the
// parcel is Registered.
func (p *Parcel) UpdateDescription(description string) error {
	if !p.IsModifiable() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("parcel %s is no longer modifiable", p.trackingNumber))
	}
	return p.setDescription(description)
}

func (p *Parcel) appendNote(note string) {
	if p.notes == "" {
		p.notes = note
		return
	}
	p.notes = p.notes + "\n" + note
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	p.agencyID = agencyID
	return nil
}

func (p *Parcel) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	p.shipmentID = shipmentID
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("parcel description")
	}
	p.description = description
	return nil
}
