package events

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// DomainEvent is the contract every outbox-bound event satisfies.
type DomainEvent interface {
	// EventID uniquely identifies this occurrence for deduplication.
	EventID() kernel.UUID

	// EventType is the stable wire name of the event.
	EventType() string

	// OccurredAt is when the state change happened.
	OccurredAt() time.Time

	// AgencyID is the tenant the event belongs to.
	AgencyID() kernel.UUID
}

type baseEvent struct {
	ID         kernel.UUID `json:"eventId"`
	Agency     kernel.UUID `json:"agencyId"`
	HappenedAt time.Time   `json:"occurredAt"`
}

func newBaseEvent(agencyID kernel.UUID, occurredAt time.Time) baseEvent {
	return baseEvent{
		ID:         kernel.NewUUID(),
		Agency:     agencyID,
		HappenedAt: occurredAt,
	}
}

func (e baseEvent) EventID() kernel.UUID {
	return e.ID
}

func (e baseEvent) OccurredAt() time.Time {
	return e.HappenedAt
}

func (e baseEvent) AgencyID() kernel.UUID {
	return e.Agency
}

// ShipmentCreated is emitted when a shipment enters the system, through
// either the employee or the customer path.
type ShipmentCreated struct {
	baseEvent
	ShipmentID     kernel.UUID `json:"shipmentId"`
	ShipmentNumber string      `json:"shipmentNumber"`
}

func NewShipmentCreated(agencyID, shipmentID kernel.UUID, shipmentNumber string, occurredAt time.Time) ShipmentCreated {
	return ShipmentCreated{
		baseEvent:      newBaseEvent(agencyID, occurredAt),
		ShipmentID:     shipmentID,
		ShipmentNumber: shipmentNumber,
	}
}

func (ShipmentCreated) EventType() string { return "shipment.created" }

// ShipmentConfirmed is emitted when an open shipment is confirmed.
type ShipmentConfirmed struct {
	baseEvent
	ShipmentID     kernel.UUID `json:"shipmentId"`
	ShipmentNumber string      `json:"shipmentNumber"`
}

func NewShipmentConfirmed(agencyID, shipmentID kernel.UUID, shipmentNumber string, occurredAt time.Time) ShipmentConfirmed {
	return ShipmentConfirmed{
		baseEvent:      newBaseEvent(agencyID, occurredAt),
		ShipmentID:     shipmentID,
		ShipmentNumber: shipmentNumber,
	}
}

func (ShipmentConfirmed) EventType() string { return "shipment.confirmed" }

// ShipmentValidated is emitted when an employee approves a customer-created
// shipment.
type ShipmentValidated struct {
	baseEvent
	ShipmentID    kernel.UUID `json:"shipmentId"`
	ValidatedByID kernel.UUID `json:"validatedById"`
}

func NewShipmentValidated(agencyID, shipmentID, validatedByID kernel.UUID, occurredAt time.Time) ShipmentValidated {
	return ShipmentValidated{
		baseEvent:     newBaseEvent(agencyID, occurredAt),
		ShipmentID:    shipmentID,
		ValidatedByID: validatedByID,
	}
}

func (ShipmentValidated) EventType() string { return "shipment.validated" }

// ShipmentRejected is emitted when an employee rejects a customer-created
// shipment.
type ShipmentRejected struct {
	baseEvent
	ShipmentID kernel.UUID `json:"shipmentId"`
	Reason     string      `json:"reason"`
}

func NewShipmentRejected(agencyID, shipmentID kernel.UUID, reason string, occurredAt time.Time) ShipmentRejected {
	return ShipmentRejected{
		baseEvent:  newBaseEvent(agencyID, occurredAt),
		ShipmentID: shipmentID,
		Reason:     reason,
	}
}

func (ShipmentRejected) EventType() string { return "shipment.rejected" }

// ShipmentCancelled is emitted when a customer withdraws a shipment that is
// still pending validation.
type ShipmentCancelled struct {
	baseEvent
	ShipmentID kernel.UUID `json:"shipmentId"`
	CustomerID kernel.UUID `json:"customerId"`
}

func NewShipmentCancelled(agencyID, shipmentID, customerID kernel.UUID, occurredAt time.Time) ShipmentCancelled {
	return ShipmentCancelled{
		baseEvent:  newBaseEvent(agencyID, occurredAt),
		ShipmentID: shipmentID,
		CustomerID: customerID,
	}
}

func (ShipmentCancelled) EventType() string { return "shipment.cancelled" }

// ParcelRegistered is emitted when a parcel is attached to a shipment.
type ParcelRegistered struct {
	baseEvent
	ParcelID       kernel.UUID `json:"parcelId"`
	ShipmentID     kernel.UUID `json:"shipmentId"`
	TrackingNumber string      `json:"trackingNumber"`
}

func NewParcelRegistered(agencyID, parcelID, shipmentID kernel.UUID, trackingNumber string, occurredAt time.Time) ParcelRegistered {
	return ParcelRegistered{
		baseEvent:      newBaseEvent(agencyID, occurredAt),
		ParcelID:       parcelID,
		ShipmentID:     shipmentID,
		TrackingNumber: trackingNumber,
	}
}

func (ParcelRegistered) EventType() string { return "parcel.registered" }

// ParcelStatusChanged is emitted on every successful scan transition.
type ParcelStatusChanged struct {
	baseEvent
	ParcelID       kernel.UUID `json:"parcelId"`
	TrackingNumber string      `json:"trackingNumber"`
	FromStatus     string      `json:"fromStatus"`
	ToStatus       string      `json:"toStatus"`
}

func NewParcelStatusChanged(agencyID, parcelID kernel.UUID, trackingNumber, fromStatus, toStatus string, occurredAt time.Time) ParcelStatusChanged {
	return ParcelStatusChanged{
		baseEvent:      newBaseEvent(agencyID, occurredAt),
		ParcelID:       parcelID,
		TrackingNumber: trackingNumber,
		FromStatus:     fromStatus,
		ToStatus:       toStatus,
	}
}

func (ParcelStatusChanged) EventType() string { return "parcel.status_changed" }

// ParcelDelivered is emitted when a parcel reaches its recipient.
type ParcelDelivered struct {
	baseEvent
	ParcelID       kernel.UUID `json:"parcelId"`
	TrackingNumber string      `json:"trackingNumber"`
	DeliveredAt    time.Time   `json:"deliveredAt"`
	ReceivedBy     string      `json:"receivedBy"`
}

func NewParcelDelivered(agencyID, parcelID kernel.UUID, trackingNumber string, deliveredAt time.Time, receivedBy string) ParcelDelivered {
	return ParcelDelivered{
		baseEvent:      newBaseEvent(agencyID, deliveredAt),
		ParcelID:       parcelID,
		TrackingNumber: trackingNumber,
		DeliveredAt:    deliveredAt,
		ReceivedBy:     receivedBy,
	}
}

func (ParcelDelivered) EventType() string { return "parcel.delivered" }

// AgencySuspended is emitted when the platform suspends an agency.
type AgencySuspended struct {
	baseEvent
	Reason string `json:"reason"`
}

func NewAgencySuspended(agencyID kernel.UUID, reason string, occurredAt time.Time) AgencySuspended {
	return AgencySuspended{
		baseEvent: newBaseEvent(agencyID, occurredAt),
		Reason:    reason,
	}
}

func (AgencySuspended) EventType() string { return "agency.suspended" }

// AgencyUnsuspended is emitted when the platform lifts a suspension.
type AgencyUnsuspended struct {
	baseEvent
}

func NewAgencyUnsuspended(agencyID kernel.UUID, occurredAt time.Time) AgencyUnsuspended {
	return AgencyUnsuspended{
		baseEvent: newBaseEvent(agencyID, occurredAt),
	}
}

func (AgencyUnsuspended) EventType() string { return "agency.unsuspended" }
