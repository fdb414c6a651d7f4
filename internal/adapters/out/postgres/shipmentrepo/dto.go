// Package shipmentrepo persists shipment aggregates. The shipments table
// also backs the number generator's prefix counting.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
// The shipment number carries a unique constraint; the generator's
// existence probe relies on it.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID         uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipmentNumber   string    `gorm:"not null;uniqueIndex"`
	Description      string
	Status           string     `gorm:"not null;index"`
	CustomerID       *uuid.UUID `gorm:"type:uuid;index"`
	PickupLocationID *uuid.UUID `gorm:"type:uuid"`
	ValidatedByID    *uuid.UUID `gorm:"type:uuid"`
	ValidatedAt      *time.Time
	RejectionReason  string
	CreatedAt        time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		AgencyID:         aggregate.AgencyID().Bytes(),
		ShipmentNumber:   aggregate.ShipmentNumber(),
		Description:      aggregate.Description(),
		Status:           aggregate.Status().String(),
		CustomerID:       optionalBytes(aggregate.CustomerID()),
		PickupLocationID: optionalBytes(aggregate.PickupLocationID()),
		ValidatedByID:    optionalBytes(aggregate.ValidatedByID()),
		ValidatedAt:      aggregate.ValidatedAt(),
		RejectionReason:  aggregate.RejectionReason(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customerID, err := optionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	pickupLocationID, err := optionalUUID(dto.PickupLocationID)
	if err != nil {
		return nil, err
	}
	validatedByID, err := optionalUUID(dto.ValidatedByID)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, agencyID,
		dto.ShipmentNumber, dto.Description,
		status,
		customerID, pickupLocationID, validatedByID,
		dto.ValidatedAt,
		dto.RejectionReason,
		dto.CreatedAt,
	)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
