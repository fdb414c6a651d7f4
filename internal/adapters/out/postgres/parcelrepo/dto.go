// Package parcelrepo persists parcel aggregates. The tracking number's
// unique constraint is the collision detector behind parcel registration.
package parcelrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcels.
type ParcelDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID          uuid.UUID `gorm:"type:uuid;not null;index"`
	ShipmentID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingNumber    string    `gorm:"not null;uniqueIndex"`
	Description       string
	Status            string     `gorm:"not null;index"`
	CurrentLocationID *uuid.UUID `gorm:"type:uuid"`
	LastScanAt        *time.Time
	DeliveredAt       *time.Time
	ReceivedBy        string
	Notes             string
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var currentLocationID *uuid.UUID
	if id := aggregate.CurrentLocationID(); id != nil {
		raw := id.Bytes()
		currentLocationID = &raw
	}

	return ParcelDTO{
		ID:                aggregate.ID().Bytes(),
		AgencyID:          aggregate.AgencyID().Bytes(),
		ShipmentID:        aggregate.ShipmentID().Bytes(),
		TrackingNumber:    aggregate.TrackingNumber(),
		Description:       aggregate.Description(),
		Status:            aggregate.Status().String(),
		CurrentLocationID: currentLocationID,
		LastScanAt:        aggregate.LastScanAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		ReceivedBy:        aggregate.ReceivedBy(),
		Notes:             aggregate.Notes(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}
	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}
	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentLocationID *kernel.UUID
	if dto.CurrentLocationID != nil {
		locationID, locErr := kernel.UUIDFromBytes((*dto.CurrentLocationID)[:])
		if locErr != nil {
			return nil, locErr
		}
		currentLocationID = &locationID
	}

	return parcel.RestoreParcel(
		id, agencyID, shipmentID,
		dto.TrackingNumber, dto.Description,
		status,
		currentLocationID,
		dto.LastScanAt, dto.DeliveredAt,
		dto.ReceivedBy, dto.Notes,
	)
}
