// Package agencyrepo persists agency aggregates and their locations.
package agencyrepo

import (
	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgencyDTO represents the database structure for persisting agencies.
type AgencyDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"not null"`
	Email                string    `gorm:"not null"`
	Phone                string
	Address              string
	Active               bool `gorm:"not null;default:true"`
	Suspended            bool `gorm:"not null;default:false;index"`
	SuspensionReason     string
	MaxUsers             int `gorm:"not null"`
	MaxShipmentsPerMonth int `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "agencies".
func (AgencyDTO) TableName() string {
	return "agencies"
}

// LocationDTO represents the database structure for agency locations.
type LocationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	AgencyID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"not null"`
	Address           string    `gorm:"not null"`
	Active            bool      `gorm:"not null;default:true"`
	TemporarilyClosed bool      `gorm:"not null;default:false"`
}

// TableName overrides GORM's default naming to use "locations".
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *agency.Agency) AgencyDTO {
	return AgencyDTO{
		ID:                   aggregate.ID().Bytes(),
		Name:                 aggregate.Name(),
		Email:                aggregate.Email(),
		Phone:                aggregate.Phone(),
		Address:              aggregate.Address(),
		Active:               aggregate.IsActive(),
		Suspended:            aggregate.IsSuspended(),
		SuspensionReason:     aggregate.SuspensionReason(),
		MaxUsers:             aggregate.MaxUsers(),
		MaxShipmentsPerMonth: aggregate.MaxShipmentsPerMonth(),
	}
}

func toDomain(dto AgencyDTO) (*agency.Agency, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return agency.RestoreAgency(
		id,
		dto.Name, dto.Email, dto.Phone, dto.Address,
		dto.Active, dto.Suspended,
		dto.SuspensionReason,
		dto.MaxUsers, dto.MaxShipmentsPerMonth,
	)
}

func locationFromDomain(location *agency.AgencyLocation) LocationDTO {
	return LocationDTO{
		ID:                location.ID().Bytes(),
		AgencyID:          location.AgencyID().Bytes(),
		Name:              location.Name(),
		Address:           location.Address(),
		Active:            location.IsActive(),
		TemporarilyClosed: location.IsTemporarilyClosed(),
	}
}

func locationToDomain(dto LocationDTO) (*agency.AgencyLocation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return nil, err
	}

	return agency.RestoreAgencyLocation(id, agencyID, dto.Name, dto.Address, dto.Active, dto.TemporarilyClosed)
}
