package agencyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgencyRepository implements AgencyRepository using GORM.
type GormAgencyRepository struct {
	db *gorm.DB
}

// NewGormAgencyRepository creates a new GORM agency repository.
func NewGormAgencyRepository(db *gorm.DB) *GormAgencyRepository {
	return &GormAgencyRepository{db: db}
}

// Add saves a new agency to the database.
func (r *GormAgencyRepository) Add(ctx context.Context, aggregate *agency.Agency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing agency to the database.
func (r *GormAgencyRepository) Update(ctx context.Context, aggregate *agency.Agency) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgencyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("agency", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an agency by ID.
func (r *GormAgencyRepository) Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgencyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agency", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered agency, sorted by name.
func (r *GormAgencyRepository) GetAll(ctx context.Context) ([]*agency.Agency, error) {
	var dtos []AgencyDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agencies := make([]*agency.Agency, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agencies = append(agencies, a)
	}

	return agencies, nil
}

// AddLocation saves a new agency location to the database.
func (r *GormAgencyRepository) AddLocation(ctx context.Context, location *agency.AgencyLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(location)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateLocation saves an existing agency location to the database.
func (r *GormAgencyRepository) UpdateLocation(ctx context.Context, location *agency.AgencyLocation) error {
	if err := location.Validate(); err != nil {
		return err
	}

	dto := locationFromDomain(location)
	result := r.db.WithContext(ctx).Model(&LocationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("location", location.ID().String())
	}

	return nil
}

// GetLocation retrieves an agency location by ID.
func (r *GormAgencyRepository) GetLocation(ctx context.Context, id kernel.UUID) (*agency.AgencyLocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("location", id.String())
		}
		return nil, err
	}

	return locationToDomain(dto)
}

// GetLocations retrieves all locations of an agency, sorted by name.
func (r *GormAgencyRepository) GetLocations(ctx context.Context, agencyID kernel.UUID) ([]*agency.AgencyLocation, error) {
	if err := agencyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "agency_id = ?", agencyID.Bytes()).Error; err != nil {
		return nil, err
	}

	locations := make([]*agency.AgencyLocation, 0, len(dtos))
	for _, dto := range dtos {
		l, err := locationToDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}
