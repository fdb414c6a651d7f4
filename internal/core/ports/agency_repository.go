// Package ports defines the contracts between the core and its
// infrastructure collaborators: repositories, the unit of work, and event
// publishing. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/kernel"
)

// AgencyRepository defines the persistence contract for agency aggregates.
type AgencyRepository interface {
	// Add persists a new agency aggregate to storage.
	Add(ctx context.Context, aggregate *agency.Agency) error

	// Update persists changes to an existing agency aggregate.
	Update(ctx context.Context, aggregate *agency.Agency) error

	// Get retrieves an agency by its unique identifier.
	// Returns ObjectNotFoundError when no such agency exists.
	Get(ctx context.Context, id kernel.UUID) (*agency.Agency, error)

	// GetAll retrieves every registered agency. Platform-facing only.
	GetAll(ctx context.Context) ([]*agency.Agency, error)

	// AddLocation persists a new location of an agency.
	AddLocation(ctx context.Context, location *agency.AgencyLocation) error

	// UpdateLocation persists changes to an existing location.
	UpdateLocation(ctx context.Context, location *agency.AgencyLocation) error

	// GetLocation retrieves a location by its unique identifier.
	GetLocation(ctx context.Context, id kernel.UUID) (*agency.AgencyLocation, error)

	// GetLocations retrieves all locations of an agency.
	GetLocations(ctx context.Context, agencyID kernel.UUID) ([]*agency.AgencyLocation, error)
}
