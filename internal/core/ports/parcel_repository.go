package ports

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
)

// ErrDuplicateTrackingNumber is returned by ParcelRepository.Add when the
// tracking number's unique constraint fires. Callers regenerate the number
// and retry.
var ErrDuplicateTrackingNumber = errors.New("tracking number already exists")

// ParcelRepository defines the persistence contract for parcel aggregates.
//
// Add must surface a duplicate tracking number as a retryable error: the
// generator does not pre-verify uniqueness, callers regenerate and retry.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel by its unique identifier.
	// Returns ObjectNotFoundError when no such parcel exists.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its tracking number.
	// Backs the customer-facing tracking lookup.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)

	// GetByShipment retrieves all parcels attached to a shipment.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) ([]*parcel.Parcel, error)
}
