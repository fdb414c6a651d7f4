package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. It doubles as the uniqueness oracle behind the shipment
// number generator.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Delete removes a shipment. Used only by the customer cancellation
	// path while the shipment is still pending validation.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a shipment by its unique identifier.
	// Returns ObjectNotFoundError when no such shipment exists.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByAgency retrieves all shipments owned by the agency.
	GetByAgency(ctx context.Context, agencyID kernel.UUID) ([]*shipment.Shipment, error)

	// CountByNumberPrefix returns how many shipment numbers start with the
	// given prefix. Consulted by the number generator for the per-agency,
	// per-day sequence.
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)

	// ExistsByNumber reports whether the exact shipment number is taken.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
