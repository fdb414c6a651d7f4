package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetShipmentQueryIsNotConstructed = errors.New(
		"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
	)
)

// GetShipmentQuery retrieves a single shipment by identifier.
//
// Access follows the shipment read policy: platform administrators and
// employees of the owning agency may read any shipment, customers only the
// shipments they originated.
type GetShipmentQuery struct {
	principal  auth.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query to retrieve one shipment.
func NewGetShipmentQuery(principal auth.Principal, shipmentID kernel.UUID) (GetShipmentQuery, error) {
	query := GetShipmentQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setPrincipal(principal),
		query.setShipmentID(shipmentID),
	); err != nil {
		return GetShipmentQuery{}, err
	}

	return query, nil
}

// Principal returns the caller on whose behalf the query runs.
func (q GetShipmentQuery) Principal() auth.Principal {
	return q.principal
}

// ShipmentID returns the identifier of the shipment to retrieve.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentQueryIsNotConstructed if validation fails.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q *GetShipmentQuery) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	q.principal = principal
	return nil
}

func (q *GetShipmentQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	q.shipmentID = shipmentID
	return nil
}

// GetShipmentQueryResponse is the shipment read model.
type GetShipmentQueryResponse struct {
	ID              kernel.UUID
	AgencyID        kernel.UUID
	ShipmentNumber  string
	Status          string
	Description     string
	CustomerID      *kernel.UUID
	RejectionReason string
	ParcelCount     int64
	CreatedAt       time.Time
}
