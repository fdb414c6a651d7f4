package queries

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var (
	ErrGetAgencyShipmentsQueryIsNotConstructed = errors.New(
		"GetAgencyShipmentsQuery must be created via NewGetAgencyShipmentsQuery constructor",
	)
)

// GetAgencyShipmentsQuery lists the shipments of one agency, optionally
// narrowed to a single status. The listing is tenant scoped: any employee
// of the agency or a platform administrator may run it, customers may not.
type GetAgencyShipmentsQuery struct {
	principal auth.Principal
	agencyID  kernel.UUID
	status    *shipment.Status

	guard guard.ConstructorGuard
}

// NewGetAgencyShipmentsQuery creates a listing query. status may be nil to
// list shipments in every status.
func NewGetAgencyShipmentsQuery(
	principal auth.Principal,
	agencyID kernel.UUID,
	status *shipment.Status,
) (GetAgencyShipmentsQuery, error) {
	query := GetAgencyShipmentsQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setPrincipal(principal),
		query.setAgencyID(agencyID),
		query.setStatus(status),
	); err != nil {
		return GetAgencyShipmentsQuery{}, err
	}

	return query, nil
}

// Principal returns the caller on whose behalf the query runs.
func (q GetAgencyShipmentsQuery) Principal() auth.Principal {
	return q.principal
}

// AgencyID returns the agency whose shipments are listed.
func (q GetAgencyShipmentsQuery) AgencyID() kernel.UUID {
	return q.agencyID
}

// Status returns the optional status filter, nil when unfiltered.
func (q GetAgencyShipmentsQuery) Status() *shipment.Status {
	return q.status
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgencyShipmentsQueryIsNotConstructed if validation fails.
func (q GetAgencyShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgencyShipmentsQueryIsNotConstructed)
}

func (q *GetAgencyShipmentsQuery) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	q.principal = principal
	return nil
}

func (q *GetAgencyShipmentsQuery) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	q.agencyID = agencyID
	return nil
}

func (q *GetAgencyShipmentsQuery) setStatus(status *shipment.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

// GetAgencyShipmentsQueryResponse is one row of the agency listing.
type GetAgencyShipmentsQueryResponse struct {
	ID             kernel.UUID
	ShipmentNumber string
	Status         string
	Description    string
	CustomerID     *kernel.UUID
	ParcelCount    int64
}
