package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services/access"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgencyShipmentsQueryHandler lists an agency's shipments from the
// database. The tenant check runs before any row is read.
type GetAgencyShipmentsQueryHandler struct {
	db     *gorm.DB
	policy access.AgencyPolicy
}

// NewGetAgencyShipmentsQueryHandler creates a handler for agency shipment
// listings. Requires a GORM database connection for query execution.
func NewGetAgencyShipmentsQueryHandler(db *gorm.DB) GetAgencyShipmentsQueryHandler {
	return GetAgencyShipmentsQueryHandler{db: db, policy: access.NewAgencyPolicy()}
}

// Handle executes the listing. Results are sorted newest first. An agency
// without shipments yields an empty slice, not an error.
func (h GetAgencyShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAgencyShipmentsQuery,
) ([]GetAgencyShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.ValidateAccess(query.Principal(), query.AgencyID()); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			s.id,
			s.shipment_number,
			s.status,
			s.description,
			s.customer_id,
			(SELECT COUNT(*) FROM parcels p WHERE p.shipment_id = s.id) AS parcel_count
		FROM shipments s
		WHERE s.agency_id = ?
	`
	args := []any{query.AgencyID().Bytes()}
	if query.Status() != nil {
		sqlQuery += " AND s.status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += " ORDER BY s.created_at DESC, s.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetAgencyShipmentsQueryResponse, 0)

	for rows.Next() {
		var resp GetAgencyShipmentsQueryResponse
		var id uuid.UUID
		var customerID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.ShipmentNumber,
			&resp.Status,
			&resp.Description,
			&customerID,
			&resp.ParcelCount,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID
		resp.CustomerID = optionalUUID(customerID)
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
