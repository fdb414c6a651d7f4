package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services/access"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler reads one shipment directly from the database.
// The row is restored into the aggregate only to run the read policy; the
// response itself is a flat read model.
type GetShipmentQueryHandler struct {
	db     *gorm.DB
	policy access.ShipmentPolicy
}

// NewGetShipmentQueryHandler creates a handler for single shipment reads.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db, policy: access.NewShipmentPolicy()}
}

// Handle executes the query. Returns ObjectNotFoundError when no shipment
// with the given identifier exists, and the policy's violation error when
// the caller may not read it.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.agency_id,
			s.shipment_number,
			s.description,
			s.status,
			s.customer_id,
			s.pickup_location_id,
			s.validated_by_id,
			s.validated_at,
			s.rejection_reason,
			s.created_at,
			(SELECT COUNT(*) FROM parcels p WHERE p.shipment_id = s.id) AS parcel_count
		FROM shipments s
		WHERE s.id = ?
	`, query.ShipmentID().Bytes()).Row()

	var (
		id, agencyID                              uuid.UUID
		shipmentNumber, description, statusString string
		customerID, pickupLocationID              uuid.NullUUID
		validatedByID                             uuid.NullUUID
		validatedAt                               sql.NullTime
		rejectionReason                           sql.NullString
		createdAt                                 time.Time
		parcelCount                               int64
	)

	err := row.Scan(
		&id,
		&agencyID,
		&shipmentNumber,
		&description,
		&statusString,
		&customerID,
		&pickupLocationID,
		&validatedByID,
		&validatedAt,
		&rejectionReason,
		&createdAt,
		&parcelCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipmentID", query.ShipmentID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	ownerAgencyID, err := kernel.UUIDFromBytes(agencyID[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	status, err := shipment.StatusFromString(statusString)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	restored, err := shipment.RestoreShipment(
		shipmentID, ownerAgencyID,
		shipmentNumber, description,
		status,
		optionalUUID(customerID), optionalUUID(pickupLocationID), optionalUUID(validatedByID),
		optionalTime(validatedAt),
		rejectionReason.String,
		createdAt,
	)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	if query.Principal().IsCustomer() {
		err = h.policy.ValidateCustomerAccess(query.Principal(), restored)
	} else {
		err = h.policy.ValidateAccess(query.Principal(), restored)
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		ID:              restored.ID(),
		AgencyID:        restored.AgencyID(),
		ShipmentNumber:  restored.ShipmentNumber(),
		Status:          restored.Status().String(),
		Description:     restored.Description(),
		CustomerID:      restored.CustomerID(),
		RejectionReason: restored.RejectionReason(),
		ParcelCount:     parcelCount,
		CreatedAt:       restored.CreatedAt(),
	}, nil
}

func optionalUUID(v uuid.NullUUID) *kernel.UUID {
	if !v.Valid {
		return nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil
	}
	return &id
}

func optionalTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
