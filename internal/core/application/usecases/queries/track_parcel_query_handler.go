package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler resolves a tracking number to its current scan
// state. No access check runs here; the tracking number itself is the
// capability.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError for an unknown
// tracking number. The current location resolves to the location's name so
// the response carries no internal identifiers.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.tracking_number,
			p.status,
			COALESCE(l.name, '') AS current_location,
			p.last_scan_at,
			p.delivered_at,
			p.received_by
		FROM parcels p
		LEFT JOIN locations l ON l.id = p.current_location_id
		WHERE p.tracking_number = ?
	`, query.TrackingNumber()).Row()

	var resp TrackParcelQueryResponse
	var lastScanAt, deliveredAt sql.NullTime
	var receivedBy sql.NullString

	err := row.Scan(
		&resp.TrackingNumber,
		&resp.Status,
		&resp.CurrentLocation,
		&lastScanAt,
		&deliveredAt,
		&receivedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError("trackingNumber", query.TrackingNumber())
	}
	if err != nil {
		return TrackParcelQueryResponse{}, err
	}

	resp.LastScanAt = optionalTime(lastScanAt)
	resp.DeliveredAt = optionalTime(deliveredAt)
	resp.ReceivedBy = receivedBy.String

	return resp, nil
}
