package queries

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)
)

// TrackParcelQuery looks a parcel up by its tracking number.
//
// Tracking is the one public read: anyone holding a tracking number may
// resolve it, so the query carries no principal and the response exposes
// scan-level facts only. Internal identifiers stay out of it.
type TrackParcelQuery struct {
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given number.
func NewTrackParcelQuery(trackingNumber string) (TrackParcelQuery, error) {
	query := TrackParcelQuery{guard: guard.NewConstructorGuard()}

	if err := query.setTrackingNumber(trackingNumber); err != nil {
		return TrackParcelQuery{}, err
	}

	return query, nil
}

// TrackingNumber returns the number being tracked.
func (q TrackParcelQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackParcelQueryIsNotConstructed if validation fails.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

func (q *TrackParcelQuery) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	q.trackingNumber = trackingNumber
	return nil
}

// TrackParcelQueryResponse is the public tracking read model.
type TrackParcelQueryResponse struct {
	TrackingNumber  string
	Status          string
	CurrentLocation string
	LastScanAt      *time.Time
	DeliveredAt     *time.Time
	ReceivedBy      string
}
