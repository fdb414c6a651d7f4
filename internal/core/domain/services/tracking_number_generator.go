package services

import (
	"fmt"
	"time"
)

// TrackingNumberGenerator produces parcel tracking numbers from a timestamp
// and a random component. Parcels are not sequenced per agency and day the
// way shipments are, so the numbers are deliberately non-sequential.
//
// The generator does not verify or retry: uniqueness is enforced by the
// tracking number's unique constraint at save time, and callers regenerate
// on a duplicate-key error.
type TrackingNumberGenerator struct{}

// NewTrackingNumberGenerator creates a new TrackingNumberGenerator instance.
func NewTrackingNumberGenerator() TrackingNumberGenerator {
	return TrackingNumberGenerator{}
}

// Generate returns a tracking number of the form TRK-{unix millis}-{6
// random digits}.
func (TrackingNumberGenerator) Generate(now time.Time) (string, error) {
	random, err := randomSequence()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TRK-%d-%06d", now.UnixMilli(), random), nil
}
