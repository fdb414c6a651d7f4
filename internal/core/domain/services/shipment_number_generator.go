package services

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// shipmentNumberMaxRetries bounds the sequential attempts before falling
// back to a random suffix.
const shipmentNumberMaxRetries = 10

// ShipmentNumberStore is the uniqueness oracle the generator consults.
// Implemented by the shipment repository.
type ShipmentNumberStore interface {
	// CountByNumberPrefix returns how many shipment numbers start with the
	// given prefix.
	CountByNumberPrefix(ctx context.Context, prefix string) (int64, error)

	// ExistsByNumber reports whether the exact number is already taken.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

// ShipmentNumberGenerator produces human-traceable shipment numbers in the
// form SHP-{YYYYMMDD}-{3-char agency prefix}-{6-digit sequence}. The agency
// prefix is the first three hex characters of the agency id, uppercased, so
// a number maps back to its tenant without a lookup.
//
// Sequences are scoped per agency per day and claimed optimistically:
// count existing numbers, propose count+1, verify uniqueness. Two writers
// racing for the same agency and day may collide, so collisions retry up to
// a fixed bound and then fall back to a random suffix. The fallback trades
// a gap in the sequence for guaranteed forward progress.
type ShipmentNumberGenerator struct {
	store ShipmentNumberStore
}

// NewShipmentNumberGenerator creates a generator backed by the given store.
func NewShipmentNumberGenerator(store ShipmentNumberStore) (ShipmentNumberGenerator, error) {
	if store == nil {
		return ShipmentNumberGenerator{}, errs.NewValueIsRequiredError("store")
	}
	return ShipmentNumberGenerator{store: store}, nil
}

// Generate returns a free shipment number for the agency on the given day.
func (g ShipmentNumberGenerator) Generate(ctx context.Context, agencyID kernel.UUID, date time.Time) (string, error) {
	if err := agencyID.Validate(); err != nil {
		return "", err
	}

	prefix := fmt.Sprintf("SHP-%s-%s-", date.Format("20060102"), agencyPrefix(agencyID))

	count, err := g.store.CountByNumberPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	sequence := count + 1
	for attempt := 0; attempt < shipmentNumberMaxRetries; attempt++ {
		candidate := fmt.Sprintf("%s%06d", prefix, sequence%1000000)

		taken, err := g.store.ExistsByNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		sequence++
	}

	random, err := randomSequence()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d", prefix, random), nil
}

// agencyPrefix derives the 3-character tenant marker from the agency id.
// The first three characters of a canonical UUID string are hex digits.
func agencyPrefix(agencyID kernel.UUID) string {
	return strings.ToUpper(agencyID.String()[:3])
}

func randomSequence() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("random sequence: %w", err)
	}
	return int64(binary.BigEndian.Uint64(buf[:]) % 1000000), nil
}
