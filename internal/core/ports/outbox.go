package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event awaiting publication. Rows are
// written in the same transaction as the state change they describe, so an
// event can never be observed before its fact is durable.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AgencyID    kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
	PublishedAt *time.Time
}

// OutboxRepository defines the persistence contract for the outbox table.
type OutboxRepository interface {
	// Add stages a message within the current transaction.
	Add(ctx context.Context, message OutboxMessage) error

	// GetUnpublished retrieves up to limit unpublished messages in
	// occurrence order.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers committed outbox messages to the outside world.
// Implementations must tolerate redelivery; consumers deduplicate on the
// event id.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}

// NewOutboxMessage serializes a domain event into an outbox row. The
// payload bytes are produced by the caller so the ports package stays free
// of encoding concerns beyond the contract itself.
func NewOutboxMessage(event events.DomainEvent, payload []byte) OutboxMessage {
	return OutboxMessage{
		ID:         event.EventID(),
		EventType:  event.EventType(),
		AgencyID:   event.AgencyID(),
		Payload:    payload,
		OccurredAt: event.OccurredAt(),
	}
}
