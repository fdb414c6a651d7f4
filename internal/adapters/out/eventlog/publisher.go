// Package eventlog is the default event publisher: it emits committed
// outbox messages to the structured log. Deployments with a broker swap
// in their own ports.EventPublisher implementation at the composition
// root.
package eventlog

import (
	"context"
	"log/slog"

	"logistics/internal/core/ports"
)

// Publisher writes outbox messages to the structured log.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a log-backed event publisher.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_publisher")}
}

// Publish emits the message. Never fails; the log sink is assumed
// available.
func (p *Publisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	p.logger.InfoContext(ctx, "Domain event published",
		"event_id", message.ID.String(),
		"event_type", message.EventType,
		"agency_id", message.AgencyID.String(),
		"occurred_at", message.OccurredAt,
		"payload", string(message.Payload),
	)
	return nil
}
