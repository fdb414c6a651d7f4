// Package outboxrepo persists serialized domain events awaiting
// publication. Rows are written in the same transaction as the state
// change they describe.
package outboxrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO represents the database structure for outbox rows.
type OutboxMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string    `gorm:"not null"`
	AgencyID    uuid.UUID `gorm:"type:uuid;not null"`
	Payload     []byte    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"not null;index"`
	PublishedAt *time.Time
}

// TableName overrides GORM's default naming to use "outbox_messages".
func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromPort(message ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          message.ID.Bytes(),
		EventType:   message.EventType,
		AgencyID:    message.AgencyID.Bytes(),
		Payload:     message.Payload,
		OccurredAt:  message.OccurredAt,
		PublishedAt: message.PublishedAt,
	}
}

func toPort(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	agencyID, err := kernel.UUIDFromBytes(dto.AgencyID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AgencyID:    agencyID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
		PublishedAt: dto.PublishedAt,
	}, nil
}
