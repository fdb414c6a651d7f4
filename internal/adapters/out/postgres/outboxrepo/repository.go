package outboxrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stages a message. Callers run this inside the business transaction.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	dto := fromPort(message)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished retrieves up to limit unpublished messages in occurrence
// order.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []OutboxMessageDTO
	err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		message, portErr := toPort(dto)
		if portErr != nil {
			return nil, portErr
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// MarkPublished stamps the messages as delivered.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).Model(&OutboxMessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", publishedAt).Error
}
