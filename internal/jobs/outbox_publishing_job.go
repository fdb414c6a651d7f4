package jobs

import (
	"context"
	"log/slog"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OutboxPublishingJob drains the outbox on a fixed schedule. Messages that
// fail to publish stay unpublished and are retried on the next tick.
type OutboxPublishingJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxPublishingJob creates the outbox drain job. batchSize bounds
// how many messages one tick processes.
func NewOutboxPublishingJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	batchSize int,
	logger *slog.Logger,
) *OutboxPublishingJob {
	return &OutboxPublishingJob{
		outbox:    outbox,
		publisher: publisher,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_publishing_job"),
	}
}

// Start begins draining the outbox every second.
func (j *OutboxPublishingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.drain(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox drain failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox publishing job started (running every second)")
	return nil
}

// Stop stops the job.
func (j *OutboxPublishingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox publishing job stopped")
}

func (j *OutboxPublishingJob) drain(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, j.batchSize)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	for _, message := range messages {
		if err = j.publisher.Publish(ctx, message); err != nil {
			// Keep the delivered prefix; the failed message and its
			// successors are retried next tick.
			j.logger.ErrorContext(ctx, "Event publish failed",
				"event_id", message.ID.String(),
				"event_type", message.EventType,
				"error", err)
			break
		}
		published = append(published, message.ID)
	}

	if len(published) == 0 {
		return nil
	}

	return j.outbox.MarkPublished(ctx, published, time.Now())
}
