package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	outboxPublishingJob *OutboxPublishingJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	outboxBatchSize int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxPublishingJob: NewOutboxPublishingJob(outbox, publisher, outboxBatchSize, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxPublishingJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox publishing job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxPublishingJob.Stop()
}
