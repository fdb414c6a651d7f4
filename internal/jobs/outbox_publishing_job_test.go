package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxRepository struct {
	mock.Mock
}

func (m *MockOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	args := m.Called(ctx, ids, publishedAt)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func unpublishedMessage(eventType string) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:         kernel.NewUUID(),
		EventType:  eventType,
		AgencyID:   kernel.NewUUID(),
		Payload:    []byte(`{}`),
		OccurredAt: time.Now(),
	}
}

func Test_Drain_PublishesBatchAndStampsEveryMessage(t *testing.T) {
	first := unpublishedMessage("shipment.created")
	second := unpublishedMessage("shipment.confirmed")

	outbox := &MockOutboxRepository{}
	outbox.On("GetUnpublished", mock.Anything, 100).Return([]ports.OutboxMessage{first, second}, nil)
	outbox.On("MarkPublished", mock.Anything, []kernel.UUID{first.ID, second.ID}, mock.Anything).Return(nil)

	publisher := &MockEventPublisher{}
	publisher.On("Publish", mock.Anything, first).Return(nil)
	publisher.On("Publish", mock.Anything, second).Return(nil)

	job := NewOutboxPublishingJob(outbox, publisher, 100, discardLogger())

	err := job.drain(context.Background())

	require.NoError(t, err)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func Test_Drain_StopsAtFirstFailureAndStampsOnlyDeliveredPrefix(t *testing.T) {
	first := unpublishedMessage("parcel.registered")
	second := unpublishedMessage("parcel.status_changed")
	third := unpublishedMessage("parcel.delivered")

	outbox := &MockOutboxRepository{}
	outbox.On("GetUnpublished", mock.Anything, 100).Return([]ports.OutboxMessage{first, second, third}, nil)
	outbox.On("MarkPublished", mock.Anything, []kernel.UUID{first.ID}, mock.Anything).Return(nil)

	publisher := &MockEventPublisher{}
	publisher.On("Publish", mock.Anything, first).Return(nil)
	publisher.On("Publish", mock.Anything, second).Return(errors.New("sink unavailable"))

	job := NewOutboxPublishingJob(outbox, publisher, 100, discardLogger())

	err := job.drain(context.Background())

	require.NoError(t, err)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, third)
}

func Test_Drain_FirstMessageFails_NothingIsStamped(t *testing.T) {
	first := unpublishedMessage("agency.suspended")

	outbox := &MockOutboxRepository{}
	outbox.On("GetUnpublished", mock.Anything, 100).Return([]ports.OutboxMessage{first}, nil)

	publisher := &MockEventPublisher{}
	publisher.On("Publish", mock.Anything, first).Return(errors.New("sink unavailable"))

	job := NewOutboxPublishingJob(outbox, publisher, 100, discardLogger())

	err := job.drain(context.Background())

	require.NoError(t, err)
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Drain_EmptyOutbox_DoesNothing(t *testing.T) {
	outbox := &MockOutboxRepository{}
	outbox.On("GetUnpublished", mock.Anything, 100).Return([]ports.OutboxMessage{}, nil)

	publisher := &MockEventPublisher{}

	job := NewOutboxPublishingJob(outbox, publisher, 100, discardLogger())

	err := job.drain(context.Background())

	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	outbox.AssertNotCalled(t, "MarkPublished", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Drain_ReadFailure_IsReturned(t *testing.T) {
	outbox := &MockOutboxRepository{}
	outbox.On("GetUnpublished", mock.Anything, 100).Return([]ports.OutboxMessage(nil), errors.New("connection refused"))

	publisher := &MockEventPublisher{}

	job := NewOutboxPublishingJob(outbox, publisher, 100, discardLogger())

	err := job.drain(context.Background())

	assert.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
