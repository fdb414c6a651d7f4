package ports

import (
	"context"

	"logistics/internal/core/domain/events"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request or
// command. This ensures proper isolation between concurrent operations; a
// unit of work, like the principal resolved alongside it, must never be
// reused across requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control, transaction-bound repositories, and event staging.
// Client code must explicitly manage the transaction lifecycle.
//
// Events registered during the transaction are written to the outbox on
// Commit, atomically with the state changes. Rollback discards them.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes staged events to the outbox and commits the current
	// transaction. Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction, discarding staged
	// events. Safe to defer after a successful Commit.
	Rollback(ctx context.Context) error

	// RegisterEvent stages a domain event for the outbox. Must be called
	// between Begin and Commit.
	RegisterEvent(event events.DomainEvent) error

	// AgencyRepository returns an AgencyRepository bound to the current
	// transaction.
	AgencyRepository() AgencyRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction.
	ShipmentRepository() ShipmentRepository

	// ParcelRepository returns a ParcelRepository bound to the current
	// transaction.
	ParcelRepository() ParcelRepository

	// UserRepository returns a UserRepository bound to the current
	// transaction.
	UserRepository() UserRepository
}
