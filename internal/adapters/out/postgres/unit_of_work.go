// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern together with the repository adapters under it.
//
// A unit of work spans one business transaction. Repositories obtained from
// it run against the transaction, and domain events registered during the
// transaction are written to the outbox table by Commit, atomically with
// the state changes they describe. Rollback discards staged events.
package postgres

import (
	"context"
	"encoding/json"

	"logistics/internal/adapters/out/postgres/agencyrepo"
	"logistics/internal/adapters/out/postgres/outboxrepo"
	"logistics/internal/adapters/out/postgres/parcelrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/events"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance; a unit
// of work must never be reused across requests.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and
// event staging area.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:           f.db,
		stagedEvents: make([]events.DomainEvent, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and stages domain
// events for the outbox. Events become visible to the publisher only after
// the transaction commits.
type GormUnitOfWork struct {
	db           *gorm.DB
	tx           *gorm.DB
	stagedEvents []events.DomainEvent
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit serializes the staged events into the outbox table and commits
// the transaction. If writing any outbox row fails the transaction is
// rolled back and nothing, state change or event, becomes visible.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	outbox := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, event := range uow.stagedEvents {
		payload, err := json.Marshal(event)
		if err != nil {
			uow.rollbackQuietly()
			return err
		}
		if err = outbox.Add(ctx, ports.NewOutboxMessage(event, payload)); err != nil {
			uow.rollbackQuietly()
			return err
		}
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.stagedEvents = uow.stagedEvents[:0]
	return err
}

// Rollback discards all changes and staged events of the current
// transaction. Safe to defer after a successful Commit; the gorm sentinel
// it returns in that case carries no weight.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.stagedEvents = uow.stagedEvents[:0]
	return err
}

// RegisterEvent stages a domain event for the outbox. Must be called
// between Begin and Commit.
func (uow *GormUnitOfWork) RegisterEvent(event events.DomainEvent) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	uow.stagedEvents = append(uow.stagedEvents, event)
	return nil
}

// AgencyRepository returns an agency repository bound to the current
// transaction, or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) AgencyRepository() ports.AgencyRepository {
	return agencyrepo.NewGormAgencyRepository(uow.conn())
}

// ShipmentRepository returns a shipment repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

// ParcelRepository returns a parcel repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.conn())
}

// UserRepository returns a user repository bound to the current
// transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) rollbackQuietly() {
	_ = uow.tx.Rollback()
	uow.tx = nil
	uow.stagedEvents = uow.stagedEvents[:0]
}
