// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. Every handler follows the same shape: command validation,
// policy gate, state-machine gate, mutation, event staging, commit.
package commands

import (
	"context"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, narrowed to the repositories each handler actually needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRegistrar stages domain events for the outbox. Events become
	// visible only after the owning transaction commits.
	EventRegistrar interface {
		RegisterEvent(event events.DomainEvent) error
	}

	// AgencyRepoFactory provides access to the agency repository within a
	// transaction.
	AgencyRepoFactory interface {
		AgencyRepository() ports.AgencyRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within
	// a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a
	// transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// UserRepoFactory provides access to the user repository within a
	// transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// AgencyUoW manages transactions for agency-only operations.
	AgencyUoW interface {
		TxManager
		EventRegistrar
		AgencyRepoFactory
	}

	// AgencyUoWFactory creates new agency unit of work instances.
	AgencyUoWFactory interface {
		Create() AgencyUoW
	}

	// ShipmentUoW manages transactions for shipment operations. Shipment
	// creation consults the owning agency, so the agency repository is part
	// of the contract.
	ShipmentUoW interface {
		TxManager
		EventRegistrar
		AgencyRepoFactory
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// ParcelUoW manages transactions for parcel operations. Parcel
	// registration checks the owning shipment's attachment window.
	ParcelUoW interface {
		TxManager
		EventRegistrar
		ShipmentRepoFactory
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UserUoW manages transactions for user administration.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
