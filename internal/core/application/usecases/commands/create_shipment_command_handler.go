package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/domain/services/access"
	"logistics/internal/pkg/errs"
)

// CreateShipmentCommandHandler creates shipments through the employee path.
//
// The owning agency's CanCreateShipment gate runs before a shipment number
// is allocated, so a suspended or deactivated agency never consumes a
// sequence number.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewCreateShipmentCommandHandler creates a handler for the employee
// shipment creation path.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the creation command.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.ValidateCreate(cmd.Principal(), cmd.AgencyID()); err != nil {
		return err
	}
	if err := auth.CheckTenant(ctx, cmd.AgencyID(), "create shipment"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.AgencyRepository().Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}
	if !owner.CanCreateShipment() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("agency %s cannot create shipments", owner.ID()))
	}

	shipmentRepo := uow.ShipmentRepository()
	generator, err := services.NewShipmentNumberGenerator(shipmentRepo)
	if err != nil {
		return err
	}

	now := time.Now()
	number, err := generator.Generate(ctx, owner.ID(), now)
	if err != nil {
		return err
	}

	created, err := shipment.NewShipment(cmd.ShipmentID(), owner.ID(), number, cmd.Description(), now)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, created); err != nil {
		return err
	}

	event := events.NewShipmentCreated(owner.ID(), created.ID(), number, now)
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
