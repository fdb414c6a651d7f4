package commands

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/domain/services/access"
	"logistics/internal/pkg/errs"
)

// CreateCustomerShipmentCommandHandler creates shipments through the
// customer path. The pickup location must belong to the chosen agency and
// be operational.
type CreateCustomerShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewCreateCustomerShipmentCommandHandler creates a handler for the
// customer shipment creation path.
func NewCreateCustomerShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateCustomerShipmentCommandHandler {
	return CreateCustomerShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the customer creation command.
func (h *CreateCustomerShipmentCommandHandler) Handle(ctx context.Context, cmd CreateCustomerShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.ValidateCreateAsCustomer(cmd.Principal()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agencyRepo := uow.AgencyRepository()
	owner, err := agencyRepo.Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}
	if !owner.CanCreateShipment() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("agency %s cannot accept shipments", owner.ID()))
	}

	pickup, err := agencyRepo.GetLocation(ctx, cmd.PickupLocationID())
	if err != nil {
		return err
	}
	if !pickup.AgencyID().IsEqual(owner.ID()) {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("location %s does not belong to agency %s", pickup.ID(), owner.ID()))
	}
	if !pickup.IsOperational() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("location %s is not operational", pickup.ID()))
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

	created, err := shipment.NewCustomerShipment(
		cmd.ShipmentID(), owner.ID(),
		number, cmd.Description(),
		cmd.Principal().UserID(), pickup.ID(),
		now,
	)
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
