package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// ValidateShipmentCommandHandler approves customer-created shipments,
// recording who validated and when.
type ValidateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewValidateShipmentCommandHandler creates a handler for shipment
// approval.
func NewValidateShipmentCommandHandler(uowFactory ShipmentUoWFactory) ValidateShipmentCommandHandler {
	return ValidateShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the approval command.
func (h *ValidateShipmentCommandHandler) Handle(ctx context.Context, cmd ValidateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	validated, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), validated); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, validated.AgencyID(), "validate shipment"); err != nil {
		return err
	}

	now := time.Now()
	if err = validated.MarkValidated(cmd.Principal().UserID(), now); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, validated); err != nil {
		return err
	}

	event := events.NewShipmentValidated(validated.AgencyID(), validated.ID(), cmd.Principal().UserID(), now)
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
