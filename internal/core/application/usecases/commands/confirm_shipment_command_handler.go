package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// ConfirmShipmentCommandHandler confirms open shipments. After this the
// shipment accepts no further parcels.
type ConfirmShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewConfirmShipmentCommandHandler creates a handler for shipment
// confirmation.
func NewConfirmShipmentCommandHandler(uowFactory ShipmentUoWFactory) ConfirmShipmentCommandHandler {
	return ConfirmShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the confirmation command.
func (h *ConfirmShipmentCommandHandler) Handle(ctx context.Context, cmd ConfirmShipmentCommand) error {
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
	confirmed, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), confirmed); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, confirmed.AgencyID(), "confirm shipment"); err != nil {
		return err
	}

	if err = confirmed.Confirm(); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, confirmed); err != nil {
		return err
	}

	event := events.NewShipmentConfirmed(confirmed.AgencyID(), confirmed.ID(), confirmed.ShipmentNumber(), time.Now())
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
