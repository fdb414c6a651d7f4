package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// RejectShipmentCommandHandler rejects customer-created shipments.
type RejectShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewRejectShipmentCommandHandler creates a handler for shipment rejection.
func NewRejectShipmentCommandHandler(uowFactory ShipmentUoWFactory) RejectShipmentCommandHandler {
	return RejectShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the rejection command.
func (h *RejectShipmentCommandHandler) Handle(ctx context.Context, cmd RejectShipmentCommand) error {
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
	rejected, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), rejected); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, rejected.AgencyID(), "reject shipment"); err != nil {
		return err
	}

	if err = rejected.MarkRejected(cmd.Reason()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, rejected); err != nil {
		return err
	}

	event := events.NewShipmentRejected(rejected.AgencyID(), rejected.ID(), cmd.Reason(), time.Now())
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
