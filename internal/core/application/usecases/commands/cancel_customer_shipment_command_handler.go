package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/services/access"
)

// CancelCustomerShipmentCommandHandler deletes a customer's own shipment
// while it is still pending validation. Any later status makes the
// cancellation a business rule violation.
type CancelCustomerShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	policy     access.ShipmentPolicy
}

// NewCancelCustomerShipmentCommandHandler creates a handler for customer
// cancellation.
func NewCancelCustomerShipmentCommandHandler(uowFactory ShipmentUoWFactory) CancelCustomerShipmentCommandHandler {
	return CancelCustomerShipmentCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewShipmentPolicy(),
	}
}

// Handle processes the cancellation command.
func (h *CancelCustomerShipmentCommandHandler) Handle(ctx context.Context, cmd CancelCustomerShipmentCommand) error {
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
	cancelled, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateCustomerChange(cmd.Principal(), cancelled); err != nil {
		return err
	}
	if err = cancelled.ValidateCustomerChange(); err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, cancelled.ID()); err != nil {
		return err
	}

	event := events.NewShipmentCancelled(cancelled.AgencyID(), cancelled.ID(), cmd.Principal().UserID(), time.Now())
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
