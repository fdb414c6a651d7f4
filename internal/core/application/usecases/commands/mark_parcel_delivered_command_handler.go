package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// MarkParcelDeliveredCommandHandler completes deliveries. The aggregate
// requires the parcel to be exactly OutForDelivery.
type MarkParcelDeliveredCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     access.ParcelPolicy
}

// NewMarkParcelDeliveredCommandHandler creates a handler for delivery
// completion.
func NewMarkParcelDeliveredCommandHandler(uowFactory ParcelUoWFactory) MarkParcelDeliveredCommandHandler {
	return MarkParcelDeliveredCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewParcelPolicy(),
	}
}

// Handle processes the delivery command.
func (h *MarkParcelDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkParcelDeliveredCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	delivered, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), delivered); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, delivered.AgencyID(), "deliver parcel"); err != nil {
		return err
	}

	now := time.Now()
	if err = delivered.MarkDelivered(cmd.ReceivedBy(), cmd.LocationID(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, delivered); err != nil {
		return err
	}

	event := events.NewParcelDelivered(
		delivered.AgencyID(), delivered.ID(), delivered.TrackingNumber(),
		now, cmd.ReceivedBy())
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
