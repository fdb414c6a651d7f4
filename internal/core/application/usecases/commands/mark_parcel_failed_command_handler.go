package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// MarkParcelFailedCommandHandler records failed delivery attempts. The
// reason accumulates in the parcel's notes.
type MarkParcelFailedCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     access.ParcelPolicy
}

// NewMarkParcelFailedCommandHandler creates a handler for failed delivery
// attempts.
func NewMarkParcelFailedCommandHandler(uowFactory ParcelUoWFactory) MarkParcelFailedCommandHandler {
	return MarkParcelFailedCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewParcelPolicy(),
	}
}

// Handle processes the failure command.
func (h *MarkParcelFailedCommandHandler) Handle(ctx context.Context, cmd MarkParcelFailedCommand) error {
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
	failed, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), failed); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, failed.AgencyID(), "fail parcel"); err != nil {
		return err
	}

	fromStatus := failed.Status()
	now := time.Now()
	if err = failed.MarkFailed(cmd.Reason(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, failed); err != nil {
		return err
	}

	event := events.NewParcelStatusChanged(
		failed.AgencyID(), failed.ID(), failed.TrackingNumber(),
		fromStatus.String(), failed.Status().String(), now)
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
