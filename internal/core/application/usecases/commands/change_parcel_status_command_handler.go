package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// ChangeParcelStatusCommandHandler records scan transitions against the
// parcel's strict transition table.
type ChangeParcelStatusCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     access.ParcelPolicy
}

// NewChangeParcelStatusCommandHandler creates a handler for scan
// transitions.
func NewChangeParcelStatusCommandHandler(uowFactory ParcelUoWFactory) ChangeParcelStatusCommandHandler {
	return ChangeParcelStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewParcelPolicy(),
	}
}

// Handle processes the scan command.
func (h *ChangeParcelStatusCommandHandler) Handle(ctx context.Context, cmd ChangeParcelStatusCommand) error {
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
	scanned, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateUpdateStatus(cmd.Principal(), scanned); err != nil {
		return err
	}
	if err = auth.CheckTenant(ctx, scanned.AgencyID(), "update parcel status"); err != nil {
		return err
	}

	fromStatus := scanned.Status()
	now := time.Now()
	if err = scanned.ChangeStatus(cmd.ToStatus(), cmd.LocationID(), now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, scanned); err != nil {
		return err
	}

	event := events.NewParcelStatusChanged(
		scanned.AgencyID(), scanned.ID(), scanned.TrackingNumber(),
		fromStatus.String(), scanned.Status().String(), now)
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
