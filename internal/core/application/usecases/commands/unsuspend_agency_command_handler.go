package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/services/access"
)

// UnsuspendAgencyCommandHandler lifts agency suspensions. Platform
// administrators only.
type UnsuspendAgencyCommandHandler struct {
	uowFactory AgencyUoWFactory
	policy     access.AgencyPolicy
}

// NewUnsuspendAgencyCommandHandler creates a handler for lifting agency
// suspensions.
func NewUnsuspendAgencyCommandHandler(uowFactory AgencyUoWFactory) UnsuspendAgencyCommandHandler {
	return UnsuspendAgencyCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewAgencyPolicy(),
	}
}

// Handle processes the unsuspension command.
func (h *UnsuspendAgencyCommandHandler) Handle(ctx context.Context, cmd UnsuspendAgencyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.ValidateSuspend(cmd.Principal()); err != nil {
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
	unsuspended, err := agencyRepo.Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}

	if err = unsuspended.Unsuspend(); err != nil {
		return err
	}

	if err = agencyRepo.Update(ctx, unsuspended); err != nil {
		return err
	}

	if err = uow.RegisterEvent(events.NewAgencyUnsuspended(unsuspended.ID(), time.Now())); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
