package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/events"
	"logistics/internal/core/domain/services/access"
)

// SuspendAgencyCommandHandler suspends agencies. Platform administrators
// only; an agency cannot suspend itself.
type SuspendAgencyCommandHandler struct {
	uowFactory AgencyUoWFactory
	policy     access.AgencyPolicy
}

// NewSuspendAgencyCommandHandler creates a handler for agency suspension.
func NewSuspendAgencyCommandHandler(uowFactory AgencyUoWFactory) SuspendAgencyCommandHandler {
	return SuspendAgencyCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewAgencyPolicy(),
	}
}

// Handle processes the suspension command. Re-suspending an already
// suspended agency is rejected by the aggregate as a business rule
// violation.
func (h *SuspendAgencyCommandHandler) Handle(ctx context.Context, cmd SuspendAgencyCommand) error {
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
	suspended, err := agencyRepo.Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}

	if err = suspended.Suspend(cmd.Reason()); err != nil {
		return err
	}

	if err = agencyRepo.Update(ctx, suspended); err != nil {
		return err
	}

	event := events.NewAgencySuspended(suspended.ID(), cmd.Reason(), time.Now())
	if err = uow.RegisterEvent(event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
