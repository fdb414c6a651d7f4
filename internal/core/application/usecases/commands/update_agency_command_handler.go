package commands

import (
	"context"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/services/access"
)

// UpdateAgencyCommandHandler changes agency details. Allowed for platform
// administrators and the agency's own admin.
type UpdateAgencyCommandHandler struct {
	uowFactory AgencyUoWFactory
	policy     access.AgencyPolicy
}

// NewUpdateAgencyCommandHandler creates a handler for agency detail
// updates.
func NewUpdateAgencyCommandHandler(uowFactory AgencyUoWFactory) UpdateAgencyCommandHandler {
	return UpdateAgencyCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewAgencyPolicy(),
	}
}

// Handle processes the update command.
func (h *UpdateAgencyCommandHandler) Handle(ctx context.Context, cmd UpdateAgencyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.ValidateModify(cmd.Principal(), cmd.AgencyID()); err != nil {
		return err
	}
	if err := auth.CheckTenant(ctx, cmd.AgencyID(), "modify agency"); err != nil {
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
	updated, err := agencyRepo.Get(ctx, cmd.AgencyID())
	if err != nil {
		return err
	}

	if err = updated.UpdateDetails(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = agencyRepo.Update(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
