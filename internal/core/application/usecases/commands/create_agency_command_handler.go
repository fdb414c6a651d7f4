package commands

import (
	"context"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/services/access"
)

// CreateAgencyCommandHandler registers new agencies. Platform
// administrators only.
type CreateAgencyCommandHandler struct {
	uowFactory AgencyUoWFactory
	policy     access.AgencyPolicy
}

// NewCreateAgencyCommandHandler creates a handler for agency registration.
func NewCreateAgencyCommandHandler(uowFactory AgencyUoWFactory) CreateAgencyCommandHandler {
	return CreateAgencyCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewAgencyPolicy(),
	}
}

// Handle processes the agency registration command.
func (h *CreateAgencyCommandHandler) Handle(ctx context.Context, cmd CreateAgencyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.ValidateCreate(cmd.Principal()); err != nil {
		return err
	}

	newAgency, err := agency.NewAgency(
		cmd.AgencyID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address(),
		cmd.MaxUsers(), cmd.MaxShipmentsPerMonth(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgencyRepository().Add(ctx, newAgency); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
