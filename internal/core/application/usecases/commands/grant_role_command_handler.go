package commands

import (
	"context"

	"logistics/internal/core/domain/services/access"
)

// GrantRoleCommandHandler attaches roles to users. The aggregate enforces
// the scope mapping, the active-role rule, and duplicate rejection.
type GrantRoleCommandHandler struct {
	uowFactory UserUoWFactory
	policy     access.UserPolicy
}

// NewGrantRoleCommandHandler creates a handler for role grants.
func NewGrantRoleCommandHandler(uowFactory UserUoWFactory) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		uowFactory: uowFactory,
		policy:     access.NewUserPolicy(),
	}
}

// Handle processes the grant command.
func (h *GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) error {
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

	userRepo := uow.UserRepository()
	granted, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = h.policy.ValidateManage(cmd.Principal(), granted.AgencyID()); err != nil {
		return err
	}

	role, err := userRepo.GetRoleByCode(ctx, cmd.RoleCode())
	if err != nil {
		return err
	}

	if err = granted.GrantRole(role); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, granted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
