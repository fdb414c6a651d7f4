package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrGrantRoleCommandIsNotConstructed = errors.New(
		"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
	)
)

// GrantRoleCommand represents a request to attach a role to a user.
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	userID    kernel.UUID
	roleCode  string

	guard guard.ConstructorGuard
}

// NewGrantRoleCommand creates a command to grant a role.
func NewGrantRoleCommand(principal auth.Principal, userID kernel.UUID, roleCode string) (GrantRoleCommand, error) {
	command := GrantRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setUserID(userID),
		command.setRoleCode(roleCode),
	); err != nil {
		return GrantRoleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c GrantRoleCommand) Principal() auth.Principal {
	return c.principal
}

// UserID returns the user receiving the role.
func (c GrantRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// RoleCode returns the code of the role to grant.
func (c GrantRoleCommand) RoleCode() string {
	return c.roleCode
}

func (c *GrantRoleCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *GrantRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *GrantRoleCommand) setRoleCode(roleCode string) error {
	if strings.TrimSpace(roleCode) == "" {
		return errs.NewValueIsRequiredError("role code")
	}
	c.roleCode = roleCode
	return nil
}
