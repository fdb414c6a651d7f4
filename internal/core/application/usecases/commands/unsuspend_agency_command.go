package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrUnsuspendAgencyCommandIsNotConstructed = errors.New(
		"UnsuspendAgencyCommand must be created via NewUnsuspendAgencyCommand constructor",
	)
)

// UnsuspendAgencyCommand represents a request to lift an agency suspension.
type UnsuspendAgencyCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	agencyID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnsuspendAgencyCommand creates a command to lift a suspension.
func NewUnsuspendAgencyCommand(principal auth.Principal, agencyID kernel.UUID) (UnsuspendAgencyCommand, error) {
	command := UnsuspendAgencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setAgencyID(agencyID),
	); err != nil {
		return UnsuspendAgencyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UnsuspendAgencyCommand) Validate() error {
	return c.guard.Validate(ErrUnsuspendAgencyCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c UnsuspendAgencyCommand) Principal() auth.Principal {
	return c.principal
}

// AgencyID returns the agency to unsuspend.
func (c UnsuspendAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

func (c *UnsuspendAgencyCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *UnsuspendAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}
