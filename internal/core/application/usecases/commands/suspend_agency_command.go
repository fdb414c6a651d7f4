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
	ErrSuspendAgencyCommandIsNotConstructed = errors.New(
		"SuspendAgencyCommand must be created via NewSuspendAgencyCommand constructor",
	)
)

// SuspendAgencyCommand represents a compliance request to suspend an
// agency. The reason is mandatory and preserved for audit.
type SuspendAgencyCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	agencyID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewSuspendAgencyCommand creates a command to suspend an agency.
func NewSuspendAgencyCommand(principal auth.Principal, agencyID kernel.UUID, reason string) (SuspendAgencyCommand, error) {
	command := SuspendAgencyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setAgencyID(agencyID),
		command.setReason(reason),
	); err != nil {
		return SuspendAgencyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SuspendAgencyCommand) Validate() error {
	return c.guard.Validate(ErrSuspendAgencyCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c SuspendAgencyCommand) Principal() auth.Principal {
	return c.principal
}

// AgencyID returns the agency to suspend.
func (c SuspendAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Reason returns the suspension reason.
func (c SuspendAgencyCommand) Reason() string {
	return c.reason
}

func (c *SuspendAgencyCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *SuspendAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}

func (c *SuspendAgencyCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("suspension reason")
	}
	c.reason = reason
	return nil
}
