package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrUpdateAgencyCommandIsNotConstructed = errors.New(
		"UpdateAgencyCommand must be created via NewUpdateAgencyCommand constructor",
	)
)

// UpdateAgencyCommand represents a request to change an agency's details.
type UpdateAgencyCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	agencyID  kernel.UUID
	name      string
	email     string
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewUpdateAgencyCommand creates a command to update agency details.
func NewUpdateAgencyCommand(
	principal auth.Principal,
	agencyID kernel.UUID,
	name, email, phone, address string,
) (UpdateAgencyCommand, error) {
	command := UpdateAgencyCommand{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setAgencyID(agencyID),
	); err != nil {
		return UpdateAgencyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgencyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgencyCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c UpdateAgencyCommand) Principal() auth.Principal {
	return c.principal
}

// AgencyID returns the agency to update.
func (c UpdateAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Name returns the new display name.
func (c UpdateAgencyCommand) Name() string {
	return c.name
}

// Email returns the new contact email.
func (c UpdateAgencyCommand) Email() string {
	return c.email
}

// Phone returns the new contact phone.
func (c UpdateAgencyCommand) Phone() string {
	return c.phone
}

// Address returns the new head office address.
func (c UpdateAgencyCommand) Address() string {
	return c.address
}

func (c *UpdateAgencyCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *UpdateAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}
