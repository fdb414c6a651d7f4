package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateAgencyCommandIsNotConstructed = errors.New(
		"CreateAgencyCommand must be created via NewCreateAgencyCommand constructor",
	)
)

// CreateAgencyCommand represents a request to register a new agency on the
// platform. Detail validation is left to the Agency constructor; the
// command only guards its own shape.
type CreateAgencyCommand struct { //nolint:recvcheck //using for validation
	principal            auth.Principal
	agencyID             kernel.UUID
	name                 string
	email                string
	phone                string
	address              string
	maxUsers             int
	maxShipmentsPerMonth int

	guard guard.ConstructorGuard
}

// NewCreateAgencyCommand creates a command to register a new agency.
func NewCreateAgencyCommand(
	principal auth.Principal,
	agencyID kernel.UUID,
	name, email, phone, address string,
	maxUsers, maxShipmentsPerMonth int,
) (CreateAgencyCommand, error) {
	command := CreateAgencyCommand{
		name:                 name,
		email:                email,
		phone:                phone,
		address:              address,
		maxUsers:             maxUsers,
		maxShipmentsPerMonth: maxShipmentsPerMonth,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setAgencyID(agencyID),
	); err != nil {
		return CreateAgencyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgencyCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgencyCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c CreateAgencyCommand) Principal() auth.Principal {
	return c.principal
}

// AgencyID returns the identifier for the new agency.
func (c CreateAgencyCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Name returns the agency display name.
func (c CreateAgencyCommand) Name() string {
	return c.name
}

// Email returns the agency contact email.
func (c CreateAgencyCommand) Email() string {
	return c.email
}

// Phone returns the agency contact phone.
func (c CreateAgencyCommand) Phone() string {
	return c.phone
}

// Address returns the agency head office address.
func (c CreateAgencyCommand) Address() string {
	return c.address
}

// MaxUsers returns the subscription's user limit.
func (c CreateAgencyCommand) MaxUsers() int {
	return c.maxUsers
}

// MaxShipmentsPerMonth returns the subscription's monthly shipment limit.
func (c CreateAgencyCommand) MaxShipmentsPerMonth() int {
	return c.maxShipmentsPerMonth
}

func (c *CreateAgencyCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CreateAgencyCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}
