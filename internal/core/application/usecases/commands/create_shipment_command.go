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
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents the employee path for shipment creation.
// The resulting shipment starts Open.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	shipmentID  kernel.UUID
	agencyID    kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command for the employee creation
// path.
func NewCreateShipmentCommand(
	principal auth.Principal,
	shipmentID, agencyID kernel.UUID,
	description string,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
		command.setAgencyID(agencyID),
		command.setDescription(description),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c CreateShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AgencyID returns the owning agency.
func (c CreateShipmentCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// Description returns the shipment content summary.
func (c CreateShipmentCommand) Description() string {
	return c.description
}

func (c *CreateShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}

func (c *CreateShipmentCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("shipment description")
	}
	c.description = description
	return nil
}
