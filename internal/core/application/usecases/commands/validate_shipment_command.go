package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrValidateShipmentCommandIsNotConstructed = errors.New(
		"ValidateShipmentCommand must be created via NewValidateShipmentCommand constructor",
	)
)

// ValidateShipmentCommand represents an employee approving a
// customer-created shipment.
type ValidateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidateShipmentCommand creates a command to approve a pending
// shipment.
func NewValidateShipmentCommand(principal auth.Principal, shipmentID kernel.UUID) (ValidateShipmentCommand, error) {
	command := ValidateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
	); err != nil {
		return ValidateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrValidateShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c ValidateShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the shipment to approve.
func (c ValidateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ValidateShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *ValidateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}
