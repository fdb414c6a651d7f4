package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrConfirmShipmentCommandIsNotConstructed = errors.New(
		"ConfirmShipmentCommand must be created via NewConfirmShipmentCommand constructor",
	)
)

// ConfirmShipmentCommand represents a request to confirm an open shipment,
// closing it for further parcel attachment.
type ConfirmShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmShipmentCommand creates a command to confirm a shipment.
func NewConfirmShipmentCommand(principal auth.Principal, shipmentID kernel.UUID) (ConfirmShipmentCommand, error) {
	command := ConfirmShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
	); err != nil {
		return ConfirmShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmShipmentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c ConfirmShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the shipment to confirm.
func (c ConfirmShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *ConfirmShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *ConfirmShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}
