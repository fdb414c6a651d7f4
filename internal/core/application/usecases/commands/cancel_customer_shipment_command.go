package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrCancelCustomerShipmentCommandIsNotConstructed = errors.New(
		"CancelCustomerShipmentCommand must be created via NewCancelCustomerShipmentCommand constructor",
	)
)

// CancelCustomerShipmentCommand represents a customer withdrawing a
// shipment that is still pending validation. Cancellation deletes the
// shipment.
type CancelCustomerShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelCustomerShipmentCommand creates a command to cancel a customer
// shipment.
func NewCancelCustomerShipmentCommand(principal auth.Principal, shipmentID kernel.UUID) (CancelCustomerShipmentCommand, error) {
	command := CancelCustomerShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
	); err != nil {
		return CancelCustomerShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelCustomerShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelCustomerShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c CancelCustomerShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the shipment to cancel.
func (c CancelCustomerShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *CancelCustomerShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CancelCustomerShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}
