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
	ErrRejectShipmentCommandIsNotConstructed = errors.New(
		"RejectShipmentCommand must be created via NewRejectShipmentCommand constructor",
	)
)

// RejectShipmentCommand represents an employee rejecting a customer-created
// shipment with a mandatory reason.
type RejectShipmentCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	shipmentID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewRejectShipmentCommand creates a command to reject a pending shipment.
func NewRejectShipmentCommand(principal auth.Principal, shipmentID kernel.UUID, reason string) (RejectShipmentCommand, error) {
	command := RejectShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
		command.setReason(reason),
	); err != nil {
		return RejectShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRejectShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c RejectShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the shipment to reject.
func (c RejectShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Reason returns the rejection reason.
func (c RejectShipmentCommand) Reason() string {
	return c.reason
}

func (c *RejectShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *RejectShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RejectShipmentCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejection reason")
	}
	c.reason = reason
	return nil
}
