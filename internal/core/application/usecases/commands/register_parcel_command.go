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
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
)

// RegisterParcelCommand represents a request to attach a parcel to a
// shipment. The tracking number is generated, never client-supplied.
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	principal   auth.Principal
	parcelID    kernel.UUID
	shipmentID  kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a parcel.
func NewRegisterParcelCommand(
	principal auth.Principal,
	parcelID, shipmentID kernel.UUID,
	description string,
) (RegisterParcelCommand, error) {
	command := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setParcelID(parcelID),
		command.setShipmentID(shipmentID),
		command.setDescription(description),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c RegisterParcelCommand) Principal() auth.Principal {
	return c.principal
}

// ParcelID returns the identifier for the new parcel.
func (c RegisterParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ShipmentID returns the shipment the parcel attaches to.
func (c RegisterParcelCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Description returns the declared content.
func (c RegisterParcelCommand) Description() string {
	return c.description
}

func (c *RegisterParcelCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *RegisterParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *RegisterParcelCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *RegisterParcelCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("parcel description")
	}
	c.description = description
	return nil
}
