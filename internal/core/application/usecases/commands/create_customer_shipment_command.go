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
	ErrCreateCustomerShipmentCommandIsNotConstructed = errors.New(
		"CreateCustomerShipmentCommand must be created via NewCreateCustomerShipmentCommand constructor",
	)
)

// CreateCustomerShipmentCommand represents the customer path for shipment
// creation. The resulting shipment starts PendingValidation and records the
// customer and the chosen pickup location.
type CreateCustomerShipmentCommand struct { //nolint:recvcheck //using for validation
	principal        auth.Principal
	shipmentID       kernel.UUID
	agencyID         kernel.UUID
	pickupLocationID kernel.UUID
	description      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerShipmentCommand creates a command for the customer
// creation path.
func NewCreateCustomerShipmentCommand(
	principal auth.Principal,
	shipmentID, agencyID, pickupLocationID kernel.UUID,
	description string,
) (CreateCustomerShipmentCommand, error) {
	command := CreateCustomerShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setShipmentID(shipmentID),
		command.setAgencyID(agencyID),
		command.setPickupLocationID(pickupLocationID),
		command.setDescription(description),
	); err != nil {
		return CreateCustomerShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerShipmentCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c CreateCustomerShipmentCommand) Principal() auth.Principal {
	return c.principal
}

// ShipmentID returns the identifier for the new shipment.
func (c CreateCustomerShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// AgencyID returns the agency the customer ships with.
func (c CreateCustomerShipmentCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// PickupLocationID returns the chosen drop-off location.
func (c CreateCustomerShipmentCommand) PickupLocationID() kernel.UUID {
	return c.pickupLocationID
}

// Description returns the shipment content summary.
func (c CreateCustomerShipmentCommand) Description() string {
	return c.description
}

func (c *CreateCustomerShipmentCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *CreateCustomerShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateCustomerShipmentCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	c.agencyID = agencyID
	return nil
}

func (c *CreateCustomerShipmentCommand) setPickupLocationID(pickupLocationID kernel.UUID) error {
	if err := pickupLocationID.Validate(); err != nil {
		return err
	}
	c.pickupLocationID = pickupLocationID
	return nil
}

func (c *CreateCustomerShipmentCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return errs.NewValueIsRequiredError("shipment description")
	}
	c.description = description
	return nil
}
