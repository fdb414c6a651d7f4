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
	ErrMarkParcelDeliveredCommandIsNotConstructed = errors.New(
		"MarkParcelDeliveredCommand must be created via NewMarkParcelDeliveredCommand constructor",
	)
)

// MarkParcelDeliveredCommand represents the final delivery scan, recording
// who received the parcel.
type MarkParcelDeliveredCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	parcelID   kernel.UUID
	receivedBy string
	locationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkParcelDeliveredCommand creates a command to complete a delivery.
func NewMarkParcelDeliveredCommand(
	principal auth.Principal,
	parcelID kernel.UUID,
	receivedBy string,
	locationID *kernel.UUID,
) (MarkParcelDeliveredCommand, error) {
	command := MarkParcelDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setParcelID(parcelID),
		command.setReceivedBy(receivedBy),
		command.setLocationID(locationID),
	); err != nil {
		return MarkParcelDeliveredCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkParcelDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelDeliveredCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c MarkParcelDeliveredCommand) Principal() auth.Principal {
	return c.principal
}

// ParcelID returns the parcel being delivered.
func (c MarkParcelDeliveredCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ReceivedBy returns who signed for the parcel.
func (c MarkParcelDeliveredCommand) ReceivedBy() string {
	return c.receivedBy
}

// LocationID returns the delivery location, or nil.
func (c MarkParcelDeliveredCommand) LocationID() *kernel.UUID {
	return c.locationID
}

func (c *MarkParcelDeliveredCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *MarkParcelDeliveredCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *MarkParcelDeliveredCommand) setReceivedBy(receivedBy string) error {
	if strings.TrimSpace(receivedBy) == "" {
		return errs.NewValueIsRequiredError("receivedBy")
	}
	c.receivedBy = receivedBy
	return nil
}

func (c *MarkParcelDeliveredCommand) setLocationID(locationID *kernel.UUID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}
	c.locationID = locationID
	return nil
}
