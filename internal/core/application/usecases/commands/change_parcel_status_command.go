package commands

import (
	"errors"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/parcel"
	"logistics/internal/pkg/guard"
)

var (
	ErrChangeParcelStatusCommandIsNotConstructed = errors.New(
		"ChangeParcelStatusCommand must be created via NewChangeParcelStatusCommand constructor",
	)
)

// ChangeParcelStatusCommand represents a scan transition: a parcel moving
// to a new lifecycle status, optionally at a known location.
type ChangeParcelStatusCommand struct { //nolint:recvcheck //using for validation
	principal  auth.Principal
	parcelID   kernel.UUID
	toStatus   parcel.Status
	locationID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeParcelStatusCommand creates a command to record a scan
// transition. locationID may be nil when the scan carries no location.
func NewChangeParcelStatusCommand(
	principal auth.Principal,
	parcelID kernel.UUID,
	toStatus parcel.Status,
	locationID *kernel.UUID,
) (ChangeParcelStatusCommand, error) {
	command := ChangeParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setParcelID(parcelID),
		command.setToStatus(toStatus),
		command.setLocationID(locationID),
	); err != nil {
		return ChangeParcelStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeParcelStatusCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c ChangeParcelStatusCommand) Principal() auth.Principal {
	return c.principal
}

// ParcelID returns the parcel being scanned.
func (c ChangeParcelStatusCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// ToStatus returns the requested target status.
func (c ChangeParcelStatusCommand) ToStatus() parcel.Status {
	return c.toStatus
}

// LocationID returns the scan location, or nil.
func (c ChangeParcelStatusCommand) LocationID() *kernel.UUID {
	return c.locationID
}

func (c *ChangeParcelStatusCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *ChangeParcelStatusCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *ChangeParcelStatusCommand) setToStatus(toStatus parcel.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}
	c.toStatus = toStatus
	return nil
}

func (c *ChangeParcelStatusCommand) setLocationID(locationID *kernel.UUID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}
	c.locationID = locationID
	return nil
}
