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
	ErrMarkParcelFailedCommandIsNotConstructed = errors.New(
		"MarkParcelFailedCommand must be created via NewMarkParcelFailedCommand constructor",
	)
)

// MarkParcelFailedCommand represents a failed delivery attempt with a
// mandatory reason.
type MarkParcelFailedCommand struct { //nolint:recvcheck //using for validation
	principal auth.Principal
	parcelID  kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewMarkParcelFailedCommand creates a command to record a failed attempt.
func NewMarkParcelFailedCommand(principal auth.Principal, parcelID kernel.UUID, reason string) (MarkParcelFailedCommand, error) {
	command := MarkParcelFailedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPrincipal(principal),
		command.setParcelID(parcelID),
		command.setReason(reason),
	); err != nil {
		return MarkParcelFailedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkParcelFailedCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelFailedCommandIsNotConstructed)
}

// Principal returns the acting principal.
func (c MarkParcelFailedCommand) Principal() auth.Principal {
	return c.principal
}

// ParcelID returns the parcel whose delivery failed.
func (c MarkParcelFailedCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Reason returns the failure reason.
func (c MarkParcelFailedCommand) Reason() string {
	return c.reason
}

func (c *MarkParcelFailedCommand) setPrincipal(principal auth.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	c.principal = principal
	return nil
}

func (c *MarkParcelFailedCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *MarkParcelFailedCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("failure reason")
	}
	c.reason = reason
	return nil
}
