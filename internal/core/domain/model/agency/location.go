package agency

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrLocationIsNotConstructed is returned when an AgencyLocation was not
	// created through NewAgencyLocation or RestoreAgencyLocation.
	ErrLocationIsNotConstructed = errors.New("AgencyLocation must be created via NewAgencyLocation or RestoreAgencyLocation constructor")
)

// AgencyLocation is a pickup/drop-off site owned by exactly one agency.
// Ownership is exclusive: a location cannot outlive or move between
// agencies. Operational state combines two flags: the location must be
// active and not temporarily closed.
type AgencyLocation struct {
	id       kernel.UUID
	agencyID kernel.UUID
	name     string
	address  string

	active            bool
	temporarilyClosed bool

	guard guard.ConstructorGuard
}

// NewAgencyLocation creates an active, open location for the given agency.
func NewAgencyLocation(id, agencyID kernel.UUID, name, address string) (*AgencyLocation, error) {
	location := &AgencyLocation{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		location.setID(id),
		location.setAgencyID(agencyID),
		location.setName(name),
		location.setAddress(address),
	); err != nil {
		return nil, err
	}

	return location, nil
}

// RestoreAgencyLocation reconstructs a location from persistence.
func RestoreAgencyLocation(id, agencyID kernel.UUID, name, address string, active, temporarilyClosed bool) (*AgencyLocation, error) {
	location, err := NewAgencyLocation(id, agencyID, name, address)
	if err != nil {
		return nil, err
	}

	location.active = active
	location.temporarilyClosed = temporarilyClosed
	return location, nil
}

// Validate ensures the location was created through a constructor.
func (l *AgencyLocation) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// ID returns the location's unique identifier.
func (l *AgencyLocation) ID() kernel.UUID {
	return l.id
}

// AgencyID returns the owning agency (the tenant key).
func (l *AgencyLocation) AgencyID() kernel.UUID {
	return l.agencyID
}

// Name returns the location's display name.
func (l *AgencyLocation) Name() string {
	return l.name
}

// Address returns the location's street address.
func (l *AgencyLocation) Address() string {
	return l.address
}

// IsActive reports the activation flag.
func (l *AgencyLocation) IsActive() bool {
	return l.active
}

// IsTemporarilyClosed reports the temporary closure flag.
func (l *AgencyLocation) IsTemporarilyClosed() bool {
	return l.temporarilyClosed
}

// IsOperational reports whether the location currently serves pickups:
// active and not temporarily closed.
func (l *AgencyLocation) IsOperational() bool {
	return l.active && !l.temporarilyClosed
}

// CloseTemporarily marks the location as temporarily closed.
func (l *AgencyLocation) CloseTemporarily() {
	l.temporarilyClosed = true
}

// Reopen clears the temporary closure flag.
func (l *AgencyLocation) Reopen() {
	l.temporarilyClosed = false
}

// Activate sets the activation flag.
func (l *AgencyLocation) Activate() {
	l.active = true
}

// Deactivate clears the activation flag.
func (l *AgencyLocation) Deactivate() {
	l.active = false
}

func (l *AgencyLocation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *AgencyLocation) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}
	l.agencyID = agencyID
	return nil
}

func (l *AgencyLocation) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	l.name = name
	return nil
}

func (l *AgencyLocation) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("location address")
	}
	l.address = address
	return nil
}
