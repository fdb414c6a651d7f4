package auth

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrPrincipalIsNotConstructed is returned when a Principal was not
	// created through NewPrincipal.
	ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")
)

// Principal is the resolved, trusted identity for the current request.
// It is immutable, constructed once per request by ResolvePrincipal, and
// discarded when the request's unit of work ends. Reusing a Principal across
// units of work is expressly disallowed; each request re-resolves from a
// fresh token.
//
// Invariant: an agency id is present if and only if the actor is an agency
// employee. An agency id must never leak to non-employee actors.
type Principal struct {
	userID    kernel.UUID
	actorType ActorType
	agencyID  *kernel.UUID
	roles     map[string]struct{}

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal with validation of the actor-type/agency
// pairing invariant. Roles may be empty; insertion order is irrelevant.
func NewPrincipal(userID kernel.UUID, actorType ActorType, agencyID *kernel.UUID, roles []string) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}
	if err := actorType.Validate(); err != nil {
		return Principal{}, err
	}

	if actorType == ActorTypeAgencyEmployee {
		if agencyID == nil {
			return Principal{}, errs.NewAuthenticationMalformedError("agency_id")
		}
		if err := agencyID.Validate(); err != nil {
			return Principal{}, errs.NewAuthenticationMalformedErrorWithCause("agency_id", err)
		}
	} else if agencyID != nil {
		return Principal{}, errs.NewAuthenticationMalformedError("agency_id")
	}

	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return Principal{
		userID:    userID,
		actorType: actorType,
		agencyID:  agencyID,
		roles:     roleSet,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Principal was created through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// UserID returns the opaque user identifier from the subject claim.
func (p Principal) UserID() kernel.UUID {
	return p.userID
}

// ActorType returns the principal's actor class.
func (p Principal) ActorType() ActorType {
	return p.actorType
}

// AgencyID returns the principal's tenant, or nil for non-employee actors.
func (p Principal) AgencyID() *kernel.UUID {
	if p.agencyID == nil {
		return nil
	}
	id := *p.agencyID
	return &id
}

// HasRole reports whether the principal carries the given role code.
func (p Principal) HasRole(code string) bool {
	_, ok := p.roles[code]
	return ok
}

// HasAnyRole reports whether the principal carries at least one of the
// given role codes.
func (p Principal) HasAnyRole(codes ...string) bool {
	for _, code := range codes {
		if p.HasRole(code) {
			return true
		}
	}
	return false
}

// IsPlatformAdmin reports whether the principal is a platform administrator.
func (p Principal) IsPlatformAdmin() bool {
	return p.actorType == ActorTypePlatformAdmin
}

// IsAgencyEmployee reports whether the principal is an agency employee.
func (p Principal) IsAgencyEmployee() bool {
	return p.actorType == ActorTypeAgencyEmployee
}

// IsCustomer reports whether the principal is a customer.
func (p Principal) IsCustomer() bool {
	return p.actorType == ActorTypeCustomer
}

// BelongsToAgency reports whether the principal is an employee of the given
// agency. A missing agency id on an employee principal is an internal
// consistency violation and always reports false, never "no restriction".
func (p Principal) BelongsToAgency(agencyID kernel.UUID) bool {
	if p.actorType != ActorTypeAgencyEmployee || p.agencyID == nil {
		return false
	}
	return p.agencyID.IsEqual(agencyID)
}
