package auth

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Claims is the verified claim set handed over by the authentication
// boundary. Cryptographic validity is the boundary's concern; the resolver
// trusts the values as-is. An absent agency id is the empty string, an
// absent roles claim is a nil slice.
type Claims struct {
	Subject   string
	ActorType string
	AgencyID  string
	Roles     []string
}

// ResolvePrincipal turns verified claims into a typed Principal. It fails
// closed: any malformed or missing claim yields an
// AuthenticationMalformedError and no Principal.
//
// Contract:
//   - the subject must be a UUID
//   - the actor type must be one of the recognized values
//   - an agency employee must carry a valid agency id
//   - any other actor must not carry an agency id at all
//   - an absent roles claim yields an empty role set, not a failure
func ResolvePrincipal(claims Claims) (Principal, error) {
	if claims.Subject == "" {
		return Principal{}, errs.NewAuthenticationMalformedError("sub")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Principal{}, errs.NewAuthenticationMalformedErrorWithCause("sub", err)
	}

	actorType, err := ActorTypeFromString(claims.ActorType)
	if err != nil {
		return Principal{}, errs.NewAuthenticationMalformedErrorWithCause("actor_type", err)
	}

	var agencyID *kernel.UUID
	if claims.AgencyID != "" {
		id, idErr := kernel.UUIDFromString(claims.AgencyID)
		if idErr != nil {
			return Principal{}, errs.NewAuthenticationMalformedErrorWithCause("agency_id", idErr)
		}
		agencyID = &id
	}

	return NewPrincipal(userID, actorType, agencyID, claims.Roles)
}
