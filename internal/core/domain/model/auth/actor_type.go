package auth

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ActorType classifies the three principal classes sharing the platform.
type ActorType int

const (
	// ActorTypeUnknown represents an invalid or undefined actor type.
	ActorTypeUnknown ActorType = iota

	// ActorTypePlatformAdmin operates across all tenants.
	ActorTypePlatformAdmin

	// ActorTypeAgencyEmployee belongs to exactly one agency (its tenant).
	ActorTypeAgencyEmployee

	// ActorTypeCustomer interacts only through customer-facing paths.
	ActorTypeCustomer
)

// getActorTypeStrings returns the claim-level string for every actor type.
func getActorTypeStrings() map[ActorType]string {
	return map[ActorType]string{
		ActorTypeUnknown:        "UNKNOWN",
		ActorTypePlatformAdmin:  "PLATFORM_ADMIN",
		ActorTypeAgencyEmployee: "AGENCY_EMPLOYEE",
		ActorTypeCustomer:       "CUSTOMER",
	}
}

// getValidActorTypeStrings returns only the actor types a claim may carry.
func getValidActorTypeStrings() map[ActorType]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ActorType]string{
		ActorTypePlatformAdmin:  "PLATFORM_ADMIN",
		ActorTypeAgencyEmployee: "AGENCY_EMPLOYEE",
		ActorTypeCustomer:       "CUSTOMER",
	}
}

// ActorTypeFromString maps a claim value to an ActorType.
// Unrecognized values yield an error; callers at the authentication boundary
// translate it into an AuthenticationMalformedError.
func ActorTypeFromString(s string) (ActorType, error) {
	for actorType, str := range getValidActorTypeStrings() {
		if str == s {
			return actorType, nil
		}
	}
	return ActorTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"actor type is invalid",
		fmt.Errorf("%q is not a recognized actor type", s),
	)
}

// Validate checks that the value is one of the three recognized actor types.
func (a ActorType) Validate() error {
	if _, ok := getValidActorTypeStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor type is invalid",
			fmt.Errorf("%d is not a valid actor type", a),
		)
	}
	return nil
}

// String returns the claim-level representation of the actor type.
func (a ActorType) String() string {
	if str, ok := getActorTypeStrings()[a]; ok {
		return str
	}
	return "UNKNOWN"
}
