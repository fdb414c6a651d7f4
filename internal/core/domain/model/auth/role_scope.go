package auth

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// RoleScope partitions role codes by the actor class they may be granted to.
type RoleScope int

const (
	// RoleScopeUnknown represents an invalid or undefined scope.
	RoleScopeUnknown RoleScope = iota

	// RoleScopePlatform roles are grantable to platform administrators only.
	RoleScopePlatform

	// RoleScopeAgency roles are grantable to agency employees only.
	RoleScopeAgency

	// RoleScopeCustomer roles are grantable to customers only.
	RoleScopeCustomer
)

func getRoleScopeStrings() map[RoleScope]string {
	return map[RoleScope]string{
		RoleScopeUnknown:  "UNKNOWN",
		RoleScopePlatform: "PLATFORM",
		RoleScopeAgency:   "AGENCY",
		RoleScopeCustomer: "CUSTOMER",
	}
}

func getValidRoleScopeStrings() map[RoleScope]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[RoleScope]string{
		RoleScopePlatform: "PLATFORM",
		RoleScopeAgency:   "AGENCY",
		RoleScopeCustomer: "CUSTOMER",
	}
}

// RoleScopeFromString maps a stored value to a RoleScope.
// Unrecognized values yield an error.
func RoleScopeFromString(s string) (RoleScope, error) {
	for scope, str := range getValidRoleScopeStrings() {
		if str == s {
			return scope, nil
		}
	}
	return RoleScopeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role scope is invalid",
		fmt.Errorf("%q is not a recognized role scope", s),
	)
}

// ScopeForActorType returns the single role scope grantable to the given
// actor type. A role may be attached to a user only if the role's scope
// matches this mapping.
func ScopeForActorType(actorType ActorType) (RoleScope, error) {
	switch actorType {
	case ActorTypePlatformAdmin:
		return RoleScopePlatform, nil
	case ActorTypeAgencyEmployee:
		return RoleScopeAgency, nil
	case ActorTypeCustomer:
		return RoleScopeCustomer, nil
	default:
		return RoleScopeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"actor type is invalid",
			fmt.Errorf("%d has no role scope", actorType),
		)
	}
}

// Validate checks that the value is one of the three recognized scopes.
func (s RoleScope) Validate() error {
	if _, ok := getValidRoleScopeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role scope is invalid",
			fmt.Errorf("%d is not a valid role scope", s),
		)
	}
	return nil
}

// String returns the string representation of the scope.
func (s RoleScope) String() string {
	if str, ok := getRoleScopeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
