package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
)

// User is the persisted account behind a Principal. The same pairing
// invariant holds: agencyID is set if and only if the user is an agency
// employee. Deleted users stay as tombstoned rows and refuse all mutations.
type User struct {
	id        kernel.UUID
	email     string
	actorType auth.ActorType
	agencyID  *kernel.UUID
	roles     map[string]Role

	active        bool
	emailVerified bool
	deletedAt     *time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a user pending activation: inactive, email unverified,
// no roles.
func NewUser(id kernel.UUID, email string, actorType auth.ActorType, agencyID *kernel.UUID) (*User, error) {
	u := &User{
		roles: make(map[string]Role),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setActorType(actorType),
	); err != nil {
		return nil, err
	}

	if err := u.setAgencyID(agencyID); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
// Used only by repository adapters.
func RestoreUser(
	id kernel.UUID,
	email string,
	actorType auth.ActorType,
	agencyID *kernel.UUID,
	roles []Role,
	active, emailVerified bool,
	deletedAt *time.Time,
) (*User, error) {
	u, err := NewUser(id, email, actorType, agencyID)
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if err = role.Validate(); err != nil {
			return nil, err
		}
		u.roles[role.Code()] = role
	}

	u.active = active
	u.emailVerified = emailVerified
	u.deletedAt = deletedAt
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// ActorType returns the user's actor class.
func (u *User) ActorType() auth.ActorType {
	return u.actorType
}

// AgencyID returns the user's agency, or nil for non-employee users.
func (u *User) AgencyID() *kernel.UUID {
	if u.agencyID == nil {
		return nil
	}
	id := *u.agencyID
	return &id
}

// Roles returns all granted roles, in no particular order.
// Used by repository adapters to persist the grants.
func (u *User) Roles() []Role {
	roles := make([]Role, 0, len(u.roles))
	for _, role := range u.roles {
		roles = append(roles, role)
	}
	return roles
}

// RoleCodes returns the codes of all granted roles, in no particular order.
func (u *User) RoleCodes() []string {
	codes := make([]string, 0, len(u.roles))
	for code := range u.roles {
		codes = append(codes, code)
	}
	return codes
}

// HasRole reports whether the user carries the given role code.
func (u *User) HasRole(code string) bool {
	_, ok := u.roles[code]
	return ok
}

// IsActive reports whether the user may authenticate.
func (u *User) IsActive() bool {
	return u.active
}

// IsEmailVerified reports whether the user's email has been verified.
func (u *User) IsEmailVerified() bool {
	return u.emailVerified
}

// IsDeleted reports whether the user has been tombstoned.
func (u *User) IsDeleted() bool {
	return u.deletedAt != nil
}

// DeletedAt returns the tombstone timestamp, once deleted.
func (u *User) DeletedAt() *time.Time {
	return u.deletedAt
}

// Activate enables the user for authentication.
func (u *User) Activate() error {
	if err := u.ensureMutable("activate user"); err != nil {
		return err
	}
	u.active = true
	return nil
}

// Deactivate disables the user without deleting it.
func (u *User) Deactivate() error {
	if err := u.ensureMutable("deactivate user"); err != nil {
		return err
	}
	u.active = false
	return nil
}

// VerifyEmail records that the user's email address has been confirmed.
func (u *User) VerifyEmail() error {
	if err := u.ensureMutable("verify email"); err != nil {
		return err
	}
	u.emailVerified = true
	return nil
}

// GrantRole attaches a role to the user. The role must be active, not yet
// granted, and its scope must match the user's actor type.
func (u *User) GrantRole(role *Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := u.ensureMutable("grant role"); err != nil {
		return err
	}

	if _, granted := u.roles[role.Code()]; granted {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("role %s is already granted to user %s", role.Code(), u.id))
	}
	if !role.IsActive() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("role %s is inactive and cannot be granted", role.Code()))
	}

	scope, err := auth.ScopeForActorType(u.actorType)
	if err != nil {
		return err
	}
	if role.Scope() != scope {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("role %s has scope %s, user %s requires scope %s",
				role.Code(), role.Scope(), u.id, scope))
	}

	u.roles[role.Code()] = *role
	return nil
}

// RevokeRole detaches a role from the user.
func (u *User) RevokeRole(code string) error {
	if err := u.ensureMutable("revoke role"); err != nil {
		return err
	}

	if _, granted := u.roles[code]; !granted {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("role %s is not granted to user %s", code, u.id))
	}

	delete(u.roles, code)
	return nil
}

// AssignToAgency moves an agency employee to another agency. The user's
// roles survive the move since their scope is tied to the actor type, not
// the agency.
func (u *User) AssignToAgency(agencyID kernel.UUID) error {
	if err := u.ensureMutable("assign user to agency"); err != nil {
		return err
	}
	if u.actorType != auth.ActorTypeAgencyEmployee {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("user %s is not an agency employee", u.id))
	}
	if err := agencyID.Validate(); err != nil {
		return err
	}

	u.agencyID = &agencyID
	return nil
}

// SoftDelete tombstones the user. The row stays for audit; the user can no
// longer authenticate or be mutated.
func (u *User) SoftDelete(now time.Time) error {
	if u.IsDeleted() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("user %s is already deleted", u.id))
	}

	u.active = false
	u.deletedAt = &now
	return nil
}

func (u *User) ensureMutable(operation string) error {
	if u.IsDeleted() {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("%s: user %s is deleted", operation, u.id))
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setActorType(actorType auth.ActorType) error {
	if err := actorType.Validate(); err != nil {
		return err
	}
	u.actorType = actorType
	return nil
}

// setAgencyID enforces the pairing invariant after the actor type is set.
func (u *User) setAgencyID(agencyID *kernel.UUID) error {
	if u.actorType == auth.ActorTypeAgencyEmployee {
		if agencyID == nil {
			return errs.NewValueIsRequiredError("agencyID")
		}
		if err := agencyID.Validate(); err != nil {
			return err
		}
		u.agencyID = agencyID
		return nil
	}

	if agencyID != nil {
		return errs.NewBusinessRuleViolationError(
			fmt.Sprintf("%s user cannot belong to an agency", u.actorType))
	}
	return nil
}
