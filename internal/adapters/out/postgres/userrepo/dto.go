// Package userrepo persists users, role definitions, and role grants.
// Users are soft-deleted: the tombstone column stays in the row and the
// default read paths filter it out.
package userrepo

import (
	"time"

	"logistics/internal/core/domain/model/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email         string     `gorm:"not null;uniqueIndex"`
	ActorType     string     `gorm:"not null"`
	AgencyID      *uuid.UUID `gorm:"type:uuid;index"`
	Active        bool       `gorm:"not null;default:false"`
	EmailVerified bool       `gorm:"not null;default:false"`
	DeletedAt     *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// RoleDTO represents the database structure for role definitions.
type RoleDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code   string    `gorm:"not null;uniqueIndex"`
	Scope  string    `gorm:"not null"`
	Active bool      `gorm:"not null;default:true"`
}

// TableName overrides GORM's default naming to use "roles".
func (RoleDTO) TableName() string {
	return "roles"
}

// UserRoleDTO is the join table between users and their granted roles.
type UserRoleDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName overrides GORM's default naming to use "user_roles".
func (UserRoleDTO) TableName() string {
	return "user_roles"
}

func fromDomain(aggregate *user.User) UserDTO {
	var agencyID *uuid.UUID
	if id := aggregate.AgencyID(); id != nil {
		raw := id.Bytes()
		agencyID = &raw
	}

	return UserDTO{
		ID:            aggregate.ID().Bytes(),
		Email:         aggregate.Email(),
		ActorType:     aggregate.ActorType().String(),
		AgencyID:      agencyID,
		Active:        aggregate.IsActive(),
		EmailVerified: aggregate.IsEmailVerified(),
		DeletedAt:     aggregate.DeletedAt(),
	}
}

func toDomain(dto UserDTO, roleDTOs []RoleDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	actorType, err := auth.ActorTypeFromString(dto.ActorType)
	if err != nil {
		return nil, err
	}

	var agencyID *kernel.UUID
	if dto.AgencyID != nil {
		aID, agencyErr := kernel.UUIDFromBytes((*dto.AgencyID)[:])
		if agencyErr != nil {
			return nil, agencyErr
		}
		agencyID = &aID
	}

	roles := make([]user.Role, 0, len(roleDTOs))
	for _, roleDTO := range roleDTOs {
		role, roleErr := roleToDomain(roleDTO)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, *role)
	}

	return user.RestoreUser(
		id,
		dto.Email,
		actorType,
		agencyID,
		roles,
		dto.Active, dto.EmailVerified,
		dto.DeletedAt,
	)
}

func roleToDomain(dto RoleDTO) (*user.Role, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	scope, err := auth.RoleScopeFromString(dto.Scope)
	if err != nil {
		return nil, err
	}

	return user.RestoreRole(id, dto.Code, scope, dto.Active)
}
