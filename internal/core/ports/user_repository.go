package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users and roles.
//
// Users are soft-deleted. Get and GetByEmail exclude tombstoned rows;
// GetIncludingDeleted is the explicit variant for audit paths.
type UserRepository interface {
	// Add persists a new user to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user, including its role grants.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a non-deleted user by its unique identifier.
	// Returns ObjectNotFoundError when no such user exists or the user is
	// tombstoned.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetIncludingDeleted retrieves a user regardless of its tombstone.
	GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a non-deleted user by email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetRoleByCode retrieves a role definition by its unique code.
	GetRoleByCode(ctx context.Context, code string) (*user.Role, error)
}
