package userrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and its role grants to the database.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return r.replaceGrants(ctx, aggregate)
}

// Update saves an existing user to the database. Role grants are replaced
// wholesale; the aggregate is the single source of truth for them.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", aggregate.ID().String())
	}

	return r.replaceGrants(ctx, aggregate)
}

// Get retrieves a non-deleted user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return r.get(ctx, id, false)
}

// GetIncludingDeleted retrieves a user regardless of its tombstone.
func (r *GormUserRepository) GetIncludingDeleted(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return r.get(ctx, id, true)
}

// GetByEmail retrieves a non-deleted user by email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).
		First(&dto, "email = ? AND deleted_at IS NULL", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// GetRoleByCode retrieves a role definition by its unique code.
func (r *GormUserRepository) GetRoleByCode(ctx context.Context, code string) (*user.Role, error) {
	var dto RoleDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("role", code)
		}
		return nil, err
	}

	return roleToDomain(dto)
}

func (r *GormUserRepository) get(ctx context.Context, id kernel.UUID, includeDeleted bool) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var dto UserDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

func (r *GormUserRepository) restore(ctx context.Context, dto UserDTO) (*user.User, error) {
	var roleDTOs []RoleDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", dto.ID).
		Find(&roleDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, roleDTOs)
}

func (r *GormUserRepository) replaceGrants(ctx context.Context, aggregate *user.User) error {
	userID := aggregate.ID().Bytes()

	err := r.db.WithContext(ctx).
		Delete(&UserRoleDTO{}, "user_id = ?", userID).Error
	if err != nil {
		return err
	}

	roles := aggregate.Roles()
	if len(roles) == 0 {
		return nil
	}

	grants := make([]UserRoleDTO, 0, len(roles))
	for _, role := range roles {
		grants = append(grants, UserRoleDTO{
			UserID: userID,
			RoleID: role.ID().Bytes(),
		})
	}

	return r.db.WithContext(ctx).Create(&grants).Error
}
