package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// userRepository implements the UserRepository interface using GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &userRepository{db: db}
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

// FindByName finds a user whose name contains the given fragment
func (r *userRepository) FindByName(ctx context.Context, name string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("name ILIKE ?", likePattern(name)).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by name: %w", err)
	}
	return &user, nil
}

// ListNames returns the names of all users, optionally excluding one user
func (r *userRepository) ListNames(ctx context.Context, excludeID *uuid.UUID) ([]string, error) {
	var names []string
	query := r.db.WithContext(ctx).Model(&entities.User{})
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list user names: %w", err)
	}
	return names, nil
}
