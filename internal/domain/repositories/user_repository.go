package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByName finds a user whose name contains the given fragment
	FindByName(ctx context.Context, name string) (*entities.User, error)

	// ListNames returns the names of all users, optionally excluding one user
	ListNames(ctx context.Context, excludeID *uuid.UUID) ([]string, error)
}
