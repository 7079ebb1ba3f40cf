package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// TaskRepository defines the interface for task and action-item data access
type TaskRepository interface {
	// FindTasks retrieves explicit tasks matching the filters, with their
	// meeting loaded
	FindTasks(ctx context.Context, filters TaskFilters) ([]*entities.Task, error)

	// FindActionItems retrieves AI-derived action items already normalized
	// into the shared task record shape
	FindActionItems(ctx context.Context, filters ActionItemFilters) ([]entities.TaskRecord, error)
}

// TaskFilters represents filter options for explicit tasks
type TaskFilters struct {
	// UserID scopes to tasks owned by this user
	UserID *uuid.UUID

	// ExcludeUserID scopes to tasks owned by anyone but this user
	ExcludeUserID *uuid.UUID

	// AssigneeName is matched as a substring against the assignee name column
	AssigneeName string

	MeetingID *uuid.UUID

	Status *entities.TaskStatus

	// DueFrom keeps only tasks due at or after this instant
	DueFrom *time.Time

	// OverdueFirst sorts past-due tasks before the rest, then due date ascending
	OverdueFirst bool

	// Now anchors the overdue comparison
	Now time.Time

	Limit int
}

// ActionItemFilters represents filter options for AI-derived action items
type ActionItemFilters struct {
	// MeetingID scopes to items derived from one meeting's result
	MeetingID *uuid.UUID

	// HostUserID scopes to items from meetings hosted by this user,
	// used when no context meeting is set
	HostUserID *uuid.UUID

	Status *entities.TaskStatus

	Limit int
}
