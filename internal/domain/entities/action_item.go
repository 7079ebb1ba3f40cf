package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is an AI-derived task attached to a meeting result rather than
// directly to the meeting. It is normalized into TaskRecord shape before being
// merged with explicit tasks.
type ActionItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingResultID uuid.UUID      `gorm:"type:uuid;not null;index" json:"meeting_result_id"`
	MeetingResult   *MeetingResult `gorm:"foreignKey:MeetingResultID" json:"meeting_result,omitempty"`
	Task            string         `gorm:"type:text;not null" json:"task"`
	AssigneeUserID  *uuid.UUID     `gorm:"type:uuid;index" json:"assignee_user_id,omitempty"`
	Assignee        *User          `gorm:"foreignKey:AssigneeUserID" json:"assignee,omitempty"`
	DueDate         *time.Time     `gorm:"type:date" json:"due_date,omitempty"`
	IsCompleted     bool           `gorm:"default:false" json:"is_completed"`
	Source          string         `gorm:"type:varchar(255)" json:"source"`
	CreatedAt       time.Time      `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// Status maps the completion flag onto the shared task status values
func (a *ActionItem) Status() TaskStatus {
	if a.IsCompleted {
		return TaskStatusCompleted
	}
	return TaskStatusTodo
}
