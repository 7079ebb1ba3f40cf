package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task
type TaskStatus string

const (
	TaskStatusTodo      TaskStatus = "TODO"
	TaskStatusCompleted TaskStatus = "COMPLETED"
)

// Task is an explicit to-do item assigned during a meeting
type Task struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting      *Meeting   `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Assignee     *User      `gorm:"foreignKey:UserID" json:"assignee,omitempty"`
	Title        string     `gorm:"type:varchar(255);not null" json:"title"`
	AssigneeName string     `gorm:"type:varchar(255);index" json:"assignee_name"`
	DueDate      *time.Time `gorm:"type:date;index" json:"due_date,omitempty"`
	Status       TaskStatus `gorm:"type:varchar(20);not null;default:'TODO';index" json:"status"`
	CreatedAt    time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsOverdue checks if the task is past its due date and still open
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status == TaskStatusTodo && t.DueDate != nil && t.DueDate.Before(now)
}

// TaskRecord is the normalized shape shared by explicit tasks and AI-derived
// action items after merging. SourceTable tells the two apart.
type TaskRecord struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	AssigneeName string     `json:"assignee_name"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       TaskStatus `json:"status"`
	Source       string     `json:"source,omitempty"`
	MeetingID    uuid.UUID  `json:"meeting_id"`
	MeetingTitle string     `json:"meeting_title"`
	SourceTable  string     `json:"source_table"` // "task" or "action_item"
}

// RecordFromTask converts an explicit Task into the merged record shape
func RecordFromTask(t *Task) TaskRecord {
	rec := TaskRecord{
		ID:           t.ID,
		Title:        t.Title,
		AssigneeName: t.AssigneeName,
		DueDate:      t.DueDate,
		Status:       t.Status,
		MeetingID:    t.MeetingID,
		SourceTable:  "task",
	}
	if t.Meeting != nil {
		rec.MeetingTitle = t.Meeting.Title
	}
	return rec
}
