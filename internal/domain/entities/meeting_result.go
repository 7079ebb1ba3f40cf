package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImportanceLevel represents how important the AI judged a meeting to be
type ImportanceLevel string

const (
	ImportanceHigh   ImportanceLevel = "HIGH"
	ImportanceMedium ImportanceLevel = "MEDIUM"
	ImportanceLow    ImportanceLevel = "LOW"
)

// MeetingResult holds the AI-generated summary attached to a completed meeting.
// At most one per meeting.
type MeetingResult struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"meeting_id"`
	Meeting          *Meeting        `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Summary          string          `gorm:"type:text" json:"summary"`
	Agenda           string          `gorm:"type:text" json:"agenda"`
	Purpose          string          `gorm:"type:text" json:"purpose"`
	ImportanceLevel  ImportanceLevel `gorm:"type:varchar(10);default:'MEDIUM'" json:"importance_level"`
	ImportanceReason string          `gorm:"type:text" json:"importance_reason"`

	// Curated topic keywords, stored as a JSON array
	Keywords datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"keywords,omitempty"`

	ActionItems []*ActionItem `gorm:"foreignKey:MeetingResultID" json:"action_items,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for MeetingResult
func (MeetingResult) TableName() string {
	return "meeting_results"
}
