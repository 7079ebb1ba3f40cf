package entities

import (
	"time"

	"github.com/google/uuid"
)

// Participant links a person to a meeting they attended.
// Participant rows are the sole source of truth for attendance,
// independent of task assignment.
type Participant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting   *Meeting  `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	Name      string    `gorm:"type:varchar(255);not null;index" json:"name"`
	SpeakerID *string   `gorm:"type:varchar(50)" json:"speaker_id,omitempty"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
