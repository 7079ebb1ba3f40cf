package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle state of a meeting.
// The search engine only reads it; transitions happen in the surrounding application.
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "SCHEDULED"
	MeetingStatusRecording MeetingStatus = "RECORDING"
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
)

// IsValid checks if the meeting status is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusRecording, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// Meeting represents a recorded or scheduled meeting
type Meeting struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Description *string       `gorm:"type:text" json:"description,omitempty"`
	ScheduledAt time.Time     `gorm:"not null;index" json:"scheduled_at"`
	Status      MeetingStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED';index" json:"status"`
	HostUserID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"host_user_id"`
	Host        *User         `gorm:"foreignKey:HostUserID" json:"host,omitempty"`

	// Zero-or-one AI-generated result per meeting
	Result *MeetingResult `gorm:"foreignKey:MeetingID" json:"result,omitempty"`

	Participants []*Participant `gorm:"foreignKey:MeetingID" json:"participants,omitempty"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// IsCompleted checks if the meeting has finished
func (m *Meeting) IsCompleted() bool {
	return m.Status == MeetingStatusCompleted
}

// IsUpcoming checks if the meeting is scheduled for a future time
func (m *Meeting) IsUpcoming(now time.Time) bool {
	return m.Status == MeetingStatusScheduled && m.ScheduledAt.After(now)
}

// Summary returns the result summary, or empty when no result is attached
func (m *Meeting) Summary() string {
	if m.Result == nil {
		return ""
	}
	return m.Result.Summary
}

// DescriptionText returns the description, or empty when unset
func (m *Meeting) DescriptionText() string {
	if m.Description == nil {
		return ""
	}
	return *m.Description
}
