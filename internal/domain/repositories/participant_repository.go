package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// ParticipantInfo pairs an attendee with the job tag of the matching user,
// when one exists
type ParticipantInfo struct {
	Name      string
	SpeakerID *string
	Job       entities.UserJob
}

// ParticipantRepository defines the interface for attendance data access
type ParticipantRepository interface {
	// FindByMeetingID retrieves all attendees of a meeting, ordered by name,
	// joined with the matching user's job tag
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]ParticipantInfo, error)

	// DistinctNames returns every distinct attendee name across all meetings
	DistinctNames(ctx context.Context) ([]string, error)

	// HasAttendee checks whether the named person attended any meeting
	HasAttendee(ctx context.Context, name string) (bool, error)
}
