package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// participantRepository implements the ParticipantRepository interface
type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *gorm.DB) repositories.ParticipantRepository {
	return &participantRepository{db: db}
}

// FindByMeetingID retrieves all attendees of a meeting with their job tags
func (r *participantRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]repositories.ParticipantInfo, error) {
	var infos []repositories.ParticipantInfo
	err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Select("participants.name, participants.speaker_id, COALESCE(u.job, 'NONE') AS job").
		Joins("LEFT JOIN users u ON u.name = participants.name").
		Where("participants.meeting_id = ?", meetingID).
		Order("participants.name").
		Scan(&infos).Error
	return infos, err
}

// DistinctNames returns every distinct attendee name
func (r *participantRepository) DistinctNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Distinct("name").
		Pluck("name", &names).Error
	return names, err
}

// HasAttendee checks whether the named person attended any meeting
func (r *participantRepository) HasAttendee(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Participant{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}
