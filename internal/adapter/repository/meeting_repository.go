package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Result").
		Preload("Participants").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Search retrieves meetings matching the filters, newest scheduled first
func (r *meetingRepository) Search(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := applyMeetingFilters(r.db.WithContext(ctx).Model(&entities.Meeting{}), filters).
		Preload("Result").
		Preload("Participants").
		Order("meetings.scheduled_at DESC")

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	err := query.Find(&meetings).Error
	return meetings, err
}

// Count counts meetings matching the filters
func (r *meetingRepository) Count(ctx context.Context, filters repositories.MeetingFilters) (int64, error) {
	var total int64
	err := applyMeetingFilters(r.db.WithContext(ctx).Model(&entities.Meeting{}), filters).
		Distinct("meetings.id").
		Count(&total).Error
	return total, err
}

// DistinctTitles returns the distinct titles of all meetings, optionally
// scoped to one host
func (r *meetingRepository) DistinctTitles(ctx context.Context, hostUserID *uuid.UUID) ([]string, error) {
	var titles []string
	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Distinct("title")
	if hostUserID != nil {
		query = query.Where("host_user_id = ?", *hostUserID)
	}
	err := query.Pluck("title", &titles).Error
	return titles, err
}

// FindByCuratedKeyword retrieves meetings linked to a curated keyword
func (r *meetingRepository) FindByCuratedKeyword(ctx context.Context, keyword string, limit int) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Result").
		Preload("Participants").
		Where(`meetings.id IN (
			SELECT mrk.meeting_id FROM meeting_result_keywords mrk
			JOIN keywords k ON k.id = mrk.keyword_id
			WHERE k.name ILIKE ?
		)`, likePattern(keyword)).
		Order("meetings.scheduled_at DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

// applyMeetingFilters translates one rung's filter set into query conditions.
// Every value is bound as a parameter.
func applyMeetingFilters(query *gorm.DB, f repositories.MeetingFilters) *gorm.DB {
	if f.AttendeeName != "" {
		query = query.Where(
			"meetings.id IN (SELECT meeting_id FROM participants WHERE name = ?)",
			f.AttendeeName,
		)
	}
	if len(f.CoAttendees) > 0 {
		query = query.Where(
			"meetings.id IN (SELECT meeting_id FROM participants WHERE name IN ?)",
			f.CoAttendees,
		)
	}

	if len(f.Keywords) > 0 {
		query = query.Joins("LEFT JOIN meeting_results mr ON mr.meeting_id = meetings.id")

		groups := make([]string, 0, len(f.Keywords))
		args := make([]interface{}, 0, len(f.Keywords)*3)
		for _, kw := range f.Keywords {
			groups = append(groups, "(meetings.title ILIKE ? OR meetings.description ILIKE ? OR mr.summary ILIKE ?)")
			pattern := likePattern(kw)
			args = append(args, pattern, pattern, pattern)
		}

		// Multiple keywords narrow the search; a single keyword's group
		// already ORs across columns. Relaxation rungs set KeywordsAny to
		// widen instead.
		joiner := " OR "
		if len(f.Keywords) > 1 && !f.KeywordsAny {
			joiner = " AND "
		}
		query = query.Where("("+strings.Join(groups, joiner)+")", args...)
	}

	if f.DateStart != nil {
		query = query.Where("meetings.scheduled_at >= ?", *f.DateStart)
	}
	if f.DateEnd != nil {
		query = query.Where("meetings.scheduled_at <= ?", *f.DateEnd)
	}

	if f.Status != nil {
		query = query.Where("meetings.status = ?", *f.Status)
		if !f.StatusCutoff.IsZero() {
			switch *f.Status {
			case entities.MeetingStatusScheduled:
				query = query.Where("meetings.scheduled_at >= ?", f.StatusCutoff)
			case entities.MeetingStatusCompleted:
				query = query.Where("meetings.scheduled_at < ?", f.StatusCutoff)
			}
		}
	}

	if f.MeetingID != nil {
		query = query.Where("meetings.id = ?", *f.MeetingID)
	}

	return query
}

func likePattern(s string) string {
	return fmt.Sprintf("%%%s%%", s)
}
