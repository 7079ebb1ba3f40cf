package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// FindByID retrieves a meeting by its ID, with result and participants loaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// Search retrieves meetings matching the given filters, newest scheduled first
	Search(ctx context.Context, filters MeetingFilters) ([]*entities.Meeting, error)

	// Count counts meetings matching the given filters
	Count(ctx context.Context, filters MeetingFilters) (int64, error)

	// DistinctTitles returns the distinct titles of all meetings, optionally
	// scoped to the meetings hosted by one user. Used for typo correction.
	DistinctTitles(ctx context.Context, hostUserID *uuid.UUID) ([]string, error)

	// FindByCuratedKeyword retrieves meetings linked to a curated keyword
	// through their results
	FindByCuratedKeyword(ctx context.Context, keyword string, limit int) ([]*entities.Meeting, error)
}

// MeetingFilters represents the filter set for one search query. The search
// orchestrator builds a fresh filter set per relaxation rung; every value is
// bound as a query parameter by the implementation.
type MeetingFilters struct {
	// AttendeeName restricts results to meetings the named person attended
	AttendeeName string

	// CoAttendees further restricts to meetings also attended by any of
	// these people (names detected verbatim in the query)
	CoAttendees []string

	// Keywords are matched against title, description and summary.
	// Multiple keyword groups are ANDed; a single group ORs its columns.
	// KeywordsAny forces OR between groups (relaxation rungs widen this way).
	Keywords    []string
	KeywordsAny bool

	// Date bounds on scheduled_at, inclusive
	DateStart *time.Time
	DateEnd   *time.Time

	Status *entities.MeetingStatus

	// StatusCutoff applies the status-dependent date cutoff: SCHEDULED only
	// at or after this instant, COMPLETED only before it. Zero disables it.
	StatusCutoff time.Time

	// MeetingID pins the search to one meeting (conversation context)
	MeetingID *uuid.UUID

	Limit int
}
