package participant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

type fakeParticipantRepo struct {
	roster []repositories.ParticipantInfo
	err    error
}

func (r *fakeParticipantRepo) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]repositories.ParticipantInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.roster, nil
}

func (r *fakeParticipantRepo) DistinctNames(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (r *fakeParticipantRepo) HasAttendee(ctx context.Context, name string) (bool, error) {
	return len(r.roster) > 0, nil
}

type fakeMeetingRepo struct {
	meeting  *entities.Meeting
	attended []*entities.Meeting
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	if r.meeting != nil && r.meeting.ID == id {
		return r.meeting, nil
	}
	return nil, errors.New("meeting not found")
}

func (r *fakeMeetingRepo) Search(ctx context.Context, f repositories.MeetingFilters) ([]*entities.Meeting, error) {
	return r.attended, nil
}

func (r *fakeMeetingRepo) Count(ctx context.Context, f repositories.MeetingFilters) (int64, error) {
	return int64(len(r.attended)), nil
}

func (r *fakeMeetingRepo) DistinctTitles(ctx context.Context, hostUserID *uuid.UUID) ([]string, error) {
	return nil, nil
}

func (r *fakeMeetingRepo) FindByCuratedKeyword(ctx context.Context, keyword string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

type fakeUserRepo struct {
	user *entities.User
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) FindByName(ctx context.Context, name string) (*entities.User, error) {
	if r.user != nil && strings.Contains(r.user.Name, name) {
		return r.user, nil
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ListNames(ctx context.Context, excludeID *uuid.UUID) ([]string, error) {
	return nil, nil
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	meeting := &entities.Meeting{
		ID:          uuid.New(),
		Title:       "채용 전략 회의",
		ScheduledAt: time.Date(2025, 10, 8, 10, 0, 0, 0, time.UTC),
		Status:      entities.MeetingStatusCompleted,
	}

	newService := func(p *fakeParticipantRepo, m *fakeMeetingRepo, u *fakeUserRepo) Service {
		return NewParticipantService(p, m, u, zap.NewNop())
	}

	t.Run("roster with job tags", func(t *testing.T) {
		svc := newService(
			&fakeParticipantRepo{roster: []repositories.ParticipantInfo{
				{Name: "김민준", Job: entities.JobProjectManager},
				{Name: "이서연"},
			}},
			&fakeMeetingRepo{meeting: meeting},
			&fakeUserRepo{},
		)

		reply := svc.Resolve(ctx, Request{Type: QueryMeetingParticipants, MeetingID: &meeting.ID})

		assert.Contains(t, reply, "👥 채용 전략 회의 참석자 2명:")
		assert.Contains(t, reply, "1. 김민준 (기획)")
		assert.Contains(t, reply, "2. 이서연")
	})

	t.Run("roster without a meeting id", func(t *testing.T) {
		svc := newService(&fakeParticipantRepo{}, &fakeMeetingRepo{}, &fakeUserRepo{})

		reply := svc.Resolve(ctx, Request{Type: QueryMeetingParticipants})

		assert.Equal(t, "회의 정보가 없어요. 😢", reply)
	})

	t.Run("roster of an unknown meeting", func(t *testing.T) {
		svc := newService(&fakeParticipantRepo{}, &fakeMeetingRepo{}, &fakeUserRepo{})
		unknown := uuid.New()

		reply := svc.Resolve(ctx, Request{Type: QueryMeetingParticipants, MeetingID: &unknown})

		assert.Equal(t, "회의를 찾을 수 없어요. 😢", reply)
	})

	t.Run("empty roster names the meeting", func(t *testing.T) {
		svc := newService(&fakeParticipantRepo{}, &fakeMeetingRepo{meeting: meeting}, &fakeUserRepo{})

		reply := svc.Resolve(ctx, Request{Type: QueryMeetingParticipants, MeetingID: &meeting.ID})

		assert.Equal(t, "채용 전략 회의에는 등록된 참석자가 없어요. 😢", reply)
	})

	t.Run("meetings a person attended", func(t *testing.T) {
		svc := newService(
			&fakeParticipantRepo{},
			&fakeMeetingRepo{attended: []*entities.Meeting{meeting}},
			&fakeUserRepo{user: &entities.User{ID: uuid.New(), Name: "이서연"}},
		)

		reply := svc.Resolve(ctx, Request{Type: QueryPersonMeetings, PersonName: "이서연"})

		assert.Contains(t, reply, "📋 이서연님이 참석한 회의 1개:")
		assert.Contains(t, reply, "📌 채용 전략 회의 (10월 8일, 완료된)")
	})

	t.Run("unknown person", func(t *testing.T) {
		svc := newService(&fakeParticipantRepo{}, &fakeMeetingRepo{}, &fakeUserRepo{})

		reply := svc.Resolve(ctx, Request{Type: QueryPersonMeetings, PersonName: "홍길동"})

		assert.Equal(t, "홍길동님을 찾을 수 없어요. 😢", reply)
	})

	t.Run("person with no attended meetings", func(t *testing.T) {
		svc := newService(
			&fakeParticipantRepo{},
			&fakeMeetingRepo{},
			&fakeUserRepo{user: &entities.User{ID: uuid.New(), Name: "이서연"}},
		)

		reply := svc.Resolve(ctx, Request{Type: QueryPersonMeetings, PersonName: "이서연"})

		assert.Equal(t, "이서연님이 참석한 회의를 찾을 수 없어요. 😢", reply)
	})

	t.Run("unknown query type", func(t *testing.T) {
		svc := newService(&fakeParticipantRepo{}, &fakeMeetingRepo{}, &fakeUserRepo{})

		reply := svc.Resolve(ctx, Request{Type: "meeting_budget"})

		assert.Equal(t, "잘못된 검색 유형이에요. 😢", reply)
	})

	t.Run("unregistered attendee resolves through the participant table", func(t *testing.T) {
		svc := newService(
			&fakeParticipantRepo{roster: []repositories.ParticipantInfo{{Name: "외부참석자"}}},
			&fakeMeetingRepo{attended: []*entities.Meeting{meeting}},
			&fakeUserRepo{},
		)

		reply := svc.Resolve(ctx, Request{Type: QueryPersonMeetings, PersonName: "외부참석자"})

		assert.Contains(t, reply, "📋 외부참석자님이 참석한 회의 1개:")
	})

	t.Run("unreachable store gets the fixed connectivity reply", func(t *testing.T) {
		svc := newService(
			&fakeParticipantRepo{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
			&fakeMeetingRepo{meeting: meeting},
			&fakeUserRepo{},
		)

		reply := svc.Resolve(ctx, Request{Type: QueryMeetingParticipants, MeetingID: &meeting.ID})

		assert.Equal(t, "데이터베이스 연결에 실패했어요. 😢", reply)
	})
}
