package participant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// Query types understood by Resolve
const (
	QueryMeetingParticipants = "meeting_participants"
	QueryPersonMeetings      = "person_meetings"
)

const personMeetingsLimit = 50

// Request is one attendance question: either the roster of a meeting or the
// meetings a named person attended.
type Request struct {
	Type       string
	MeetingID  *uuid.UUID
	PersonName string
}

// Service answers attendance questions
type Service interface {
	Resolve(ctx context.Context, req Request) string
}

type participantService struct {
	participantRepo repositories.ParticipantRepository
	meetingRepo     repositories.MeetingRepository
	userRepo        repositories.UserRepository
	logger          *zap.Logger
}

// NewParticipantService constructs the attendance resolver
func NewParticipantService(
	participantRepo repositories.ParticipantRepository,
	meetingRepo repositories.MeetingRepository,
	userRepo repositories.UserRepository,
	logger *zap.Logger,
) Service {
	return &participantService{
		participantRepo: participantRepo,
		meetingRepo:     meetingRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

func (s *participantService) Resolve(ctx context.Context, req Request) string {
	switch req.Type {
	case QueryMeetingParticipants:
		return s.resolveRoster(ctx, req.MeetingID)
	case QueryPersonMeetings:
		return s.resolvePersonMeetings(ctx, req.PersonName)
	default:
		s.logger.Warn("attendance query rejected",
			zap.Error(apperrors.ErrUnsupportedOperation(req.Type)))
		return "잘못된 검색 유형이에요. 😢"
	}
}

// storeUnreachableReply is the fixed sentence for a database that could not
// be reached
const storeUnreachableReply = "데이터베이스 연결에 실패했어요. 😢"

func (s *participantService) resolveRoster(ctx context.Context, meetingID *uuid.UUID) string {
	if meetingID == nil {
		return "회의 정보가 없어요. 😢"
	}

	meeting, err := s.meetingRepo.FindByID(ctx, *meetingID)
	if err != nil {
		s.logger.Warn("meeting lookup failed", zap.Error(err))
		return "회의를 찾을 수 없어요. 😢"
	}

	participants, err := s.participantRepo.FindByMeetingID(ctx, *meetingID)
	if err != nil {
		s.logger.Error("roster lookup failed", zap.Error(apperrors.ClassifyStoreError(err)))
		if apperrors.IsConnectivity(err) {
			return storeUnreachableReply
		}
		return "참석자 검색 중 오류가 발생했어요. 😢"
	}
	if len(participants) == 0 {
		return fmt.Sprintf("%s에는 등록된 참석자가 없어요. 😢", meeting.Title)
	}

	return presenter.FormatMeetingParticipants(meeting, participants)
}

func (s *participantService) resolvePersonMeetings(ctx context.Context, name string) string {
	if name == "" {
		return "사람 이름을 알려주세요. 😢"
	}

	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		// attendees are not always registered users; the participant table
		// is the fallback identity source
		attended, attErr := s.participantRepo.HasAttendee(ctx, name)
		if attErr != nil || !attended {
			return fmt.Sprintf("%s님을 찾을 수 없어요. 😢", name)
		}
		user = &entities.User{Name: name}
	}

	meetings, err := s.meetingRepo.Search(ctx, repositories.MeetingFilters{
		AttendeeName: user.Name,
		Limit:        personMeetingsLimit,
	})
	if err != nil {
		s.logger.Error("person meeting lookup failed", zap.Error(apperrors.ClassifyStoreError(err)))
		if apperrors.IsConnectivity(err) {
			return storeUnreachableReply
		}
		return "참석자 검색 중 오류가 발생했어요. 😢"
	}
	if len(meetings) == 0 {
		return fmt.Sprintf("%s님이 참석한 회의를 찾을 수 없어요. 😢", user.Name)
	}

	return presenter.FormatPersonMeetings(user, meetings)
}
