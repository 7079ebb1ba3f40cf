package task

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// Request is one task question. ContextMeetingID is the meeting the
// conversation last settled on, nil when none.
type Request struct {
	Query            string
	RequesterID      uuid.UUID
	ContextMeetingID *uuid.UUID
}

// Service resolves task questions against explicit tasks and AI-derived
// action items
type Service interface {
	Resolve(ctx context.Context, req Request) (string, []entities.TaskRecord)
}

type taskService struct {
	taskRepo    repositories.TaskRepository
	userRepo    repositories.UserRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
	now         func() time.Time
}

// NewTaskService constructs the task resolver
func NewTaskService(
	taskRepo repositories.TaskRepository,
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	logger *zap.Logger,
) Service {
	return &taskService{
		taskRepo:    taskRepo,
		userRepo:    userRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

const (
	branchLimit = 10
	mergedCap   = 30
)

var (
	completedWords   = []string{"이미", "완료", "끝난", "다 한", "한 거", "한 것"}
	openWords        = []string{"미완료", "남은", "해야", "할"}
	globalWords      = []string{"전체", "모든", "전부", "다른", "말고"}
	meetingScopeOff  = []string{"전체", "모든", "전부"}
	demonstrativeRef = []string{"저 회의", "그 회의", "이 회의", "거기"}
	myTaskWords      = []string{
		"내가", "나의", "내 할일", "내 할 일", "나는?", "나는", "내꺼는?", "내꺼는",
		"내가?", "해야 될", "해야될", "해야 되는", "해야되는", "남은", "미완료",
		"할일", "할 일", "뭐야", "뭐있", "뭐 있",
	}
	otherPeopleWords = []string{"다른 사람", "다른사람", "다른 담당", "다른담당"}
	otherHintWords   = []string{
		"다른", "다름", "딴", "사람", "담당", "팀원", "멤버", "누가",
		"아무", "모두", "전체", "나머지", "누구", "그외", "그 외",
		"다른이", "다른 이", "다른애", "다른 애",
	}
)

// Resolve answers a task question. Branches are tried in a fixed order:
// completed work, the requester's own tasks, other people's tasks, the whole
// context meeting, then a named assignee. The first branch whose trigger
// matches owns the reply.
func (s *taskService) Resolve(ctx context.Context, req Request) (string, []entities.TaskRecord) {
	lowered := strings.ToLower(req.Query)

	requesterName := ""
	if user, err := s.userRepo.FindByID(ctx, req.RequesterID); err == nil {
		requesterName = user.Name
	} else {
		s.logger.Warn("requester lookup failed", zap.Error(err))
	}

	otherNames, err := s.userRepo.ListNames(ctx, &req.RequesterID)
	if err != nil {
		s.logger.Warn("user name scan failed", zap.Error(err))
	}

	// a third-party name without a meeting back-reference widens the scope
	// past the context meeting
	hasMeetingRef := HasMeetingReference(req.Query)
	foundName := ""
	for _, name := range otherNames {
		if strings.Contains(req.Query, name) {
			foundName = name
			if !hasMeetingRef {
				req.ContextMeetingID = nil
			}
			break
		}
	}

	hasGlobal := containsAny(lowered, globalWords)

	if req.ContextMeetingID == nil && !hasGlobal && containsAny(lowered, demonstrativeRef) {
		return "어떤 회의인지 먼저 말씀해주세요! 😊\n예: '채용 전략 회의에서 할 일'", nil
	}

	status, statusText := classifyStatus(lowered)

	if containsAny(lowered, completedWords) {
		return s.resolveCompleted(ctx, req, lowered)
	}

	if containsAny(lowered, myTaskWords) || isCorrection(lowered) {
		return s.resolveMine(ctx, req, lowered, requesterName, status, statusText)
	}

	if containsAny(lowered, otherPeopleWords) ||
		(strings.Contains(lowered, "회의에서") && containsAny(lowered, []string{"다른 사람", "다른사람", "아무도", "전체", "모두"})) {
		return s.resolveOthers(ctx, req, status, false)
	}

	if req.ContextMeetingID != nil && foundName == "" {
		if containsAny(lowered, otherHintWords) {
			return s.resolveOthers(ctx, req, status, true)
		}
		return s.resolveMeeting(ctx, req, status)
	}

	return s.resolveAssignee(ctx, req, lowered, foundName, status, statusText)
}

func classifyStatus(lowered string) (entities.TaskStatus, string) {
	if containsAny(lowered, []string{"완료", "끝난", "완료한"}) {
		return entities.TaskStatusCompleted, "완료한"
	}
	if containsAny(lowered, openWords) {
		return entities.TaskStatusTodo, "해야 할"
	}
	return entities.TaskStatusTodo, ""
}

// isCorrection catches "아니, 할일 말이야" style restatements
func isCorrection(lowered string) bool {
	return strings.HasPrefix(lowered, "아니") &&
		containsAny(lowered, []string{"할일", "할 일", "task"})
}

// branch 1: work already done
func (s *taskService) resolveCompleted(ctx context.Context, req Request, lowered string) (string, []entities.TaskRecord) {
	status := entities.TaskStatusCompleted
	meetingID := req.ContextMeetingID
	if meetingID != nil && containsAny(lowered, meetingScopeOff) {
		meetingID = nil
	}

	records, err := s.fetchMerged(ctx, repositories.TaskFilters{
		UserID:    &req.RequesterID,
		MeetingID: meetingID,
		Status:    &status,
		Limit:     branchLimit,
	}, s.actionFilters(req, meetingID, &status))
	if err != nil {
		return storeUnreachableReply, nil
	}

	if len(records) == 0 {
		return "아직 완료한 일이 없어요! 😊", nil
	}
	return presenter.FormatMyTasks(records, "완료한"), records
}

// branch 2: the requester's own open work
func (s *taskService) resolveMine(ctx context.Context, req Request, lowered, requesterName string, status entities.TaskStatus, statusText string) (string, []entities.TaskRecord) {
	now := s.now()
	scoped := req.ContextMeetingID != nil && !containsAny(lowered, []string{"전체", "모든", "다", "전부"})

	if scoped {
		records, err := s.fetchMerged(ctx, repositories.TaskFilters{
			UserID:       &req.RequesterID,
			MeetingID:    req.ContextMeetingID,
			Status:       &status,
			OverdueFirst: true,
			Now:          now,
			Limit:        branchLimit,
		}, s.actionFilters(req, req.ContextMeetingID, &status))
		if err != nil {
			return storeUnreachableReply, nil
		}

		title := s.meetingTitle(ctx, records, req.ContextMeetingID)

		if len(records) == 0 {
			if title != "" {
				if requesterName != "" {
					return fmt.Sprintf("%s에서 %s님이 맡은 일이 없어요! 😊", title, requesterName), nil
				}
				return fmt.Sprintf("%s에서 맡은 일이 없어요! 😊", title), nil
			}
			if requesterName != "" {
				return fmt.Sprintf("이 회의에서 %s님이 맡은 일이 없어요! 😊", requesterName), nil
			}
			return "이 회의에서 맡은 일이 없어요! 😊", nil
		}
		return presenter.FormatMyMeetingTasks(records, title), records
	}

	dueFrom := dayStart(now)
	records, err := s.fetchMerged(ctx, repositories.TaskFilters{
		UserID:       &req.RequesterID,
		Status:       &status,
		DueFrom:      &dueFrom,
		OverdueFirst: true,
		Now:          now,
		Limit:        branchLimit,
	}, s.actionFilters(req, nil, &status))
	if err != nil {
		return storeUnreachableReply, nil
	}

	if len(records) == 0 {
		if statusText != "" {
			if requesterName != "" {
				return fmt.Sprintf("%s님의 %s 일이 없어요! 😊", requesterName, statusText), nil
			}
			return fmt.Sprintf("%s 일이 없어요! 😊", statusText), nil
		}
		if requesterName != "" {
			return fmt.Sprintf("%s님이 아직 맡은 일이 없어요! 😊", requesterName), nil
		}
		return "아직 맡은 일이 없어요! 😊", nil
	}
	return presenter.FormatMyTasks(records, statusText), records
}

// branch 3: everyone else's work within the context meeting. hinted is set
// when the trigger was the loose hint vocabulary rather than the explicit
// "other people" phrasing.
func (s *taskService) resolveOthers(ctx context.Context, req Request, status entities.TaskStatus, hinted bool) (string, []entities.TaskRecord) {
	if req.ContextMeetingID == nil {
		return "어떤 회의의 담당자를 보고 싶으신가요? 😊", nil
	}

	records, err := s.fetchMerged(ctx, repositories.TaskFilters{
		ExcludeUserID: &req.RequesterID,
		MeetingID:     req.ContextMeetingID,
		Status:        &status,
		OverdueFirst:  true,
		Now:           s.now(),
		Limit:         branchLimit,
	}, s.actionFilters(req, req.ContextMeetingID, &status))
	if err != nil {
		return storeUnreachableReply, nil
	}

	title := s.meetingTitle(ctx, records, req.ContextMeetingID)

	if len(records) == 0 {
		prefix := ""
		if hinted {
			prefix = "네, "
		}
		if title != "" {
			return fmt.Sprintf("%s%s에서 다른 사람이 맡은 할 일은 없어요! 😊", prefix, title), nil
		}
		return fmt.Sprintf("%s이 회의에서 다른 사람이 맡은 할 일은 없어요! 😊", prefix), nil
	}
	return presenter.FormatMeetingTasks(records, title), records
}

// branch 4: every task decided in the context meeting
func (s *taskService) resolveMeeting(ctx context.Context, req Request, status entities.TaskStatus) (string, []entities.TaskRecord) {
	records, err := s.fetchMerged(ctx, repositories.TaskFilters{
		MeetingID:    req.ContextMeetingID,
		Status:       &status,
		OverdueFirst: true,
		Now:          s.now(),
		Limit:        branchLimit,
	}, s.actionFilters(req, req.ContextMeetingID, &status))
	if err != nil {
		return storeUnreachableReply, nil
	}

	title := s.meetingTitle(ctx, records, req.ContextMeetingID)

	if len(records) == 0 {
		if title != "" {
			return fmt.Sprintf("네, %s에서 정한 할 일이 없어요! 😊", title), nil
		}
		return "네, 이 회의에서 정한 할 일이 없어요! 😊", nil
	}
	return presenter.FormatMeetingTasks(records, title), records
}

// branch 5: tasks owned by a person named in the query
func (s *taskService) resolveAssignee(ctx context.Context, req Request, lowered, foundName string, status entities.TaskStatus, statusText string) (string, []entities.TaskRecord) {
	if foundName == "" {
		names, err := s.userRepo.ListNames(ctx, nil)
		if err != nil {
			s.logger.Warn("user name scan failed", zap.Error(err))
		}
		for _, name := range names {
			if strings.Contains(req.Query, name) {
				foundName = name
				break
			}
		}
	}
	if foundName == "" {
		return "담당자 이름을 말씀해주세요! 😊", nil
	}

	globalIntent := containsAny(lowered, []string{"전체", "모든", "전부", "전체에서", "전체적"}) ||
		(strings.Contains(lowered, "다른") && containsAny(lowered, []string{"회의", "일", "할일", "것"}))

	meetingID := req.ContextMeetingID
	if globalIntent {
		meetingID = nil
	}

	records, err := s.fetchMerged(ctx, repositories.TaskFilters{
		AssigneeName: foundName,
		MeetingID:    meetingID,
		Status:       &status,
		OverdueFirst: true,
		Now:          s.now(),
		Limit:        branchLimit,
	}, s.actionFilters(req, meetingID, &status))
	if err != nil {
		return storeUnreachableReply, nil
	}

	if len(records) == 0 {
		if statusText != "" {
			return fmt.Sprintf("%s님이 %s 일을 찾을 수 없어요! 😊", foundName, statusText), nil
		}
		return fmt.Sprintf("%s님이 담당한 일을 찾을 수 없어요! 😊", foundName), nil
	}
	return presenter.FormatAssigneeTasks(records, foundName, statusText), records
}

func (s *taskService) actionFilters(req Request, meetingID *uuid.UUID, status *entities.TaskStatus) repositories.ActionItemFilters {
	f := repositories.ActionItemFilters{Status: status}
	if meetingID != nil {
		f.MeetingID = meetingID
	} else {
		hostID := req.RequesterID
		f.HostUserID = &hostID
	}
	return f
}

// storeUnreachableReply is the fixed sentence for a database that could not
// be reached
const storeUnreachableReply = "데이터베이스 연결 실패"

// fetchMerged runs both stores and merges their rows into one due-ordered
// list. An unreachable store aborts the turn; a failed query degrades to
// whatever the other store returned.
func (s *taskService) fetchMerged(ctx context.Context, tf repositories.TaskFilters, af repositories.ActionItemFilters) ([]entities.TaskRecord, error) {
	tasks, err := s.taskRepo.FindTasks(ctx, tf)
	if err != nil {
		if apperrors.IsConnectivity(err) {
			s.logger.Error("task store unreachable", zap.Error(apperrors.ErrConnectivity(err)))
			return nil, err
		}
		s.logger.Error("task fetch failed", zap.Error(err))
	}

	items, err := s.taskRepo.FindActionItems(ctx, af)
	if err != nil {
		if apperrors.IsConnectivity(err) {
			s.logger.Error("task store unreachable", zap.Error(apperrors.ErrConnectivity(err)))
			return nil, err
		}
		s.logger.Error("action item fetch failed", zap.Error(err))
	}

	return MergeRecords(tasks, items), nil
}

// MergeRecords combines explicit tasks and normalized action items into one
// list ordered by due date ascending, undated rows last, capped.
func MergeRecords(tasks []*entities.Task, items []entities.TaskRecord) []entities.TaskRecord {
	combined := make([]entities.TaskRecord, 0, len(tasks)+len(items))
	for _, t := range tasks {
		combined = append(combined, entities.RecordFromTask(t))
	}
	combined = append(combined, items...)

	sort.SliceStable(combined, func(i, j int) bool {
		di, dj := combined[i].DueDate, combined[j].DueDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})

	if len(combined) > mergedCap {
		combined = combined[:mergedCap]
	}
	return combined
}

func (s *taskService) meetingTitle(ctx context.Context, records []entities.TaskRecord, meetingID *uuid.UUID) string {
	for _, rec := range records {
		if rec.MeetingTitle != "" {
			return rec.MeetingTitle
		}
	}
	if meetingID == nil {
		return ""
	}
	meeting, err := s.meetingRepo.FindByID(ctx, *meetingID)
	if err != nil {
		return ""
	}
	return meeting.Title
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
