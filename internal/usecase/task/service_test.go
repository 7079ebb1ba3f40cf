package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

var testNow = time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

type fakeTaskRepo struct {
	tasks       []*entities.Task
	items       []entities.TaskRecord
	err         error
	taskFilters []repositories.TaskFilters
	itemFilters []repositories.ActionItemFilters
}

func (r *fakeTaskRepo) FindTasks(ctx context.Context, f repositories.TaskFilters) ([]*entities.Task, error) {
	r.taskFilters = append(r.taskFilters, f)
	if r.err != nil {
		return nil, r.err
	}
	return r.tasks, nil
}

func (r *fakeTaskRepo) FindActionItems(ctx context.Context, f repositories.ActionItemFilters) ([]entities.TaskRecord, error) {
	r.itemFilters = append(r.itemFilters, f)
	if r.err != nil {
		return nil, r.err
	}
	return r.items, nil
}

type fakeUserRepo struct {
	requester *entities.User
	others    []string
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if r.requester != nil && r.requester.ID == id {
		return r.requester, nil
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) FindByName(ctx context.Context, name string) (*entities.User, error) {
	return nil, errors.New("user not found")
}

func (r *fakeUserRepo) ListNames(ctx context.Context, excludeID *uuid.UUID) ([]string, error) {
	if excludeID == nil && r.requester != nil {
		return append([]string{r.requester.Name}, r.others...), nil
	}
	return r.others, nil
}

type fakeMeetingRepo struct {
	meeting *entities.Meeting
}

func (r *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	if r.meeting != nil && r.meeting.ID == id {
		return r.meeting, nil
	}
	return nil, errors.New("meeting not found")
}

func (r *fakeMeetingRepo) Search(ctx context.Context, f repositories.MeetingFilters) ([]*entities.Meeting, error) {
	return nil, nil
}

func (r *fakeMeetingRepo) Count(ctx context.Context, f repositories.MeetingFilters) (int64, error) {
	return 0, nil
}

func (r *fakeMeetingRepo) DistinctTitles(ctx context.Context, hostUserID *uuid.UUID) ([]string, error) {
	return nil, nil
}

func (r *fakeMeetingRepo) FindByCuratedKeyword(ctx context.Context, keyword string, limit int) ([]*entities.Meeting, error) {
	return nil, nil
}

type taskFixture struct {
	svc         *taskService
	repo        *fakeTaskRepo
	requesterID uuid.UUID
	meetingID   uuid.UUID
}

func newTaskFixture(repo *fakeTaskRepo) taskFixture {
	requesterID := uuid.New()
	meeting := &entities.Meeting{ID: uuid.New(), Title: "채용 전략 회의"}

	users := &fakeUserRepo{
		requester: &entities.User{ID: requesterID, Name: "김민준"},
		others:    []string{"이서연", "박지훈"},
	}

	svc := NewTaskService(repo, users, &fakeMeetingRepo{meeting: meeting}, zap.NewNop()).(*taskService)
	svc.now = func() time.Time { return testNow }

	return taskFixture{svc: svc, repo: repo, requesterID: requesterID, meetingID: meeting.ID}
}

func taskDue(title string, due *time.Time, status entities.TaskStatus) *entities.Task {
	return &entities.Task{ID: uuid.New(), Title: title, DueDate: due, Status: status}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("completed work", func(t *testing.T) {
		repo := &fakeTaskRepo{
			tasks: []*entities.Task{taskDue("채용 공고 게시", nil, entities.TaskStatusCompleted)},
		}
		fx := newTaskFixture(repo)

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "내가 이미 완료한 일 뭐야?",
			RequesterID: fx.requesterID,
		})

		require.Len(t, records, 1)
		assert.Contains(t, message, "📋 완료한 일 1개:")
		assert.Contains(t, message, "✅")

		require.Len(t, repo.taskFilters, 1)
		f := repo.taskFilters[0]
		require.NotNil(t, f.Status)
		assert.Equal(t, entities.TaskStatusCompleted, *f.Status)
		require.NotNil(t, f.UserID)
		assert.Equal(t, fx.requesterID, *f.UserID)
	})

	t.Run("nothing completed yet", func(t *testing.T) {
		fx := newTaskFixture(&fakeTaskRepo{})

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "이미 끝난 일 있어?",
			RequesterID: fx.requesterID,
		})

		assert.Equal(t, "아직 완료한 일이 없어요! 😊", message)
		assert.Empty(t, records)
	})

	t.Run("my open work across all meetings", func(t *testing.T) {
		due := testNow.Add(24 * time.Hour)
		repo := &fakeTaskRepo{
			tasks: []*entities.Task{taskDue("이력서 검토", &due, entities.TaskStatusTodo)},
			items: []entities.TaskRecord{{
				ID: uuid.New(), Title: "채용 일정 공유", Status: entities.TaskStatusTodo, SourceTable: "action_item",
			}},
		}
		fx := newTaskFixture(repo)

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "내가 해야 할 일 뭐야?",
			RequesterID: fx.requesterID,
		})

		require.Len(t, records, 2)
		assert.Equal(t, "이력서 검토", records[0].Title)
		assert.Equal(t, "채용 일정 공유", records[1].Title)
		assert.Contains(t, message, "📋 해야 할 일 2개:")

		f := repo.taskFilters[0]
		require.NotNil(t, f.DueFrom)
		assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), *f.DueFrom)
		assert.True(t, f.OverdueFirst)

		// outside a meeting context, action items scope to the host
		require.NotNil(t, repo.itemFilters[0].HostUserID)
		assert.Equal(t, fx.requesterID, *repo.itemFilters[0].HostUserID)
	})

	t.Run("my work scoped to the context meeting", func(t *testing.T) {
		fx := newTaskFixture(&fakeTaskRepo{})
		meeting := &entities.Meeting{ID: fx.meetingID, Title: "채용 전략 회의"}
		task := taskDue("면접 질문 정리", nil, entities.TaskStatusTodo)
		task.Meeting = meeting
		task.MeetingID = meeting.ID
		fx.repo.tasks = []*entities.Task{task}

		message, records := fx.svc.Resolve(ctx, Request{
			Query:            "내 할 일 보여줄래?",
			RequesterID:      fx.requesterID,
			ContextMeetingID: &fx.meetingID,
		})

		require.Len(t, records, 1)
		assert.Contains(t, message, "📋 채용 전략 회의 회의에서 맡은 할 일 1개:")

		f := fx.repo.taskFilters[0]
		require.NotNil(t, f.MeetingID)
		assert.Equal(t, fx.meetingID, *f.MeetingID)
	})

	t.Run("other people's work in the context meeting", func(t *testing.T) {
		repo := &fakeTaskRepo{
			tasks: []*entities.Task{{
				ID: uuid.New(), Title: "캠페인 예산 정리", AssigneeName: "박지훈",
				Status: entities.TaskStatusTodo,
			}},
		}
		fx := newTaskFixture(repo)

		message, records := fx.svc.Resolve(ctx, Request{
			Query:            "다른 사람은 뭐 맡았어?",
			RequesterID:      fx.requesterID,
			ContextMeetingID: &fx.meetingID,
		})

		require.Len(t, records, 1)
		assert.Contains(t, message, "👤 박지훈")

		f := repo.taskFilters[0]
		require.NotNil(t, f.ExcludeUserID)
		assert.Equal(t, fx.requesterID, *f.ExcludeUserID)
	})

	t.Run("named assignee without a meeting reference drops the context", func(t *testing.T) {
		repo := &fakeTaskRepo{
			tasks: []*entities.Task{{
				ID: uuid.New(), Title: "화면 설계 검토", AssigneeName: "이서연",
				Status: entities.TaskStatusTodo,
			}},
		}
		fx := newTaskFixture(repo)

		message, records := fx.svc.Resolve(ctx, Request{
			Query:            "이서연 담당 업무 보여줘",
			RequesterID:      fx.requesterID,
			ContextMeetingID: &fx.meetingID,
		})

		require.Len(t, records, 1)
		assert.Contains(t, message, "📋 이서연님이 담당한 일 1개:")

		f := repo.taskFilters[0]
		assert.Equal(t, "이서연", f.AssigneeName)
		assert.Nil(t, f.MeetingID)
	})

	t.Run("named assignee with a meeting reference keeps the context", func(t *testing.T) {
		repo := &fakeTaskRepo{
			tasks: []*entities.Task{{
				ID: uuid.New(), Title: "화면 설계 검토", AssigneeName: "이서연",
				Status: entities.TaskStatusTodo,
			}},
		}
		fx := newTaskFixture(repo)

		fx.svc.Resolve(ctx, Request{
			Query:            "그 회의에서 이서연 담당 업무 보여줘",
			RequesterID:      fx.requesterID,
			ContextMeetingID: &fx.meetingID,
		})

		f := repo.taskFilters[0]
		assert.Equal(t, "이서연", f.AssigneeName)
		require.NotNil(t, f.MeetingID)
		assert.Equal(t, fx.meetingID, *f.MeetingID)
	})

	t.Run("back-reference without any context meeting", func(t *testing.T) {
		fx := newTaskFixture(&fakeTaskRepo{})

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "그 회의에서 정한 업무 보여줘",
			RequesterID: fx.requesterID,
		})

		assert.Contains(t, message, "어떤 회의인지 먼저 말씀해주세요")
		assert.Empty(t, records)
		assert.Empty(t, fx.repo.taskFilters)
	})

	t.Run("no assignee resolvable", func(t *testing.T) {
		fx := newTaskFixture(&fakeTaskRepo{})

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "회의 업무 정리 부탁",
			RequesterID: fx.requesterID,
		})

		assert.Equal(t, "담당자 이름을 말씀해주세요! 😊", message)
		assert.Empty(t, records)
	})

	t.Run("unreachable task store gets the fixed connectivity reply", func(t *testing.T) {
		repo := &fakeTaskRepo{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")}
		fx := newTaskFixture(repo)

		message, records := fx.svc.Resolve(ctx, Request{
			Query:       "내가 해야 할 일 뭐야?",
			RequesterID: fx.requesterID,
		})

		assert.Equal(t, "데이터베이스 연결 실패", message)
		assert.Nil(t, records)
	})
}

func TestMergeRecords(t *testing.T) {
	t.Run("due date ascending with undated rows last", func(t *testing.T) {
		early := testNow.Add(24 * time.Hour)
		late := testNow.Add(96 * time.Hour)

		tasks := []*entities.Task{
			taskDue("기한 없는 일", nil, entities.TaskStatusTodo),
			taskDue("나중 일", &late, entities.TaskStatusTodo),
		}
		items := []entities.TaskRecord{
			{ID: uuid.New(), Title: "급한 일", DueDate: &early, SourceTable: "action_item"},
		}

		merged := MergeRecords(tasks, items)

		require.Len(t, merged, 3)
		assert.Equal(t, "급한 일", merged[0].Title)
		assert.Equal(t, "나중 일", merged[1].Title)
		assert.Equal(t, "기한 없는 일", merged[2].Title)
	})

	t.Run("caps the merged list", func(t *testing.T) {
		var tasks []*entities.Task
		for i := 0; i < 40; i++ {
			tasks = append(tasks, taskDue("일", nil, entities.TaskStatusTodo))
		}
		assert.Len(t, MergeRecords(tasks, nil), 30)
	})
}
