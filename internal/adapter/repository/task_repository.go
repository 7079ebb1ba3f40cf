package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// FindTasks retrieves explicit tasks matching the filters
func (r *taskRepository) FindTasks(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, error) {
	var tasks []*entities.Task

	query := r.db.WithContext(ctx).Model(&entities.Task{}).Preload("Meeting")

	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}
	if filters.ExcludeUserID != nil {
		query = query.Where("user_id != ?", *filters.ExcludeUserID)
	}
	if filters.AssigneeName != "" {
		query = query.Where("assignee_name ILIKE ?", likePattern(filters.AssigneeName))
	}
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.DueFrom != nil {
		query = query.Where("due_date >= ?", *filters.DueFrom)
	}

	if filters.OverdueFirst {
		query = query.Clauses(clause.OrderBy{
			Expression: gorm.Expr("CASE WHEN due_date < ? THEN 0 ELSE 1 END, due_date ASC", filters.Now),
		})
	} else {
		query = query.Order("updated_at DESC")
	}

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	err := query.Find(&tasks).Error
	return tasks, err
}

// FindActionItems retrieves AI-derived action items normalized into the
// shared task record shape
func (r *taskRepository) FindActionItems(ctx context.Context, filters repositories.ActionItemFilters) ([]entities.TaskRecord, error) {
	var items []*entities.ActionItem

	query := r.db.WithContext(ctx).Model(&entities.ActionItem{}).
		Preload("MeetingResult.Meeting").
		Preload("Assignee").
		Joins("JOIN meeting_results mr ON mr.id = action_items.meeting_result_id").
		Joins("JOIN meetings m ON m.id = mr.meeting_id")

	switch {
	case filters.MeetingID != nil:
		query = query.Where("m.id = ?", *filters.MeetingID)
	case filters.HostUserID != nil:
		query = query.Where("m.host_user_id = ?", *filters.HostUserID)
	default:
		return nil, nil
	}

	if filters.Status != nil {
		query = query.Where("action_items.is_completed = ?", *filters.Status == entities.TaskStatusCompleted)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	err := query.Order("action_items.due_date ASC").Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}

	records := make([]entities.TaskRecord, 0, len(items))
	for _, item := range items {
		records = append(records, normalizeActionItem(item))
	}
	return records, nil
}

// normalizeActionItem maps an action item onto the shape shared with
// explicit tasks
func normalizeActionItem(item *entities.ActionItem) entities.TaskRecord {
	rec := entities.TaskRecord{
		ID:           item.ID,
		Title:        item.Task,
		AssigneeName: "미지정",
		DueDate:      item.DueDate,
		Status:       item.Status(),
		Source:       item.Source,
		SourceTable:  "action_item",
	}
	if item.Assignee != nil {
		rec.AssigneeName = item.Assignee.Name
	}
	if item.MeetingResult != nil {
		rec.MeetingID = item.MeetingResult.MeetingID
		if item.MeetingResult.Meeting != nil {
			rec.MeetingTitle = item.MeetingResult.Meeting.Title
		}
	}
	return rec
}
