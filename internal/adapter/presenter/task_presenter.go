package presenter

import (
	"fmt"
	"strings"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

func taskLine(i int, rec entities.TaskRecord) string {
	emoji := "⏳"
	if rec.Status == entities.TaskStatusCompleted {
		emoji = "✅"
	}

	due := "📅 기한 없음"
	if rec.DueDate != nil {
		due = fmt.Sprintf("📅 %s", rec.DueDate.Format("1월 2일"))
	}

	return fmt.Sprintf("%s %d. %s\n   %s\n", emoji, i, rec.Title, due)
}

// FormatMyTasks renders the requester's own task list. statusText carries
// the qualifier from the query ("완료한", "해야 할") or empty.
func FormatMyTasks(records []entities.TaskRecord, statusText string) string {
	var b strings.Builder

	if statusText != "" {
		fmt.Fprintf(&b, "📋 %s 일 %d개:\n\n", statusText, len(records))
	} else {
		fmt.Fprintf(&b, "📋 맡은 할 일 %d개:\n\n", len(records))
	}

	for i, rec := range records {
		b.WriteString(taskLine(i+1, rec))
		if rec.MeetingTitle != "" {
			fmt.Fprintf(&b, "   🗂️ %s\n", rec.MeetingTitle)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatMeetingTasks renders every assignee's tasks within one meeting.
func FormatMeetingTasks(records []entities.TaskRecord, meetingTitle string) string {
	var b strings.Builder

	if meetingTitle != "" {
		fmt.Fprintf(&b, "📋 %s 회의의 할 일 %d개:\n\n", meetingTitle, len(records))
	} else {
		fmt.Fprintf(&b, "📋 이 회의의 할 일 %d개:\n\n", len(records))
	}

	for i, rec := range records {
		b.WriteString(taskLine(i+1, rec))
		if rec.AssigneeName != "" {
			fmt.Fprintf(&b, "   👤 %s\n", rec.AssigneeName)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatMyMeetingTasks renders the requester's tasks within one meeting.
func FormatMyMeetingTasks(records []entities.TaskRecord, meetingTitle string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 %s 회의에서 맡은 할 일 %d개:\n\n", meetingTitle, len(records))
	for i, rec := range records {
		b.WriteString(taskLine(i+1, rec))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatAssigneeTasks renders tasks owned by a named person.
func FormatAssigneeTasks(records []entities.TaskRecord, name, statusText string) string {
	var b strings.Builder

	if statusText != "" {
		fmt.Fprintf(&b, "📋 %s님이 %s 일 %d개:\n\n", name, statusText, len(records))
	} else {
		fmt.Fprintf(&b, "📋 %s님이 담당한 일 %d개:\n\n", name, len(records))
	}

	for i, rec := range records {
		b.WriteString(taskLine(i+1, rec))
		if rec.MeetingTitle != "" {
			fmt.Fprintf(&b, "   🗂️ %s\n", rec.MeetingTitle)
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
