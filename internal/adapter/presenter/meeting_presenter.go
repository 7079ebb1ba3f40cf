package presenter

import (
	"fmt"
	"strings"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

const sectionDivider = "━━━━━━━━━━━━━━━━━━━━━━"

// StatusLabel maps a lifecycle state to the word used in chat replies.
func StatusLabel(status entities.MeetingStatus) string {
	switch status {
	case entities.MeetingStatusCompleted:
		return "완료된"
	case entities.MeetingStatusScheduled:
		return "예정된"
	case entities.MeetingStatusRecording:
		return "진행중"
	case entities.MeetingStatusCancelled:
		return "취소된"
	}
	return string(status)
}

// FormatMeetingDetail renders the full card for one meeting.
func FormatMeetingDetail(m *entities.Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📌 %s\n", m.Title)
	fmt.Fprintf(&b, "📅 날짜: %s\n", m.ScheduledAt.Format("2006년 1월 2일 15:04"))

	if names := participantNames(m); len(names) > 0 {
		fmt.Fprintf(&b, "👥 참석자: %s\n", strings.Join(names, ", "))
	}

	if desc := m.DescriptionText(); desc != "" {
		fmt.Fprintf(&b, "📝 설명: %s\n", desc)
	}

	if m.Result != nil {
		if m.Result.Purpose != "" {
			fmt.Fprintf(&b, "🎯 목적: %s\n", m.Result.Purpose)
		}
		if m.Result.Agenda != "" {
			fmt.Fprintf(&b, "🗂️ 안건: %s\n", m.Result.Agenda)
		}
		if m.Result.Summary != "" {
			fmt.Fprintf(&b, "📋 요약: %s\n", m.Result.Summary)
		}
		if m.Result.ImportanceLevel != "" {
			fmt.Fprintf(&b, "⭐ 중요도: %s", importanceLabel(m.Result.ImportanceLevel))
			if m.Result.ImportanceReason != "" {
				fmt.Fprintf(&b, " (%s)", m.Result.ImportanceReason)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatMeetingDetailForJob renders the detail card with the section the
// requester's role cares about pulled to the front.
func FormatMeetingDetailForJob(m *entities.Meeting, job entities.UserJob) string {
	detail := FormatMeetingDetail(m)
	if job == "" || job == entities.JobNone {
		return detail
	}
	return fmt.Sprintf("%s\n\n💡 %s 관점에서 관련 있는 회의예요!", detail, jobLabel(job))
}

// FormatMeetingListShort renders a compact numbered list. total is the full
// result size when it exceeds the shown slice, zero otherwise; when set, a
// "show the rest" hint trails the list.
func FormatMeetingListShort(meetings []*entities.Meeting, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "네, 회의록 %d개를 찾았어요! 📋\n\n", listTotal(meetings, total))
	for i, m := range meetings {
		fmt.Fprintf(&b, "%d. 📌 %s (%s)\n", i+1, m.Title, m.ScheduledAt.Format("1월 2일"))
		if summary := m.Summary(); summary != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(summary, 50))
		}
		b.WriteString(sectionDivider + "\n")
	}

	if total > len(meetings) {
		fmt.Fprintf(&b, "\n📢 %d개 중 %d개만 보여드렸어요. '나머지 보여줘'라고 말씀해주세요!", total, len(meetings))
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatMeetingPage renders a continuation of an earlier list, numbering
// entries from start+1 and noting how many remain after this page.
func FormatMeetingPage(meetings []*entities.Meeting, start, total int) string {
	if len(meetings) == 0 {
		return "더 보여드릴 회의가 없어요! 😊"
	}

	var b strings.Builder
	b.WriteString("네, 이어서 보여드릴게요! 📋\n\n")
	for i, m := range meetings {
		fmt.Fprintf(&b, "%d. 📌 %s (%s)\n", start+i+1, m.Title, m.ScheduledAt.Format("1월 2일"))
		if summary := m.Summary(); summary != "" {
			fmt.Fprintf(&b, "   %s\n", truncate(summary, 50))
		}
		b.WriteString(sectionDivider + "\n")
	}

	if remaining := total - start - len(meetings); remaining > 0 {
		fmt.Fprintf(&b, "\n📢 아직 %d개가 더 남아있어요. '나머지 보여줘'라고 말씀해주세요!", remaining)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatCountResult renders the answer to a "how many" question: the total
// plus titles and dates for up to the first ten meetings.
func FormatCountResult(count int64, meetings []*entities.Meeting) string {
	if count == 0 {
		return "해당 조건의 회의를 찾을 수 없었어요. 😢"
	}

	var lines []string
	for i, m := range meetings {
		if i >= 10 {
			break
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", m.Title, m.ScheduledAt.Format("1월 2일")))
	}

	msg := fmt.Sprintf("총 %d개의 회의가 있어요! 📊\n\n%s", count, strings.Join(lines, "\n"))
	if count > 10 {
		msg += "\n\n..."
	}
	return msg
}

// OffTopicGuidance is the reply for questions outside the engine's domain.
func OffTopicGuidance() string {
	return `죄송해요, 저는 회의록 검색 전용 챗봇이에요! 🗂️

다음과 같은 질문만 도와드릴 수 있어요:
✅ 마케팅 회의 있었어?
✅ 이번주 기획 회의록 찾아줘
✅ 디자인 논의 내용 알려줘
✅ 최근 개발 미팅 정리해줘

회의록 검색이 필요하시면 '회의', '미팅', '회의록' 같은
단어와 함께 질문해주세요! 😊`
}

func participantNames(m *entities.Meeting) []string {
	names := make([]string, 0, len(m.Participants))
	for _, p := range m.Participants {
		names = append(names, p.Name)
	}
	return names
}

func importanceLabel(level entities.ImportanceLevel) string {
	switch level {
	case entities.ImportanceHigh:
		return "높음"
	case entities.ImportanceMedium:
		return "보통"
	case entities.ImportanceLow:
		return "낮음"
	}
	return string(level)
}

func jobLabel(job entities.UserJob) string {
	switch job {
	case entities.JobProjectManager:
		return "기획"
	case entities.JobFrontendDeveloper:
		return "프론트엔드"
	case entities.JobBackendDeveloper:
		return "백엔드"
	case entities.JobDatabaseAdministrator:
		return "데이터베이스"
	case entities.JobSecurityDeveloper:
		return "보안"
	}
	return string(job)
}

func listTotal(meetings []*entities.Meeting, total int) int {
	if total > len(meetings) {
		return total
	}
	return len(meetings)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
