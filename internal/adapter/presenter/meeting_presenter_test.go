package presenter

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

func sampleMeeting() *entities.Meeting {
	desc := "3분기 채용 계획 확정"
	return &entities.Meeting{
		ID:          uuid.New(),
		Title:       "채용 전략 회의",
		Description: &desc,
		ScheduledAt: time.Date(2025, 10, 8, 10, 0, 0, 0, time.UTC),
		Status:      entities.MeetingStatusCompleted,
		Participants: []*entities.Participant{
			{Name: "김민준"},
			{Name: "이서연"},
		},
		Result: &entities.MeetingResult{
			Purpose:          "채용 일정과 인원 확정",
			Agenda:           "백엔드/프론트엔드 채용",
			Summary:          "백엔드 2명, 프론트엔드 1명 채용 합의",
			ImportanceLevel:  entities.ImportanceHigh,
			ImportanceReason: "분기 목표와 직결",
		},
	}
}

func TestFormatMeetingDetail(t *testing.T) {
	t.Run("full card", func(t *testing.T) {
		card := FormatMeetingDetail(sampleMeeting())

		assert.Contains(t, card, "📌 채용 전략 회의")
		assert.Contains(t, card, "📅 날짜: 2025년 10월 8일 10:00")
		assert.Contains(t, card, "👥 참석자: 김민준, 이서연")
		assert.Contains(t, card, "📝 설명: 3분기 채용 계획 확정")
		assert.Contains(t, card, "🎯 목적: 채용 일정과 인원 확정")
		assert.Contains(t, card, "📋 요약: 백엔드 2명, 프론트엔드 1명 채용 합의")
		assert.Contains(t, card, "⭐ 중요도: 높음 (분기 목표와 직결)")
	})

	t.Run("bare meeting renders title and date only", func(t *testing.T) {
		card := FormatMeetingDetail(&entities.Meeting{
			Title:       "주간 공유",
			ScheduledAt: time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC),
		})

		assert.Equal(t, "📌 주간 공유\n📅 날짜: 2025년 10월 13일 09:00", card)
	})

	t.Run("job variant appends the persona note", func(t *testing.T) {
		card := FormatMeetingDetailForJob(sampleMeeting(), entities.JobBackendDeveloper)
		assert.Contains(t, card, "💡 백엔드 관점에서 관련 있는 회의예요!")

		plain := FormatMeetingDetailForJob(sampleMeeting(), entities.JobNone)
		assert.NotContains(t, plain, "💡")
	})
}

func TestFormatMeetingListShort(t *testing.T) {
	meetings := []*entities.Meeting{
		sampleMeeting(),
		{Title: "마케팅 캠페인 기획", ScheduledAt: time.Date(2025, 10, 12, 14, 0, 0, 0, time.UTC)},
	}

	t.Run("numbers every entry", func(t *testing.T) {
		out := FormatMeetingListShort(meetings, 2)

		assert.Contains(t, out, "네, 회의록 2개를 찾았어요! 📋")
		assert.Contains(t, out, "1. 📌 채용 전략 회의 (10월 8일)")
		assert.Contains(t, out, "2. 📌 마케팅 캠페인 기획 (10월 12일)")
		assert.NotContains(t, out, "나머지 보여줘")
	})

	t.Run("larger total adds the pagination hint", func(t *testing.T) {
		out := FormatMeetingListShort(meetings, 12)

		assert.Contains(t, out, "네, 회의록 12개를 찾았어요! 📋")
		assert.Contains(t, out, "📢 12개 중 2개만 보여드렸어요. '나머지 보여줘'라고 말씀해주세요!")
	})

	t.Run("long summaries truncate", func(t *testing.T) {
		long := strings.Repeat("가", 60)
		out := FormatMeetingListShort([]*entities.Meeting{{
			Title:       "주간 공유",
			ScheduledAt: time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC),
			Result:      &entities.MeetingResult{Summary: long},
		}}, 1)

		assert.Contains(t, out, strings.Repeat("가", 50)+"...")
		assert.NotContains(t, out, strings.Repeat("가", 51))
	})
}

func TestFormatMeetingPage(t *testing.T) {
	page := []*entities.Meeting{
		{Title: "열한 번째 회의", ScheduledAt: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)},
		{Title: "열두 번째 회의", ScheduledAt: time.Date(2025, 10, 2, 9, 0, 0, 0, time.UTC)},
	}

	t.Run("continues the numbering", func(t *testing.T) {
		out := FormatMeetingPage(page, 10, 15)

		assert.Contains(t, out, "네, 이어서 보여드릴게요! 📋")
		assert.Contains(t, out, "11. 📌 열한 번째 회의")
		assert.Contains(t, out, "12. 📌 열두 번째 회의")
		assert.Contains(t, out, "📢 아직 3개가 더 남아있어요.")
	})

	t.Run("final page has no remainder note", func(t *testing.T) {
		out := FormatMeetingPage(page, 10, 12)
		assert.NotContains(t, out, "더 남아있어요")
	})

	t.Run("empty page", func(t *testing.T) {
		assert.Equal(t, "더 보여드릴 회의가 없어요! 😊", FormatMeetingPage(nil, 10, 10))
	})
}

func TestFormatCountResult(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		assert.Equal(t, "해당 조건의 회의를 찾을 수 없었어요. 😢", FormatCountResult(0, nil))
	})

	t.Run("lists up to ten meetings", func(t *testing.T) {
		var meetings []*entities.Meeting
		for i := 0; i < 12; i++ {
			meetings = append(meetings, &entities.Meeting{
				Title:       fmt.Sprintf("회의 %d", i+1),
				ScheduledAt: time.Date(2025, 10, 1+i, 9, 0, 0, 0, time.UTC),
			})
		}

		out := FormatCountResult(12, meetings)

		assert.Contains(t, out, "총 12개의 회의가 있어요! 📊")
		assert.Contains(t, out, "- 회의 10 (10월 10일)")
		assert.NotContains(t, out, "- 회의 11")
		assert.Contains(t, out, "...")
	})
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "완료된", StatusLabel(entities.MeetingStatusCompleted))
	assert.Equal(t, "예정된", StatusLabel(entities.MeetingStatusScheduled))
	assert.Equal(t, "진행중", StatusLabel(entities.MeetingStatusRecording))
	assert.Equal(t, "취소된", StatusLabel(entities.MeetingStatusCancelled))
}
