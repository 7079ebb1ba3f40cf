package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

func TestParseReplyCount(t *testing.T) {
	t.Run("list reply states its count", func(t *testing.T) {
		reply := presenter.FormatMeetingListShort([]*entities.Meeting{
			completedMeeting("채용 전략 회의", testNow.Add(-7*24*time.Hour)),
			completedMeeting("마케팅 캠페인 기획", testNow.Add(-3*24*time.Hour)),
		}, 2)
		assert.Equal(t, 2, ParseReplyCount(reply))
	})

	t.Run("two digit count", func(t *testing.T) {
		assert.Equal(t, 12, ParseReplyCount("네, 회의록 12개를 찾았어요! 📋"))
	})

	t.Run("detail reply counts as one", func(t *testing.T) {
		reply := presenter.FormatMeetingDetail(completedMeeting("채용 전략 회의", testNow))
		assert.Equal(t, 1, ParseReplyCount(reply))
	})
}

func TestParseReplyMeetings(t *testing.T) {
	t.Run("detail card round-trips its fields", func(t *testing.T) {
		desc := "3분기 채용 계획 확정"
		m := completedMeeting("채용 전략 회의", time.Date(2025, 10, 8, 10, 0, 0, 0, time.UTC))
		m.Description = &desc
		m.Result = &entities.MeetingResult{Summary: "백엔드 2명 채용 합의"}

		cards := ParseReplyMeetings(presenter.FormatMeetingDetail(m))

		require.Len(t, cards, 1)
		assert.Equal(t, "채용 전략 회의", cards[0].Title)
		assert.Equal(t, "2025년 10월 8일 10:00", cards[0].Date)
		assert.Equal(t, desc, cards[0].Description)
		assert.Equal(t, "백엔드 2명 채용 합의", cards[0].Summary)
	})

	t.Run("list reply yields one card per section", func(t *testing.T) {
		reply := presenter.FormatMeetingListShort([]*entities.Meeting{
			completedMeeting("채용 전략 회의", testNow.Add(-7*24*time.Hour)),
			completedMeeting("마케팅 캠페인 기획", testNow.Add(-3*24*time.Hour)),
		}, 2)

		cards := ParseReplyMeetings(reply)

		require.Len(t, cards, 2)
		assert.Contains(t, cards[0].Title, "채용 전략 회의")
		assert.Contains(t, cards[1].Title, "마케팅 캠페인 기획")
	})

	t.Run("reply without cards", func(t *testing.T) {
		assert.Empty(t, ParseReplyMeetings("❌ 어제에 회의가 없어요."))
	})
}
