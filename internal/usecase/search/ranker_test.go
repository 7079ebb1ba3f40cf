package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

func rankMeeting(title string, at time.Time) *entities.Meeting {
	return &entities.Meeting{Title: title, ScheduledAt: at}
}

func TestRankByKeywords(t *testing.T) {
	t.Run("title beats summary beats description", func(t *testing.T) {
		desc := "마케팅 예산을 검토한다"
		byTitle := rankMeeting("마케팅 전략 회의", testNow)
		bySummary := rankMeeting("주간 공유", testNow)
		bySummary.Result = &entities.MeetingResult{Summary: "마케팅 캠페인 진행 상황 공유"}
		byDescription := rankMeeting("분기 결산", testNow)
		byDescription.Description = &desc
		unrelated := rankMeeting("채용 면접", testNow)

		scored := RankByKeywords(
			[]*entities.Meeting{unrelated, byDescription, bySummary, byTitle},
			[]string{"마케팅"},
		)

		require.Len(t, scored, 4)
		assert.Equal(t, "마케팅 전략 회의", scored[0].Meeting.Title)
		assert.Equal(t, 10.0, scored[0].Score)
		assert.Equal(t, "주간 공유", scored[1].Meeting.Title)
		assert.Equal(t, 5.0, scored[1].Score)
		assert.Equal(t, "분기 결산", scored[2].Meeting.Title)
		assert.Equal(t, 3.0, scored[2].Score)
		assert.Equal(t, 0.0, scored[3].Score)
	})

	t.Run("ascii keywords match case-insensitively", func(t *testing.T) {
		m := rankMeeting("API 설계 리뷰", testNow)
		scored := RankByKeywords([]*entities.Meeting{m}, []string{"API"})
		assert.Equal(t, 10.0, scored[0].Score)
	})

	t.Run("equal scores keep input order", func(t *testing.T) {
		first := rankMeeting("주간 공유 1회차", testNow)
		second := rankMeeting("주간 공유 2회차", testNow)

		scored := RankByKeywords([]*entities.Meeting{first, second}, []string{"마케팅"})

		assert.Same(t, first, scored[0].Meeting)
		assert.Same(t, second, scored[1].Meeting)
	})
}

func TestCollapseToSingle(t *testing.T) {
	wrap := func(titles ...string) []ScoredMeeting {
		scored := make([]ScoredMeeting, len(titles))
		for i, title := range titles {
			scored[i] = ScoredMeeting{Meeting: rankMeeting(title, testNow)}
		}
		return scored
	}

	t.Run("single candidate never collapses", func(t *testing.T) {
		scored, collapsed := CollapseToSingle("채용 전략 회의", wrap("채용 전략 회의"))
		assert.False(t, collapsed)
		assert.Len(t, scored, 1)
	})

	t.Run("near-verbatim title wins over distant ones", func(t *testing.T) {
		scored, collapsed := CollapseToSingle("채용 전략 회의",
			wrap("주간 마케팅 공유", "채용 전략 회의", "분기 결산"))

		require.True(t, collapsed)
		require.Len(t, scored, 1)
		assert.Equal(t, "채용 전략 회의", scored[0].Meeting.Title)
	})

	t.Run("close runner-up blocks the collapse", func(t *testing.T) {
		scored, collapsed := CollapseToSingle("채용 전략 회의",
			wrap("채용 전략 회의", "채용 전략안 회의"))

		assert.False(t, collapsed)
		assert.Len(t, scored, 2)
	})

	t.Run("no title close enough", func(t *testing.T) {
		_, collapsed := CollapseToSingle("개발 일정 회의",
			wrap("마케팅 캠페인 기획", "채용 전략 회의"))
		assert.False(t, collapsed)
	})
}

func TestRankByPersona(t *testing.T) {
	t.Run("single meeting passes through", func(t *testing.T) {
		m := rankMeeting("마케팅 캠페인", testNow)
		out := RankByPersona([]*entities.Meeting{m}, entities.JobBackendDeveloper, testNow)
		require.Len(t, out, 1)
		assert.Same(t, m, out[0])
	})

	t.Run("top tier sorts by distance from now, rest by relevance", func(t *testing.T) {
		api := rankMeeting("API 설계 리뷰", testNow.Add(72*time.Hour))
		server := rankMeeting("서버 점검 회의", testNow.Add(-24*time.Hour))
		marketing := rankMeeting("마케팅 캠페인", testNow.Add(-2*time.Hour))

		out := RankByPersona(
			[]*entities.Meeting{api, server, marketing},
			entities.JobBackendDeveloper, testNow)

		require.Len(t, out, 3)
		assert.Same(t, server, out[0])
		assert.Same(t, api, out[1])
		assert.Same(t, marketing, out[2])
	})

	t.Run("uniform relevance falls back to temporal order", func(t *testing.T) {
		near := rankMeeting("인덱스 정리", testNow.Add(2*time.Hour))
		far := rankMeeting("스키마 검토", testNow.Add(-200*time.Hour))

		out := RankByPersona(
			[]*entities.Meeting{far, near},
			entities.JobDatabaseAdministrator, testNow)

		assert.Same(t, near, out[0])
		assert.Same(t, far, out[1])
	})
}
