package search

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/pkg/textsim"
)

// ScoredMeeting pairs a meeting with its ranking score. Meetings are never
// mutated by ranking; scores live on the pairing.
type ScoredMeeting struct {
	Meeting *entities.Meeting
	Score   float64
}

// Vocabulary each persona is assumed to care about, matched against title,
// summary and description the same way keyword scoring is.
var personaKeywords = map[entities.UserJob][]string{
	entities.JobProjectManager: {
		"기획", "전략", "로드맵", "목표", "계획", "일정", "마일스톤",
		"프로젝트", "pm", "po", "스프린트", "스케줄", "리소스",
	},
	entities.JobFrontendDeveloper: {
		"프론트엔드", "프론트", "ui", "ux", "react", "vue", "화면",
		"인터페이스", "디자인", "frontend", "fe", "컴포넌트", "반응형",
	},
	entities.JobBackendDeveloper: {
		"백엔드", "backend", "api", "서버", "데이터베이스", "spring",
		"node", "개발팀", "be", "fastapi", "rest", "배포", "인프라",
		"성능", "아키텍처",
	},
	entities.JobDatabaseAdministrator: {
		"데이터베이스", "database", "db", "sql", "쿼리", "최적화",
		"인덱스", "mysql", "데이터", "dba", "스키마", "마이그레이션",
	},
	entities.JobSecurityDeveloper: {
		"보안", "security", "취약점", "암호화", "인증", "권한",
		"ssl", "방화벽", "점검", "보안점검", "취약점점검",
	},
}

const (
	titleWeight       = 10
	summaryWeight     = 5
	descriptionWeight = 3

	collapseRatio = 0.7
	collapseLead  = 0.2
)

var meetingWordPattern = regexp.MustCompile(`회의|미팅`)

func fieldScore(m *entities.Meeting, terms []string) float64 {
	title := strings.ToLower(m.Title)
	description := strings.ToLower(m.DescriptionText())
	summary := strings.ToLower(m.Summary())

	score := 0.0
	for _, term := range terms {
		t := strings.ToLower(term)
		if strings.Contains(title, t) {
			score += titleWeight
		}
		if summary != "" && strings.Contains(summary, t) {
			score += summaryWeight
		}
		if description != "" && strings.Contains(description, t) {
			score += descriptionWeight
		}
	}
	return score
}

// RankByKeywords orders meetings by how strongly the extracted keywords hit
// their title, summary and description. The sort is stable so equally scored
// meetings keep the store's recency order.
func RankByKeywords(meetings []*entities.Meeting, keywords []string) []ScoredMeeting {
	scored := make([]ScoredMeeting, len(meetings))
	for i, m := range meetings {
		scored[i] = ScoredMeeting{Meeting: m, Score: fieldScore(m, keywords)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// CollapseToSingle decides whether the query was really after one specific
// meeting. Both sides are compared with the generic meeting word stripped,
// and the best title must be close enough and clearly ahead of the runner-up.
func CollapseToSingle(query string, scored []ScoredMeeting) ([]ScoredMeeting, bool) {
	if len(scored) < 2 {
		return scored, false
	}

	cleanQuery := stripMeetingWord(strings.ToLower(strings.TrimSpace(query)))

	bestIdx, bestRatio, secondRatio := 0, 0.0, 0.0
	for i, sm := range scored {
		title := stripMeetingWord(strings.ToLower(strings.TrimSpace(sm.Meeting.Title)))
		ratio := textsim.Ratio(cleanQuery, title)
		if ratio > bestRatio {
			secondRatio = bestRatio
			bestRatio = ratio
			bestIdx = i
		} else if ratio > secondRatio {
			secondRatio = ratio
		}
	}

	if bestRatio >= collapseRatio && bestRatio-secondRatio >= collapseLead {
		return []ScoredMeeting{scored[bestIdx]}, true
	}
	return scored, false
}

func stripMeetingWord(s string) string {
	return strings.TrimSpace(meetingWordPattern.ReplaceAllString(s, ""))
}

// RankByPersona reorders an unscored result set for the requester's job.
// Meetings at or above the 30th-percentile relevance form the top tier and
// sort by temporal distance from now; the rest trail, sorted by relevance.
func RankByPersona(meetings []*entities.Meeting, job entities.UserJob, now time.Time) []*entities.Meeting {
	terms, ok := personaKeywords[job]
	if !ok || len(meetings) < 2 {
		return meetings
	}

	type ranked struct {
		meeting  *entities.Meeting
		score    float64
		distance time.Duration
	}

	items := make([]ranked, len(meetings))
	scores := make([]float64, len(meetings))
	for i, m := range meetings {
		score := fieldScore(m, terms)
		distance := m.ScheduledAt.Sub(now)
		if distance < 0 {
			distance = -distance
		}
		items[i] = ranked{meeting: m, score: score, distance: distance}
		scores[i] = score
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	threshold := 0.0
	if idx := int(float64(len(scores)) * 0.3); idx < len(scores) {
		threshold = scores[idx]
	}

	var top, rest []ranked
	for _, it := range items {
		if it.score >= threshold {
			top = append(top, it)
		} else {
			rest = append(rest, it)
		}
	}

	sort.SliceStable(top, func(i, j int) bool { return top[i].distance < top[j].distance })
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].score > rest[j].score })

	out := make([]*entities.Meeting, 0, len(meetings))
	for _, it := range append(top, rest...) {
		out = append(out, it.meeting)
	}
	return out
}
