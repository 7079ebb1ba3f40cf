package search

import (
	"context"

	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
	"github.com/munwalk/dialog-ai/internal/usecase/query"
)

// SearchCount answers "how many" questions: the matching total plus the
// meetings behind it, newest first. When the user named no date, the
// lifecycle state implies one: scheduled meetings count from today forward,
// completed ones up to today. Persona ranking applies only when no keywords
// steer the order.
func (s *searchService) SearchCount(ctx context.Context, req Request) (string, []*entities.Meeting) {
	now := s.now()

	sc := searchContext{
		req:      req,
		keywords: query.ExtractKeywords(req.Query),
		dateInfo: query.ParseDate(req.Query, now),
		status:   query.ParseState(req.Query),
		now:      now,
	}
	s.resolveRequester(ctx, &sc)

	f := repositories.MeetingFilters{
		AttendeeName: sc.requesterName,
		Keywords:     sc.keywords,
		KeywordsAny:  true,
		Status:       sc.status,
	}
	if sc.dateInfo.HasRange() {
		start, end := sc.dateInfo.Start, sc.dateInfo.End
		f.DateStart, f.DateEnd = &start, &end
	} else if sc.status != nil {
		f.StatusCutoff = dayStart(now)
	}

	count, err := s.meetingRepo.Count(ctx, f)
	if err != nil {
		return s.storeFailure("meeting count failed", err, "회의를 찾을 수 없었어요. 😢"), nil
	}

	meetings, err := s.meetingRepo.Search(ctx, f)
	if err != nil {
		return s.storeFailure("meeting count detail failed", err, "회의를 찾을 수 없었어요. 😢"), nil
	}

	if s.personaActive(req.Persona) && len(meetings) > 1 && len(sc.keywords) == 0 {
		meetings = RankByPersona(meetings, req.Persona, now)
	}

	return presenter.FormatCountResult(count, meetings), meetings
}
