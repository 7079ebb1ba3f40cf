package search

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
	"github.com/munwalk/dialog-ai/pkg/textsim"
)

// A rung is one relaxation step: a filter builder that may decline, and a
// message builder for whatever the widened query found. Rungs run once each,
// in order; there is no second pass.
type rung struct {
	name    string
	build   func(sc *searchContext) (repositories.MeetingFilters, bool)
	respond func(sc *searchContext, found []*entities.Meeting) Response
}

// relax walks the ladder after the primary query found nothing: first drop
// the state constraint, then drop the date and retry with typo-corrected
// keywords. Each reply names the conditions that failed so the user knows
// what was widened.
func (s *searchService) relax(ctx context.Context, sc searchContext) Response {
	rungs := []rung{
		{
			name:    "drop_state",
			build:   s.buildDropState,
			respond: s.respondDropState,
		},
		{
			name:    "drop_date",
			build:   func(sc *searchContext) (repositories.MeetingFilters, bool) { return s.buildDropDate(ctx, sc) },
			respond: s.respondDropDate,
		},
	}

	for _, r := range rungs {
		filters, ok := r.build(&sc)
		if !ok {
			continue
		}

		found, err := s.meetingRepo.Search(ctx, filters)
		if err != nil {
			if apperrors.IsConnectivity(err) {
				s.logger.Error("store unreachable during relaxation",
					zap.String("rung", r.name), zap.Error(apperrors.ErrConnectivity(err)))
				return Response{Message: storeUnreachableReply}
			}
			s.logger.Error("relaxation query failed", zap.String("rung", r.name), zap.Error(err))
			continue
		}
		if len(found) == 0 {
			continue
		}

		s.logger.Debug("relaxation matched", zap.String("rung", r.name), zap.Int("found", len(found)))
		return r.respond(&sc, found)
	}

	return Response{Message: s.finalFailureMessage(sc)}
}

// rung 1: same attendance, keywords and dates, but any lifecycle state
func (s *searchService) buildDropState(sc *searchContext) (repositories.MeetingFilters, bool) {
	if sc.status == nil {
		return repositories.MeetingFilters{}, false
	}
	f := repositories.MeetingFilters{
		AttendeeName: sc.requesterName,
		CoAttendees:  sc.coAttendees,
		Keywords:     sc.keywords,
		KeywordsAny:  true,
		Limit:        primaryLimit,
	}
	if sc.dateInfo.HasRange() {
		start, end := sc.dateInfo.Start, sc.dateInfo.End
		f.DateStart, f.DateEnd = &start, &end
	}
	return f, true
}

func (s *searchService) respondDropState(sc *searchContext, found []*entities.Meeting) Response {
	requested := ""
	if sc.status != nil {
		requested = presenter.StatusLabel(*sc.status)
	}

	if len(found) == 1 {
		detail := s.formatDetail(found[0], sc.req.Persona)
		foundLabel := presenter.StatusLabel(found[0].Status)

		var message string
		if requested != "" {
			message = fmt.Sprintf("❌ %s 회의는 없어요.\n\n하지만 %s 회의가 있습니다! 📌\n\n%s\n\n이 회의를 확인해보시겠어요?",
				requested, foundLabel, detail)
		} else {
			message = fmt.Sprintf("✅ %s 회의를 찾았어요! 📌\n\n%s\n\n이 회의를 확인해보시겠어요?", foundLabel, detail)
		}
		return Response{Message: message, Meetings: found}
	}

	// name the states that actually exist, minus the one that failed
	seen := map[entities.MeetingStatus]bool{}
	var labels []string
	for _, m := range found {
		if seen[m.Status] || (sc.status != nil && m.Status == *sc.status) {
			continue
		}
		seen[m.Status] = true
		labels = append(labels, presenter.StatusLabel(m.Status))
	}
	foundText := "다른"
	if len(labels) > 0 {
		foundText = strings.Join(labels, "/")
	}

	shown := found
	if len(shown) > 5 {
		shown = shown[:5]
	}
	detail := presenter.FormatMeetingListShort(shown, len(found))

	var message string
	if requested != "" {
		message = fmt.Sprintf("❌ %s 회의는 없어요.\n\n하지만 %s 회의들이 있습니다! 📋\n\n%s", requested, foundText, detail)
	} else {
		message = fmt.Sprintf("✅ %s 회의들을 찾았어요! 📋\n\n%s", foundText, detail)
	}
	return Response{Message: message, Meetings: found}
}

// rung 2: drop the date bound and retry with typo-corrected content keywords
func (s *searchService) buildDropDate(ctx context.Context, sc *searchContext) (repositories.MeetingFilters, bool) {
	if !sc.dateInfo.HasRange() {
		return repositories.MeetingFilters{}, false
	}

	corrected := s.correctKeywords(ctx, sc)
	meaningful := meaningfulKeywords(corrected)
	if len(meaningful) == 0 {
		return repositories.MeetingFilters{}, false
	}
	sc.corrected = meaningful

	return repositories.MeetingFilters{
		AttendeeName: sc.requesterName,
		CoAttendees:  sc.coAttendees,
		Keywords:     meaningful,
		KeywordsAny:  true,
		Status:       sc.status,
		Limit:        primaryLimit,
	}, true
}

// respondDropDate names the keywords the widened query actually ran with,
// which are the typo-corrected ones, not the user's raw tokens.
func (s *searchService) respondDropDate(sc *searchContext, found []*entities.Meeting) Response {
	if s.personaActive(sc.req.Persona) && len(found) > 1 {
		found = RankByPersona(found, sc.req.Persona, sc.now)
	}

	keywordStr := strings.Join(sc.corrected, ", ")
	statusText := ""
	if sc.status != nil {
		statusText = presenter.StatusLabel(*sc.status) + " "
	}

	shown := found
	if len(shown) > 5 {
		shown = shown[:5]
	}
	detail := presenter.FormatMeetingListShort(shown, len(found))

	message := fmt.Sprintf("❌ %s에 %s'%s' 회의가 없어요. 😢\n\n하지만 다른 날짜에 '%s' 회의가 있어요! 📋\n%s",
		sc.dateInfo.Original, statusText, keywordStr, keywordStr, detail)

	return Response{Message: message, Meetings: found, Relaxed: true}
}

var hangulWordPattern = regexp.MustCompile(`[가-힣]+`)

// correctKeywords snaps each extracted keyword to the closest word appearing
// in stored meeting titles, when one is at least 70% similar. Keywords with
// no close match pass through unchanged.
func (s *searchService) correctKeywords(ctx context.Context, sc *searchContext) []string {
	titles, err := s.meetingRepo.DistinctTitles(ctx, sc.req.RequesterID)
	if err != nil {
		s.logger.Warn("title vocabulary fetch failed", zap.Error(err))
		return sc.keywords
	}

	vocab := map[string]struct{}{}
	for _, title := range titles {
		for _, word := range hangulWordPattern.FindAllString(title, -1) {
			vocab[word] = struct{}{}
		}
	}

	corrected := make([]string, 0, len(sc.keywords))
	for _, keyword := range sc.keywords {
		best, bestRatio := "", 0.0
		for word := range vocab {
			if ratio := textsim.Ratio(keyword, word); ratio >= 0.7 && ratio > bestRatio {
				best, bestRatio = word, ratio
			}
		}
		if best != "" {
			if best != keyword {
				s.logger.Debug("keyword corrected",
					zap.String("from", keyword), zap.String("to", best), zap.Float64("ratio", bestRatio))
			}
			corrected = append(corrected, best)
		} else {
			corrected = append(corrected, keyword)
		}
	}
	return corrected
}

// meaningfulKeywords drops leftover filler and calendar-unit tokens that
// survive extraction in date-heavy queries.
func meaningfulKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		switch k {
		case "있어", "없어", "뭐", "거", "것", "회의":
			continue
		}
		if containsAnyWord(k, "일", "월", "주", "년") {
			continue
		}
		out = append(out, k)
	}
	return out
}

// finalFailureMessage names the narrowest failed condition set
func (s *searchService) finalFailureMessage(sc searchContext) string {
	meaningful := meaningfulKeywords(sc.keywords)

	if sc.dateInfo.Original != "" && len(sc.keywords) == 0 {
		if sc.status != nil {
			return fmt.Sprintf("❌ %s에 %s 회의가 없어요.", sc.dateInfo.Original, presenter.StatusLabel(*sc.status))
		}
		return fmt.Sprintf("❌ %s에 회의가 없어요.", sc.dateInfo.Original)
	}

	if len(sc.keywords) > 0 {
		if len(meaningful) == 0 {
			if sc.dateInfo.Original != "" {
				return fmt.Sprintf("❌ %s에 회의가 없어요.", sc.dateInfo.Original)
			}
			return "❌ 조건에 맞는 회의를 찾을 수 없어요."
		}
		keywordStr := strings.Join(meaningful, ", ")
		if sc.dateInfo.Original != "" {
			return fmt.Sprintf("❌ %s '%s' 관련 회의가 없어요.", sc.dateInfo.Original, keywordStr)
		}
		return fmt.Sprintf("❌ '%s' 관련 회의를 찾을 수 없어요.", keywordStr)
	}

	if sc.status != nil {
		return fmt.Sprintf("❌ %s 회의가 없어요.", presenter.StatusLabel(*sc.status))
	}
	return "❌ 회의를 찾을 수 없어요."
}
