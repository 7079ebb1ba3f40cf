package search

import (
	"context"
	"fmt"

	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

const curatedKeywordLimit = 50

// SearchByKeyword looks meetings up through the curated keyword table
// attached to meeting results, instead of free-text matching.
func (s *searchService) SearchByKeyword(ctx context.Context, keyword string, job entities.UserJob) Response {
	meetings, err := s.meetingRepo.FindByCuratedKeyword(ctx, keyword, curatedKeywordLimit)
	if err != nil {
		fallback := fmt.Sprintf("'%s' 키워드 검색 중 오류가 발생했어요. 😢", keyword)
		return Response{Message: s.storeFailure("curated keyword search failed", err, fallback)}
	}

	if len(meetings) == 0 {
		return Response{Message: fmt.Sprintf("❌ '%s' 키워드가 포함된 회의를 찾을 수 없어요.", keyword)}
	}

	if s.personaActive(job) && len(meetings) > 1 {
		meetings = RankByPersona(meetings, job, s.now())
	}

	if len(meetings) == 1 {
		return Response{
			Message:  fmt.Sprintf("✅ '%s' 키워드가 포함된 회의를 찾았어요!\n\n%s", keyword, presenter.FormatMeetingDetail(meetings[0])),
			Meetings: meetings,
		}
	}

	shown := meetings
	if len(shown) > 10 {
		shown = shown[:10]
	}
	return Response{
		Message: fmt.Sprintf("✅ '%s' 키워드가 포함된 회의 %d개를 찾았어요!\n\n%s",
			keyword, len(meetings), presenter.FormatMeetingListShort(shown, len(meetings))),
		Meetings: meetings,
	}
}
