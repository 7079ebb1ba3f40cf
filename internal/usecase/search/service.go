package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
	"github.com/munwalk/dialog-ai/internal/usecase/query"
	"github.com/munwalk/dialog-ai/pkg/config"
)

// Request carries one search turn. All conversational state is the caller's:
// the engine itself keeps nothing between calls.
type Request struct {
	Query            string
	RequesterID      *uuid.UUID
	Persona          entities.UserJob
	ContextMeetingID *uuid.UUID
}

// Response is the engine's answer: a ready-to-send message plus the ordered
// records behind it. Relaxed marks replies produced by dropping the date
// constraint, so the caller can treat the context as a fresh result set.
type Response struct {
	Message  string
	Meetings []*entities.Meeting
	Relaxed  bool
}

// CountResult is the answer to a "how many" question.
type CountResult struct {
	Count    int64
	Meetings []*entities.Meeting
}

// ParsedIntent is what an external intent parser contributes when the
// pattern classifiers came up empty.
type ParsedIntent struct {
	Intent    string
	Keywords  []string
	DateRange string
	Status    entities.MeetingStatus
}

// IntentParser is an optional last-resort hook consulted only when pattern
// matching produced no keywords or state, or the query counts meetings.
type IntentParser interface {
	ParseIntent(ctx context.Context, q string) (*ParsedIntent, error)
}

// Service runs natural-language searches over meeting records
type Service interface {
	Search(ctx context.Context, req Request) Response
	SearchCount(ctx context.Context, req Request) (string, []*entities.Meeting)
	SearchByKeyword(ctx context.Context, keyword string, job entities.UserJob) Response
}

type searchService struct {
	meetingRepo     repositories.MeetingRepository
	userRepo        repositories.UserRepository
	participantRepo repositories.ParticipantRepository
	intentParser    IntentParser // may be nil
	cfg             *config.Config
	logger          *zap.Logger
	now             func() time.Time
}

// NewSearchService constructs the search orchestrator. intentParser may be
// nil; the engine then relies on pattern classification alone.
func NewSearchService(
	meetingRepo repositories.MeetingRepository,
	userRepo repositories.UserRepository,
	participantRepo repositories.ParticipantRepository,
	intentParser IntentParser,
	cfg *config.Config,
	logger *zap.Logger,
) Service {
	return &searchService{
		meetingRepo:     meetingRepo,
		userRepo:        userRepo,
		participantRepo: participantRepo,
		intentParser:    intentParser,
		cfg:             cfg,
		logger:          logger,
		now:             time.Now,
	}
}

// searchContext is the classified form of one request, shared by the primary
// query and the relaxation rungs.
type searchContext struct {
	req           Request
	requesterName string
	coAttendees   []string
	keywords      []string
	dateInfo      query.DateInfo
	status        *entities.MeetingStatus
	isToday       bool
	now           time.Time

	// corrected holds the typo-corrected meaningful keywords once the
	// drop-date rung has built its filters
	corrected []string
}

const (
	primaryLimit = 50
	listLimit    = 20
)

// storeUnreachableReply is the fixed sentence for a database that could not
// be reached; it never varies with the query.
const storeUnreachableReply = "데이터베이스 연결 실패"

// storeFailure classifies a store error, logs it with its taxonomy code, and
// picks the user-facing sentence: an unreachable database always gets the
// fixed connectivity reply, anything else the caller's generic one.
func (s *searchService) storeFailure(op string, err error, fallback string) string {
	appErr := apperrors.ClassifyStoreError(err)
	s.logger.Error(op, zap.Error(appErr))
	if appErr.Code == apperrors.ErrorCode_CONNECTIVITY {
		return storeUnreachableReply
	}
	return fallback
}

func (s *searchService) Search(ctx context.Context, req Request) Response {
	now := s.now()

	sc := searchContext{
		req:      req,
		keywords: query.ExtractKeywords(req.Query),
		dateInfo: query.ParseDate(req.Query, now),
		status:   query.ParseState(req.Query),
		now:      now,
	}
	s.resolveRequester(ctx, &sc)
	sc.isToday = sc.dateInfo.HasRange() &&
		sameDay(sc.dateInfo.Start, sc.dateInfo.End) && sameDay(sc.dateInfo.Start, now)

	s.logger.Debug("query classified",
		zap.Strings("keywords", sc.keywords),
		zap.String("date", sc.dateInfo.Original),
		zap.Bool("has_state", sc.status != nil))

	// overview requests skip the ladder entirely
	if query.IsListRequest(req.Query) {
		return s.searchList(ctx, sc)
	}
	if len(sc.keywords) == 0 && sc.status == nil && sc.dateInfo.HasRange() {
		return s.searchList(ctx, sc)
	}

	// last-resort enrichment when patterns came up short
	if resp, done := s.consultIntentParser(ctx, &sc); done {
		return resp
	}

	meetings, err := s.meetingRepo.Search(ctx, s.primaryFilters(sc))
	if err != nil {
		return Response{Message: s.storeFailure("meeting search failed", err, "검색 중 오류가 발생했어요.")}
	}

	meetings = s.collapseExactTitle(req.Query, meetings)

	if len(meetings) == 0 {
		return s.relax(ctx, sc)
	}

	if len(sc.keywords) > 0 && len(meetings) > 1 {
		scored := RankByKeywords(meetings, sc.keywords)
		scored, _ = CollapseToSingle(req.Query, scored)
		meetings = unwrap(scored)
	} else if s.personaActive(req.Persona) && len(meetings) > 1 {
		meetings = RankByPersona(meetings, req.Persona, now)
	}

	if len(meetings) == 1 {
		prefix := ""
		if sc.dateInfo.Original != "" {
			prefix = fmt.Sprintf("✅ %s에 진행한 회의는 1개입니다.\n\n", sc.dateInfo.Original)
		}
		return Response{
			Message:  prefix + s.formatDetail(meetings[0], req.Persona),
			Meetings: meetings,
		}
	}

	shown := meetings
	if len(shown) > 10 {
		shown = shown[:10]
	}
	return Response{
		Message:  presenter.FormatMeetingListShort(shown, len(meetings)),
		Meetings: meetings,
	}
}

// resolveRequester maps the requester ID to a display name and picks up any
// other attendee names written verbatim in the query.
func (s *searchService) resolveRequester(ctx context.Context, sc *searchContext) {
	if sc.req.RequesterID == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, *sc.req.RequesterID)
	if err != nil {
		s.logger.Warn("requester lookup failed", zap.Error(err))
	} else {
		sc.requesterName = user.Name
	}

	names, err := s.participantRepo.DistinctNames(ctx)
	if err != nil {
		s.logger.Warn("participant name scan failed", zap.Error(err))
		return
	}
	for _, name := range names {
		if name != sc.requesterName && strings.Contains(sc.req.Query, name) {
			sc.coAttendees = append(sc.coAttendees, name)
		}
	}
}

// primaryFilters builds the strictest filter set: attendance, keywords,
// dates, state. A query about today searches every state, and the
// state-dependent date cutoff applies otherwise.
func (s *searchService) primaryFilters(sc searchContext) repositories.MeetingFilters {
	f := repositories.MeetingFilters{
		AttendeeName: sc.requesterName,
		CoAttendees:  sc.coAttendees,
		Keywords:     sc.keywords,
		MeetingID:    sc.req.ContextMeetingID,
		Limit:        primaryLimit,
	}
	if sc.dateInfo.HasRange() {
		start, end := sc.dateInfo.Start, sc.dateInfo.End
		f.DateStart, f.DateEnd = &start, &end
	}
	if sc.status != nil && !sc.isToday {
		f.Status = sc.status
		f.StatusCutoff = dayStart(sc.now)
	}
	return f
}

// searchList handles overview-style requests: broad filters, smaller cap,
// and a single surviving row expands to the full detail card.
func (s *searchService) searchList(ctx context.Context, sc searchContext) Response {
	f := repositories.MeetingFilters{
		AttendeeName: sc.requesterName,
		CoAttendees:  sc.coAttendees,
		Keywords:     sc.keywords,
		KeywordsAny:  true,
		Status:       sc.status,
		Limit:        listLimit,
	}
	if sc.dateInfo.HasRange() {
		start, end := sc.dateInfo.Start, sc.dateInfo.End
		f.DateStart, f.DateEnd = &start, &end
	}

	meetings, err := s.meetingRepo.Search(ctx, f)
	if err != nil {
		return Response{Message: s.storeFailure("meeting list search failed", err, "검색 중 오류가 발생했어요.")}
	}

	if len(meetings) == 0 {
		if sc.dateInfo.Original != "" {
			return Response{Message: fmt.Sprintf("❌ %s에 회의가 없어요.", sc.dateInfo.Original)}
		}
		return Response{Message: "아직 회의가 없어요! 😊"}
	}

	if s.personaActive(sc.req.Persona) && len(meetings) > 1 {
		meetings = RankByPersona(meetings, sc.req.Persona, sc.now)
	}

	if len(meetings) == 1 {
		return Response{
			Message:  s.formatDetail(meetings[0], sc.req.Persona),
			Meetings: meetings,
		}
	}

	shown := meetings
	if len(shown) > 10 {
		shown = shown[:10]
	}
	return Response{
		Message:  presenter.FormatMeetingListShort(shown, len(meetings)),
		Meetings: meetings,
	}
}

// consultIntentParser fills classification gaps through the optional hook.
// A recognized count intent resolves the turn immediately; the guidance
// reply fires when nothing at all was classified and the query does not even
// mention meetings.
func (s *searchService) consultIntentParser(ctx context.Context, sc *searchContext) (Response, bool) {
	isCount := query.IsCountQuestion(sc.req.Query)
	if len(sc.keywords) > 0 && sc.status != nil && !isCount {
		return Response{}, false
	}

	hasMeetingWord := containsAnyWord(sc.req.Query, "회의", "미팅", "회의록", "논의", "발표", "보고")

	if !hasMeetingWord {
		if sc.status == nil && len(sc.keywords) == 0 {
			return Response{Message: presenter.OffTopicGuidance()}, true
		}
		return Response{}, false
	}

	if s.intentParser == nil {
		if isCount {
			message, meetings := s.SearchCount(ctx, sc.req)
			return Response{Message: message, Meetings: meetings}, true
		}
		return Response{}, false
	}

	parsed, err := s.intentParser.ParseIntent(ctx, sc.req.Query)
	if err != nil {
		s.logger.Warn("intent parser failed", zap.Error(err))
		return Response{}, false
	}

	if parsed.Intent == "count_meetings" || (isCount && parsed.Intent == "") {
		message, meetings := s.SearchCount(ctx, sc.req)
		return Response{Message: message, Meetings: meetings}, true
	}

	if len(sc.keywords) == 0 {
		sc.keywords = parsed.Keywords
	}
	if !sc.dateInfo.HasRange() && parsed.DateRange != "" {
		sc.dateInfo = query.ParseDate(parsed.DateRange, sc.now)
	}
	if sc.status == nil && parsed.Status != "" {
		status := parsed.Status
		sc.status = &status
	}
	return Response{}, false
}

// collapseExactTitle keeps only the meeting whose title equals the query
// verbatim, when one exists among several.
func (s *searchService) collapseExactTitle(q string, meetings []*entities.Meeting) []*entities.Meeting {
	if len(meetings) < 2 {
		return meetings
	}
	cleaned := strings.ToLower(strings.TrimSpace(q))
	for _, m := range meetings {
		if cleaned == strings.ToLower(strings.TrimSpace(m.Title)) {
			return []*entities.Meeting{m}
		}
	}
	return meetings
}

func (s *searchService) formatDetail(m *entities.Meeting, job entities.UserJob) string {
	if s.personaActive(job) {
		return presenter.FormatMeetingDetailForJob(m, job)
	}
	return presenter.FormatMeetingDetail(m)
}

func (s *searchService) personaActive(job entities.UserJob) bool {
	return s.cfg.Engine.EnablePersona && job != "" && job != entities.JobNone
}

func unwrap(scored []ScoredMeeting) []*entities.Meeting {
	meetings := make([]*entities.Meeting, len(scored))
	for i, sm := range scored {
		meetings[i] = sm.Meeting
	}
	return meetings
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsAnyWord(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
