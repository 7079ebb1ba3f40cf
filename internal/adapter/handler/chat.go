package handler

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
	"github.com/munwalk/dialog-ai/internal/adapter/dto/chat"
	"github.com/munwalk/dialog-ai/internal/adapter/presenter"
	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
	"github.com/munwalk/dialog-ai/internal/usecase/participant"
	"github.com/munwalk/dialog-ai/internal/usecase/query"
	"github.com/munwalk/dialog-ai/internal/usecase/search"
	"github.com/munwalk/dialog-ai/internal/usecase/session"
	"github.com/munwalk/dialog-ai/internal/usecase/task"
)

const chatPageSize = 10

// personAttendedPattern pulls the subject out of "<이름>이 참석한 회의" style
// questions.
var personAttendedPattern = regexp.MustCompile(`([가-힣]{2,4})(?:이|가)?\s*참석한`)

// Chat handles the conversational search endpoint
type Chat struct {
	searchService      search.Service
	taskService        task.Service
	participantService participant.Service
	userRepo           repositories.UserRepository
	meetingRepo        repositories.MeetingRepository
	sessions           *session.Store
	logger             *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	searchService search.Service,
	taskService task.Service,
	participantService participant.Service,
	userRepo repositories.UserRepository,
	meetingRepo repositories.MeetingRepository,
	sessions *session.Store,
	logger *zap.Logger,
) *Chat {
	return &Chat{
		searchService:      searchService,
		taskService:        taskService,
		participantService: participantService,
		userRepo:           userRepo,
		meetingRepo:        meetingRepo,
		sessions:           sessions,
		logger:             logger,
	}
}

// HandleMessage handles POST /chat
// @Summary      Converse with the meeting-record search engine
// @Description  Runs one turn of the natural-language search conversation
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      chat.ChatRequest  true  "User message"
// @Success      200      {object}  chat.ChatResponse  "Rendered reply"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Router       /chat [post]
func (h *Chat) HandleMessage(c echo.Context) error {
	var req chat.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidPayload(err))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("user ID must be a valid UUID"))
	}

	ctx := c.Request().Context()
	state := h.sessions.Load(ctx, userID)
	message := strings.TrimSpace(req.Message)

	h.logger.Debug("chat turn",
		zap.String("user_id", userID.String()),
		zap.Int("offset", state.Offset))

	var resp chat.ChatResponse
	switch {
	case query.IsOffTopic(message):
		resp = chat.ChatResponse{Reply: presenter.OffTopicGuidance()}
	case isPaginationTurn(message, state):
		resp = h.handlePagination(c, userID, &state)
	case personAttendedPattern.MatchString(message):
		resp = h.handlePersonMeetings(c, message)
	case strings.Contains(message, "참석자") || strings.Contains(message, "참여자"):
		resp = h.handleRoster(c, &state)
	case query.IsTaskQuery(message):
		resp = h.handleTasks(c, userID, message, &state)
	default:
		resp = h.handleSearch(c, userID, message, &state)
	}

	state.LastReply = resp.Reply
	h.sessions.Save(ctx, userID, state)

	return HandleSuccess(h.logger, c, resp)
}

// HandleKeywordSearch handles GET /keywords/search
// @Summary      Search meetings by curated keyword
// @Description  Looks meetings up through the keyword table attached to meeting results
// @Tags         Chat
// @Produce      json
// @Param        keyword  query     string  true   "Curated keyword"
// @Param        user_id  query     string  false  "Requesting user, for persona-aware ordering"
// @Success      200      {object}  chat.ChatResponse  "Rendered reply"
// @Failure      400      {object}  map[string]interface{}  "Missing or invalid parameter"
// @Router       /keywords/search [get]
func (h *Chat) HandleKeywordSearch(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("keyword is required"))
	}

	job := entities.JobNone
	if raw := c.QueryParam("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("user ID must be a valid UUID"))
		}
		job = h.personaOf(c, userID)
	}

	result := h.searchService.SearchByKeyword(c.Request().Context(), keyword, job)
	return HandleSuccess(h.logger, c, chat.ChatResponse{
		Reply:      result.Message,
		MeetingIDs: meetingIDs(result.Meetings),
	})
}

// isPaginationTurn gates the broad pagination vocabulary: there must be a
// previous search to continue, and a query naming meetings is a new search
// even when it ends in "보여줘".
func isPaginationTurn(message string, state session.State) bool {
	if state.LastQuery == "" || state.Offset == 0 {
		return false
	}
	if strings.Contains(message, "회의") || strings.Contains(message, "미팅") {
		return false
	}
	if query.IsTaskQuery(message) {
		return false
	}
	return query.IsPaginationRequest(message)
}

// handlePagination re-runs the previous search and renders the next page.
func (h *Chat) handlePagination(c echo.Context, userID uuid.UUID, state *session.State) chat.ChatResponse {
	ctx := c.Request().Context()

	result := h.searchService.Search(ctx, search.Request{
		Query:            state.LastQuery,
		RequesterID:      &userID,
		Persona:          h.personaOf(c, userID),
		ContextMeetingID: state.ContextMeetingID,
	})

	start := state.Offset
	if start > len(result.Meetings) {
		start = len(result.Meetings)
	}
	end := start + chatPageSize
	if end > len(result.Meetings) {
		end = len(result.Meetings)
	}
	page := result.Meetings[start:end]

	state.Offset = end

	return chat.ChatResponse{
		Reply:      presenter.FormatMeetingPage(page, start, len(result.Meetings)),
		MeetingIDs: meetingIDs(page),
	}
}

func (h *Chat) handlePersonMeetings(c echo.Context, message string) chat.ChatResponse {
	name := personAttendedPattern.FindStringSubmatch(message)[1]
	reply := h.participantService.Resolve(c.Request().Context(), participant.Request{
		Type:       participant.QueryPersonMeetings,
		PersonName: name,
	})
	return chat.ChatResponse{Reply: reply}
}

func (h *Chat) handleRoster(c echo.Context, state *session.State) chat.ChatResponse {
	ctx := c.Request().Context()

	meetingID := state.ContextMeetingID
	if meetingID == nil {
		meetingID = h.recoverContextMeeting(ctx, state.LastReply)
		state.ContextMeetingID = meetingID
	}

	reply := h.participantService.Resolve(ctx, participant.Request{
		Type:      participant.QueryMeetingParticipants,
		MeetingID: meetingID,
	})
	return chat.ChatResponse{Reply: reply}
}

func (h *Chat) handleTasks(c echo.Context, userID uuid.UUID, message string, state *session.State) chat.ChatResponse {
	reply, _ := h.taskService.Resolve(c.Request().Context(), task.Request{
		Query:            message,
		RequesterID:      userID,
		ContextMeetingID: state.ContextMeetingID,
	})
	return chat.ChatResponse{Reply: reply}
}

func (h *Chat) handleSearch(c echo.Context, userID uuid.UUID, message string, state *session.State) chat.ChatResponse {
	ctx := c.Request().Context()

	result := h.searchService.Search(ctx, search.Request{
		Query:            message,
		RequesterID:      &userID,
		Persona:          h.personaOf(c, userID),
		ContextMeetingID: state.ContextMeetingID,
	})

	// A fresh result set resets pagination; a single hit becomes the
	// conversation's context meeting, a relaxed reply replaces it.
	state.LastQuery = message
	state.Offset = min(chatPageSize, len(result.Meetings))
	if len(result.Meetings) == 1 || (result.Relaxed && len(result.Meetings) > 0) {
		state.ContextMeetingID = &result.Meetings[0].ID
	}

	resp := chat.ChatResponse{
		Reply:      result.Message,
		MeetingIDs: meetingIDs(result.Meetings),
	}
	if state.ContextMeetingID != nil {
		resp.ContextMeetingID = state.ContextMeetingID.String()
	}
	return resp
}

// personaOf resolves the requester's job for persona-aware ranking. Unknown
// users search without a persona.
func (h *Chat) personaOf(c echo.Context, userID uuid.UUID) entities.UserJob {
	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		return entities.JobNone
	}
	return user.Job
}

// recoverContextMeeting re-reads the previous reply when the session lost its
// context meeting. Only a reply describing exactly one meeting can pin one.
func (h *Chat) recoverContextMeeting(ctx context.Context, lastReply string) *uuid.UUID {
	if lastReply == "" || search.ParseReplyCount(lastReply) != 1 {
		return nil
	}
	cards := search.ParseReplyMeetings(lastReply)
	if len(cards) != 1 {
		return nil
	}

	meetings, err := h.meetingRepo.Search(ctx, repositories.MeetingFilters{
		Keywords: []string{cards[0].Title},
		Limit:    1,
	})
	if err != nil || len(meetings) == 0 {
		return nil
	}
	return &meetings[0].ID
}

func meetingIDs(meetings []*entities.Meeting) []string {
	ids := make([]string, 0, len(meetings))
	for _, m := range meetings {
		ids = append(ids, m.ID.String())
	}
	return ids
}
