package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/munwalk/dialog-ai/errors"
)

// State is what the engine remembers between turns of one conversation. The
// engine itself is stateless; callers load this, pass the relevant parts
// into a request, and save it back.
type State struct {
	ContextMeetingID *uuid.UUID `json:"context_meeting_id,omitempty"`
	LastQuery        string     `json:"last_query,omitempty"`
	Offset           int        `json:"offset"`
	LastReply        string     `json:"last_reply,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Backend is the key-value store behind the session store
type Backend interface {
	Set(ctx context.Context, key, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

// Store keeps per-user conversation state with a TTL
type Store struct {
	backend Backend
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStore constructs a session store
func NewStore(backend Backend, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{backend: backend, ttl: ttl, logger: logger}
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("chat:session:%s", userID)
}

// Load returns the user's conversation state, zero-valued when absent or
// unreadable. A corrupt entry is dropped rather than surfaced.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) State {
	raw, ok, err := s.backend.Get(ctx, sessionKey(userID))
	if err != nil {
		s.logger.Warn("session load failed", zap.Error(apperrors.ErrSessionUnavailable(err)))
		return State{}
	}
	if !ok {
		return State{}
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Warn("session entry corrupt, discarding", zap.Error(err))
		s.Clear(ctx, userID)
		return State{}
	}
	return state
}

// Save persists the user's conversation state
func (s *Store) Save(ctx context.Context, userID uuid.UUID, state State) {
	state.UpdatedAt = time.Now()

	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Warn("session encode failed", zap.Error(err))
		return
	}
	if err := s.backend.Set(ctx, sessionKey(userID), string(raw), s.ttl); err != nil {
		s.logger.Warn("session save failed", zap.Error(apperrors.ErrSessionUnavailable(err)))
	}
}

// Clear forgets the user's conversation state
func (s *Store) Clear(ctx context.Context, userID uuid.UUID) {
	if err := s.backend.Delete(ctx, sessionKey(userID)); err != nil {
		s.logger.Warn("session clear failed", zap.Error(err))
	}
}
