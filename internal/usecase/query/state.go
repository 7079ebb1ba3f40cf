package query

import (
	"strings"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// ParseState reads the lifecycle state a query asks about. Sentence-final
// tense carries more signal than state words, so past and future endings are
// checked before the keyword sets. Returns nil when the query names no state.
func ParseState(query string) *entities.MeetingStatus {
	lowered := strings.ToLower(query)

	for _, pattern := range pastTensePatterns {
		if pattern.MatchString(lowered) {
			return statusPtr(entities.MeetingStatusCompleted)
		}
	}

	for _, pattern := range futureTensePatterns {
		if pattern.MatchString(lowered) {
			return statusPtr(entities.MeetingStatusScheduled)
		}
	}

	for _, set := range stateKeywords {
		for _, word := range set.words {
			if strings.Contains(lowered, word) {
				return statusPtr(set.status)
			}
		}
	}

	return nil
}

func statusPtr(s entities.MeetingStatus) *entities.MeetingStatus {
	return &s
}
