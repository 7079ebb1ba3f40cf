package query

import "strings"

// IsOffTopic reports whether a query falls outside the assistant's domain.
// Anything naming meetings or tasks is always in scope, as are short
// pronoun-led follow-ups and bare numeric selections. Only queries that hit
// the small-talk vocabulary with none of those signals are off topic.
func IsOffTopic(query string) bool {
	lowered := strings.ToLower(strings.TrimSpace(query))

	for _, word := range meetingDomainWords {
		if strings.Contains(lowered, word) {
			return false
		}
	}

	for _, word := range taskDomainWords {
		if strings.Contains(lowered, word) {
			return false
		}
	}

	if len([]rune(query)) <= 15 {
		for _, pronoun := range contextPronouns {
			if strings.HasPrefix(lowered, pronoun) {
				return false
			}
		}
	}

	if isDigits(lowered) {
		return false
	}

	for _, word := range offTopicWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}

	return false
}

// IsPaginationRequest reports whether the query asks for more of the
// previous result set.
func IsPaginationRequest(query string) bool {
	for _, word := range paginationWords {
		if strings.Contains(query, word) {
			return true
		}
	}
	for _, pattern := range paginationPatterns {
		if pattern.MatchString(query) {
			return true
		}
	}
	return false
}

// HasSearchIntent reports whether the query looks like a record search at
// all, as opposed to chatter the engine should not run a query for.
func HasSearchIntent(query string) bool {
	lowered := strings.ToLower(query)
	for _, word := range searchIntentWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// IsCountQuestion reports whether the query asks how many rather than which.
func IsCountQuestion(query string) bool {
	for _, word := range countWords {
		if strings.Contains(query, word) {
			return true
		}
	}
	return false
}

// IsTaskQuery reports whether the query asks about tasks or action items
// rather than meeting records.
func IsTaskQuery(query string) bool {
	lowered := strings.ToLower(query)
	for _, word := range taskDomainWords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}

// IsListRequest reports whether a short query phrased with listing
// vocabulary asks for an overview of meetings rather than a filtered search.
func IsListRequest(query string) bool {
	hasMeetingWord := false
	for _, word := range meetingWords {
		if strings.Contains(query, word) {
			hasMeetingWord = true
			break
		}
	}
	if !hasMeetingWord {
		return false
	}
	hasListWord := false
	for _, word := range listRequestWords {
		if strings.Contains(query, word) {
			hasListWord = true
			break
		}
	}
	return hasListWord && len([]rune(query)) <= 20
}
