package task

import (
	"regexp"
	"strings"

	"github.com/munwalk/dialog-ai/pkg/textsim"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	trailingJosa      = regexp.MustCompile(`에서|에게|한테|부터|까지`)
	nonHangulPattern  = regexp.MustCompile(`[^가-힣]`)
	demonstratives    = map[string]bool{"저": true, "그": true, "이": true, "해당": true}
	locationBackRefs  = []string{"거기", "여기"}
	meetingSimilarity = 0.5
)

// HasMeetingReference reports whether the query points back at an earlier
// meeting: a demonstrative followed by a token close enough to the meeting
// word (typos like 회이 still count), or a bare location back-reference.
func HasMeetingReference(query string) bool {
	cleaned := nonWordPattern.ReplaceAllString(query, "")
	tokens := strings.Fields(cleaned)

	for i := 0; i+1 < len(tokens); i++ {
		if !demonstratives[tokens[i]] {
			continue
		}
		next := nonHangulPattern.ReplaceAllString(trailingJosa.ReplaceAllString(tokens[i+1], ""), "")
		if textsim.Ratio(next, "회의") >= meetingSimilarity {
			return true
		}
	}

	for _, ref := range locationBackRefs {
		if strings.Contains(query, ref) {
			return true
		}
	}
	return false
}
