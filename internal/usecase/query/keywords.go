package query

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	hangulTokenPattern = regexp.MustCompile(`[가-힣]{2,}`)
	asciiTokenPattern  = regexp.MustCompile(`[A-Za-z0-9]+`)
)

// ExtractKeywords pulls content-bearing search terms from an utterance.
// Hangul runs of two or more syllables and ASCII tokens are candidates;
// numerals belonging to date expressions are dropped, ASCII terms are
// upper-cased, compound words ending in 회의 or 관련 are reduced to their
// base, and anything matching the stop table is removed. Order is preserved
// and duplicates collapse to the first occurrence.
func ExtractKeywords(utterance string) []string {
	tokens := hangulTokenPattern.FindAllString(utterance, -1)

	for _, token := range asciiTokenPattern.FindAllString(utterance, -1) {
		if isDigits(token) {
			datePattern := regexp.MustCompile(regexp.QuoteMeta(token) + `\s*[월일년]`)
			if datePattern.MatchString(utterance) {
				continue
			}
		}
		if len(token) >= 2 {
			tokens = append(tokens, strings.ToUpper(token))
		} else if token == strings.ToUpper(token) && !isDigits(token) {
			tokens = append(tokens, token)
		}
	}

	processed := make([]string, 0, len(tokens))
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) > 2 && (strings.HasSuffix(token, "회의") || strings.HasSuffix(token, "관련")) {
			processed = append(processed, string(runes[:len(runes)-2]))
		} else {
			processed = append(processed, token)
		}
	}

	keywords := make([]string, 0, len(processed))
	seen := make(map[string]struct{}, len(processed))
	for _, token := range processed {
		if isStopToken(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	return keywords
}

func isStopToken(token string) bool {
	for _, pattern := range stopPatterns {
		if pattern.MatchString(token) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
