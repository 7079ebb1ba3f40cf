package search

import (
	"regexp"
	"strconv"
	"strings"
)

// A previously rendered reply is the only record of what a past turn showed,
// so pagination re-reads counts and meeting cards out of the message text.

var (
	replyCountPattern   = regexp.MustCompile(`회의록\s*(\d+)개`)
	replyTitlePattern   = regexp.MustCompile(`📌\s*(.+)`)
	replyDatePattern    = regexp.MustCompile(`📅\s*날짜:\s*(.+)`)
	replyDescPattern    = regexp.MustCompile(`📝\s*설명:\s*(.+)`)
	replySummaryPattern = regexp.MustCompile(`📋\s*요약:\s*(.+)`)
)

// ReplyMeeting is one meeting card recovered from a rendered reply.
type ReplyMeeting struct {
	Title       string
	Date        string
	Description string
	Summary     string
}

// ParseReplyCount reads the result count out of a rendered reply. Replies
// that never state one describe a single meeting.
func ParseReplyCount(reply string) int {
	if m := replyCountPattern.FindStringSubmatch(reply); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 1
}

// ParseReplyMeetings recovers the meeting cards from a rendered reply.
func ParseReplyMeetings(reply string) []ReplyMeeting {
	var meetings []ReplyMeeting

	for _, section := range strings.Split(reply, sectionDividerText) {
		if !strings.Contains(section, "📌") {
			continue
		}

		var m ReplyMeeting
		if match := replyTitlePattern.FindStringSubmatch(section); match != nil {
			m.Title = strings.TrimSpace(match[1])
		}
		if match := replyDatePattern.FindStringSubmatch(section); match != nil {
			m.Date = strings.TrimSpace(match[1])
		}
		if match := replyDescPattern.FindStringSubmatch(section); match != nil {
			m.Description = strings.TrimSpace(match[1])
		}
		if match := replySummaryPattern.FindStringSubmatch(section); match != nil {
			m.Summary = strings.TrimSpace(match[1])
		}

		if m.Title != "" {
			meetings = append(meetings, m)
		}
	}

	return meetings
}

const sectionDividerText = "━━━━━━━━━━━━━━━━━━━━━━"
