package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateKind tells how a date expression was phrased.
type DateKind string

const (
	DateKindNone     DateKind = ""
	DateKindRelative DateKind = "relative"
	DateKindAbsolute DateKind = "absolute"
	DateKindRange    DateKind = "range"
)

// DateInfo is the resolved window for a date expression. Original keeps the
// phrase as the user wrote it for use in follow-up messages. Recent is set
// only for the open-ended "lately" window, which downstream treats as a soft
// hint rather than a hard bound.
type DateInfo struct {
	Kind     DateKind
	Start    time.Time
	End      time.Time
	Original string
	Recent   bool
}

func (d DateInfo) HasRange() bool {
	return d.Kind != DateKindNone
}

var (
	dayRangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일\s*부터\s*(\d{1,2})월\s*(\d{1,2})일`),
		regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일\s*부터\s*오늘(?:까지)?`),
		regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일\s*[-~]\s*(\d{1,2})월\s*(\d{1,2})일`),
		regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일\s*[-~]\s*오늘`),
	}
	monthOnlyPattern  = regexp.MustCompile(`(\d{1,2})월`)
	monthDayPattern   = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	fullDatePattern   = regexp.MustCompile(`(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일`)
	monthRangePattern = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2})월\s*~\s*(\d{1,2})월`),
		regexp.MustCompile(`(\d{1,2})월부터\s*(\d{1,2})월까지`),
	}
)

// makeDate builds a calendar date and reports whether it exists. time.Date
// normalizes overflow (Feb 31 becomes Mar 3), so the components are checked
// back against the result.
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func monthEnd(year, month int, loc *time.Location) time.Time {
	firstOfNext := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, loc)
	return dayEnd(firstOfNext.AddDate(0, 0, -1))
}

// ParseDate resolves a date expression in query to a concrete window
// relative to now. Rules apply in priority order and the first match wins:
// explicit day ranges, relative windows, a bare month, an exact date, then
// month-to-month ranges. Weeks start on Monday. Expressions naming
// impossible calendar dates are skipped so a later rule may still match.
func ParseDate(query string, now time.Time) DateInfo {
	loc := now.Location()

	// explicit day ranges win over everything, including the 오늘 they
	// may contain
	for _, pattern := range dayRangePatterns {
		m := pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		startMonth, _ := strconv.Atoi(m[1])
		startDay, _ := strconv.Atoi(m[2])
		start, ok := makeDate(now.Year(), startMonth, startDay, loc)
		if !ok {
			continue
		}
		if strings.Contains(m[0], "오늘") {
			return DateInfo{
				Kind:     DateKindRange,
				Start:    start,
				End:      dayEnd(now),
				Original: fmt.Sprintf("%d월 %d일부터 오늘", startMonth, startDay),
			}
		}
		endMonth, _ := strconv.Atoi(m[3])
		endDay, _ := strconv.Atoi(m[4])
		end, ok := makeDate(now.Year(), endMonth, endDay, loc)
		if !ok {
			continue
		}
		return DateInfo{
			Kind:     DateKindRange,
			Start:    start,
			End:      dayEnd(end),
			Original: fmt.Sprintf("%d월 %d일부터 %d월 %d일", startMonth, startDay, endMonth, endDay),
		}
	}

	if strings.Contains(query, "오늘") {
		return DateInfo{Kind: DateKindRelative, Start: dayStart(now), End: dayEnd(now), Original: "오늘"}
	}

	if strings.Contains(query, "어제") {
		y := now.AddDate(0, 0, -1)
		return DateInfo{Kind: DateKindRelative, Start: dayStart(y), End: dayEnd(y), Original: "어제"}
	}

	if strings.Contains(query, "모레") {
		d := now.AddDate(0, 0, 2)
		return DateInfo{Kind: DateKindRelative, Start: dayStart(d), End: dayEnd(d), Original: "모레"}
	}

	if strings.Contains(query, "내일") {
		d := now.AddDate(0, 0, 1)
		return DateInfo{Kind: DateKindRelative, Start: dayStart(d), End: dayEnd(d), Original: "내일"}
	}

	if strings.Contains(query, "이번주") || strings.Contains(query, "이번 주") {
		weekStart := now.AddDate(0, 0, -daysSinceMonday(now))
		return DateInfo{
			Kind:     DateKindRelative,
			Start:    dayStart(weekStart),
			End:      dayEnd(weekStart.AddDate(0, 0, 6)),
			Original: "이번주",
		}
	}

	if containsAny(query, "지난주", "지난 주", "저번주", "저번 주") {
		weekStart := now.AddDate(0, 0, -(daysSinceMonday(now) + 7))
		return DateInfo{
			Kind:     DateKindRelative,
			Start:    dayStart(weekStart),
			End:      dayEnd(weekStart.AddDate(0, 0, 6)),
			Original: "지난주",
		}
	}

	if strings.Contains(query, "이번달") || strings.Contains(query, "이번 달") {
		return DateInfo{
			Kind:     DateKindRelative,
			Start:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc),
			End:      monthEnd(now.Year(), int(now.Month()), loc),
			Original: "이번달",
		}
	}

	if containsAny(query, "지난달", "지난 달", "저번달", "저번 달") {
		firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		firstOfLast := firstOfThis.AddDate(0, -1, 0)
		return DateInfo{
			Kind:     DateKindRelative,
			Start:    firstOfLast,
			End:      dayEnd(firstOfThis.AddDate(0, 0, -1)),
			Original: "지난달",
		}
	}

	if strings.Contains(query, "최근") || strings.Contains(query, "요즘") {
		return DateInfo{
			Kind:     DateKindRelative,
			Start:    dayStart(now.AddDate(0, 0, -14)),
			End:      dayEnd(now),
			Original: "최근",
			Recent:   true,
		}
	}

	// a bare month means the whole month, unless the query actually names
	// a specific day or a month-to-month span
	if m := monthOnlyPattern.FindStringSubmatch(query); m != nil {
		if !monthDayPattern.MatchString(query) && !matchesAny(query, monthRangePattern) {
			month, _ := strconv.Atoi(m[1])
			if start, ok := makeDate(now.Year(), month, 1, loc); ok {
				return DateInfo{
					Kind:     DateKindRange,
					Start:    start,
					End:      monthEnd(now.Year(), month, loc),
					Original: fmt.Sprintf("%d월", month),
				}
			}
		}
	}

	if m := fullDatePattern.FindStringSubmatch(query); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if d, ok := makeDate(year, month, day, loc); ok {
			return DateInfo{Kind: DateKindAbsolute, Start: d, End: dayEnd(d), Original: m[0]}
		}
	}

	if m := monthDayPattern.FindStringSubmatch(query); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if d, ok := makeDate(now.Year(), month, day, loc); ok {
			return DateInfo{Kind: DateKindAbsolute, Start: d, End: dayEnd(d), Original: m[0]}
		}
	}

	for _, pattern := range monthRangePattern {
		m := pattern.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		startMonth, _ := strconv.Atoi(m[1])
		endMonth, _ := strconv.Atoi(m[2])
		start, ok := makeDate(now.Year(), startMonth, 1, loc)
		if !ok || endMonth < 1 || endMonth > 12 {
			continue
		}
		return DateInfo{
			Kind:     DateKindRange,
			Start:    start,
			End:      monthEnd(now.Year(), endMonth, loc),
			Original: m[0],
		}
	}

	return DateInfo{}
}

// WithLocationJosa appends the locative particle fitting a date phrase.
// Day-relative words take 은, everything else takes 에는.
func WithLocationJosa(dateStr string) string {
	if dateStr == "" {
		return dateStr
	}
	if containsAny(dateStr, "오늘", "어제", "내일", "모레") {
		return dateStr + "은"
	}
	return dateStr + "에는"
}

func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func matchesAny(s string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
