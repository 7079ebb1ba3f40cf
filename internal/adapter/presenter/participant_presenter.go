package presenter

import (
	"fmt"
	"strings"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
	"github.com/munwalk/dialog-ai/internal/domain/repositories"
)

// FormatMeetingParticipants renders the roster of one meeting with each
// attendee's job tag when known.
func FormatMeetingParticipants(meeting *entities.Meeting, participants []repositories.ParticipantInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "👥 %s 참석자 %d명:\n\n", meeting.Title, len(participants))
	for i, p := range participants {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Job != "" && p.Job != entities.JobNone {
			fmt.Fprintf(&b, " (%s)", jobLabel(p.Job))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatPersonMeetings renders the meetings a named person attended.
func FormatPersonMeetings(user *entities.User, meetings []*entities.Meeting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "📋 %s님이 참석한 회의 %d개:\n\n", user.Name, len(meetings))
	for i, m := range meetings {
		fmt.Fprintf(&b, "%d. 📌 %s (%s, %s)\n",
			i+1, m.Title, m.ScheduledAt.Format("1월 2일"), StatusLabel(m.Status))
	}

	return strings.TrimRight(b.String(), "\n")
}
