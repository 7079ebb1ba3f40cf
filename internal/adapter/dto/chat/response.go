package chat

// ChatResponse carries the rendered reply plus the records behind it, so API
// consumers can link through to full meeting views.
type ChatResponse struct {
	Reply            string   `json:"reply"`
	ContextMeetingID string   `json:"context_meeting_id,omitempty"`
	MeetingIDs       []string `json:"meeting_ids,omitempty"`
}
