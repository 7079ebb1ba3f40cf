package chat

// ChatRequest represents one user turn of the conversation
type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}
