package models

// ChatMessage is a user or system entry in a room's feed. System messages
// narrate state transitions so the client renders a single unified feed.
type ChatMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Message    string `json:"message"`
	CreatedAt  int64  `json:"createdAt"`
	System     bool   `json:"system,omitempty"`
}
