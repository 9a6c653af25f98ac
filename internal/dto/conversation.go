package dto

type ConversationResponse struct {
	ID           string `json:"id"`
	ChatbotID    string `json:"chatbot_id,omitempty"`
	Source       string `json:"source"`
	Customer     string `json:"customer,omitempty"`
	Country      string `json:"country,omitempty"`
	StartedAt    string `json:"started_at,omitempty"`
	MessageCount int    `json:"message_count"`
	LastMessage  string `json:"last_message,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
	Total         int64                  `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

type MessageResponse struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// SyncConversation mirrors the upstream bot API's export shape; timestamps
// come through as raw strings on purpose.
type SyncConversation struct {
	ID        string        `json:"id"`
	ChatbotID string        `json:"chatbot_id,omitempty"`
	CreatedAt string        `json:"created_at"`
	Source    string        `json:"source"`
	Customer  string        `json:"customer,omitempty"`
	Country   string        `json:"country,omitempty"`
	Messages  []SyncMessage `json:"messages"`
}

type SyncMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

type SyncRequest struct {
	Conversations []SyncConversation `json:"conversations"`
}

type SyncResponse struct {
	Synced int `json:"synced"`
}
