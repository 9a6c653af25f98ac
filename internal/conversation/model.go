package conversation

import "time"

type Conversation struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ChatbotID string    `gorm:"index" json:"chatbot_id"`
	Source    string    `gorm:"not null;index" json:"source"`
	Customer  string    `gorm:"index" json:"customer,omitempty"`
	Country   string    `json:"country,omitempty"`
	StartedAt string    `json:"started_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

// Message keeps Timestamp as the raw upstream string: provider exports mix
// formats and sometimes ship garbage, and the analytics side owns the
// parse-or-absent decision.
type Message struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	ConversationID string    `gorm:"not null;index" json:"-"`
	Position       int       `gorm:"not null" json:"position"`
	Role           string    `gorm:"not null" json:"role"`
	Content        string    `json:"content"`
	Timestamp      string    `json:"timestamp,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
