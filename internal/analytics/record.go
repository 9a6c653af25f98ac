package analytics

import (
	"strings"
	"time"
)

// Record is one conversation as handed over by the data-fetch side.
// Timestamps stay raw strings: upstream exports carry a mix of formats and
// the occasional garbage value, so every consumer goes through
// parseTimestamp instead of trusting the field.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt string    `json:"created_at"`
	Source    string    `json:"source"`
	Customer  string    `json:"customer,omitempty"`
	Country   string    `json:"country,omitempty"`
	Messages  []Message `json:"messages"`
}

// Message is one turn inside a conversation. Only the "user" and
// "assistant" roles are distinguished; anything else is counted as neither.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var timestampFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp is the single parse-or-absent funnel for raw timestamps.
// A false return means the value contributes to no time-based metric.
func parseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
