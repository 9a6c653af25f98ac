package chatbot

import (
	"time"

	"github.com/atlasdesk/support-backend/internal/shared"
)

// Config is the per-workspace chatbot configuration: which upstream bot the
// dashboard talks to and how the widget presents itself.
type Config struct {
	ID             string         `gorm:"primaryKey" json:"id"`
	BotID          string         `gorm:"uniqueIndex;not null" json:"bot_id"`
	DisplayName    string         `json:"display_name"`
	DefaultLocale  string         `gorm:"default:en" json:"default_locale"`
	WidgetSettings shared.JSONMap `gorm:"type:text" json:"widget_settings"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
