package dto

import "github.com/atlasdesk/support-backend/internal/shared"

type ChatbotConfigRequest struct {
	BotID          string         `json:"bot_id"`
	DisplayName    string         `json:"display_name"`
	DefaultLocale  string         `json:"default_locale"`
	WidgetSettings shared.JSONMap `json:"widget_settings"`
}

type RotateBotRequest struct {
	BotID string `json:"bot_id"`
}
