package chatbot

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atlasdesk/support-backend/internal/dto"
	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Get)
	g.PUT("", h.Update)
	g.POST("/rotate", h.Rotate)
}

// Get godoc
// @Summary      Get chatbot configuration
// @Tags         chatbot
// @Produce      json
// @Success      200  {object}  chatbot.Config
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /chatbot [get]
func (h *Handler) Get(c echo.Context) error {
	cfg, err := h.store.Get(c.Request().Context())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("chatbot_not_configured", "chatbot is not configured yet")
		}
		h.logger.Error("failed to load chatbot config", "error", err)
		return shared.InternalError("config_failed", "failed to load configuration")
	}
	return c.JSON(http.StatusOK, cfg)
}

// Update godoc
// @Summary      Update chatbot configuration
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Success      200  {object}  chatbot.Config
// @Failure      400  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /chatbot [put]
func (h *Handler) Update(c echo.Context) error {
	var req dto.ChatbotConfigRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}
	if req.BotID == "" {
		return shared.BadRequest("missing_bot_id", "bot_id is required")
	}

	cfg := &Config{
		BotID:          req.BotID,
		DisplayName:    req.DisplayName,
		DefaultLocale:  req.DefaultLocale,
		WidgetSettings: req.WidgetSettings,
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
	}

	if err := h.store.Upsert(c.Request().Context(), cfg); err != nil {
		h.logger.Error("failed to save chatbot config", "error", err)
		return shared.InternalError("config_failed", "failed to save configuration")
	}
	return c.JSON(http.StatusOK, cfg)
}

// Rotate godoc
// @Summary      Point the dashboard at a different bot ID
// @Tags         chatbot
// @Accept       json
// @Produce      json
// @Success      200  {object}  chatbot.Config
// @Failure      400  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /chatbot/rotate [post]
func (h *Handler) Rotate(c echo.Context) error {
	var req dto.RotateBotRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}
	if req.BotID == "" {
		return shared.BadRequest("missing_bot_id", "bot_id is required")
	}

	cfg, err := h.store.RotateBotID(c.Request().Context(), req.BotID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("chatbot_not_configured", "chatbot is not configured yet")
		}
		h.logger.Error("failed to rotate bot id", "error", err)
		return shared.InternalError("config_failed", "failed to rotate bot id")
	}
	return c.JSON(http.StatusOK, cfg)
}
