package analytics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// ConversationSource hands over the already-fetched conversation batch;
// the handler does not know or care how it was stored.
type ConversationSource interface {
	Records(ctx context.Context, chatbotID string) ([]Record, error)
}

// Publisher pushes dashboard events after a refresh.
type Publisher interface {
	Publish(eventType string, payload any)
}

type Handler struct {
	source ConversationSource
	cache  *Cache
	events Publisher
	clock  func() time.Time
	logger *slog.Logger
}

func NewHandler(source ConversationSource, cache *Cache, events Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		source: source,
		cache:  cache,
		events: events,
		clock:  time.Now,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Get)
	g.POST("/refresh", h.Refresh)
}

// Get godoc
// @Summary      Get analytics summary
// @Description  Returns the aggregated conversation analytics, cached for a few minutes
// @Tags         analytics
// @Produce      json
// @Param        chatbot_id  query  string  false  "Restrict to one chatbot"
// @Success      200  {object}  analytics.Summary
// @Failure      401  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /analytics [get]
func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	chatbotID := c.QueryParam("chatbot_id")

	if h.cache != nil {
		if cached, err := h.cache.Get(ctx, chatbotID); err == nil {
			return c.JSON(http.StatusOK, cached)
		} else if !errors.Is(err, shared.ErrNotFound) {
			h.logger.Warn("analytics cache read failed", "error", err)
		}
	}

	summary, err := h.compute(ctx, chatbotID)
	if err != nil {
		h.logger.Error("failed to load conversations for analytics", "error", err)
		return shared.InternalError("analytics_failed", "failed to compute analytics")
	}

	return c.JSON(http.StatusOK, summary)
}

// Refresh godoc
// @Summary      Recompute analytics
// @Description  Drops the cached summary and recomputes it from the current conversation set
// @Tags         analytics
// @Produce      json
// @Param        chatbot_id  query  string  false  "Restrict to one chatbot"
// @Success      200  {object}  analytics.Summary
// @Failure      401  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /analytics/refresh [post]
func (h *Handler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	chatbotID := c.QueryParam("chatbot_id")

	if h.cache != nil {
		if err := h.cache.Invalidate(ctx, chatbotID); err != nil {
			h.logger.Warn("analytics cache invalidation failed", "error", err)
		}
	}

	summary, err := h.compute(ctx, chatbotID)
	if err != nil {
		h.logger.Error("failed to recompute analytics", "error", err)
		return shared.InternalError("analytics_failed", "failed to compute analytics")
	}

	if h.events != nil {
		h.events.Publish("analytics.refreshed", map[string]any{
			"chatbot_id": chatbotID,
		})
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *Handler) compute(ctx context.Context, chatbotID string) (*Summary, error) {
	records, err := h.source.Records(ctx, chatbotID)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(records, h.clock())

	if h.cache != nil {
		if err := h.cache.Set(ctx, chatbotID, summary); err != nil {
			h.logger.Warn("analytics cache write failed", "error", err)
		}
	}

	return summary, nil
}
