package conversation

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/atlasdesk/support-backend/internal/dto"
	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// Publisher pushes dashboard events when conversations change.
type Publisher interface {
	Publish(eventType string, payload any)
}

type Handler struct {
	store  *Store
	events Publisher
	logger *slog.Logger
}

func NewHandler(store *Store, events Publisher, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		events: events,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("/sync", h.Sync)
	g.GET("/:id", h.Get)
	g.GET("/:id/messages", h.Messages)
	g.GET("/:id/export", h.Export)
	g.DELETE("/:id", h.Delete)
}

func toResponse(conv *Conversation) dto.ConversationResponse {
	resp := dto.ConversationResponse{
		ID:           conv.ID,
		ChatbotID:    conv.ChatbotID,
		Source:       conv.Source,
		Customer:     conv.Customer,
		Country:      conv.Country,
		StartedAt:    conv.StartedAt,
		MessageCount: len(conv.Messages),
		CreatedAt:    conv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    conv.UpdatedAt.Format(time.RFC3339),
	}
	if n := len(conv.Messages); n > 0 {
		last := conv.Messages[n-1].Content
		if len(last) > 80 {
			last = last[:80] + "..."
		}
		resp.LastMessage = last
	}
	return resp
}

// List godoc
// @Summary      List conversations
// @Description  Returns conversations, newest first, with optional source and customer filters
// @Tags         conversations
// @Produce      json
// @Success      200  {object}  dto.ConversationListResponse
// @Failure      401  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations [get]
func (h *Handler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	if offset < 0 {
		offset = 0
	}

	filter := ListFilter{
		ChatbotID: c.QueryParam("chatbot_id"),
		Source:    c.QueryParam("source"),
		Customer:  c.QueryParam("customer"),
		Limit:     limit,
		Offset:    offset,
	}

	convs, total, err := h.store.List(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("failed to list conversations", "error", err)
		return shared.InternalError("list_failed", "failed to list conversations")
	}

	resp := dto.ConversationListResponse{
		Conversations: make([]dto.ConversationResponse, 0, len(convs)),
		Total:         total,
		Limit:         filter.Limit,
		Offset:        filter.Offset,
	}
	if resp.Limit <= 0 {
		resp.Limit = defaultListLimit
	}
	for _, conv := range convs {
		resp.Conversations = append(resp.Conversations, toResponse(conv))
	}

	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get a conversation
// @Tags         conversations
// @Produce      json
// @Param        id  path  string  true  "Conversation ID"
// @Success      200  {object}  dto.ConversationResponse
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations/{id} [get]
func (h *Handler) Get(c echo.Context) error {
	conv, err := h.store.GetWithMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("conversation_not_found", "conversation not found")
		}
		h.logger.Error("failed to get conversation", "error", err, "id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get conversation")
	}

	return c.JSON(http.StatusOK, toResponse(conv))
}

// Messages godoc
// @Summary      Get conversation messages
// @Tags         conversations
// @Produce      json
// @Param        id  path  string  true  "Conversation ID"
// @Success      200  {object}  dto.MessageListResponse
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations/{id}/messages [get]
func (h *Handler) Messages(c echo.Context) error {
	conv, err := h.store.GetWithMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("conversation_not_found", "conversation not found")
		}
		h.logger.Error("failed to get messages", "error", err, "id", c.Param("id"))
		return shared.InternalError("get_failed", "failed to get messages")
	}

	resp := dto.MessageListResponse{Messages: make([]dto.MessageResponse, 0, len(conv.Messages))}
	for _, m := range conv.Messages {
		resp.Messages = append(resp.Messages, dto.MessageResponse{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Sync godoc
// @Summary      Sync conversations from the bot provider
// @Description  Upserts a batch of conversations already fetched from the upstream bot API
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SyncResponse
// @Failure      400  {object}  shared.APIError
// @Failure      500  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations/sync [post]
func (h *Handler) Sync(c echo.Context) error {
	var req dto.SyncRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}

	convs := make([]*Conversation, 0, len(req.Conversations))
	for _, sc := range req.Conversations {
		conv := &Conversation{
			ID:        sc.ID,
			ChatbotID: sc.ChatbotID,
			Source:    sc.Source,
			Customer:  sc.Customer,
			Country:   sc.Country,
			StartedAt: sc.CreatedAt,
		}
		for _, sm := range sc.Messages {
			conv.Messages = append(conv.Messages, Message{
				Role:      sm.Role,
				Content:   sm.Content,
				Timestamp: sm.Timestamp,
			})
		}
		convs = append(convs, conv)
	}

	if err := h.store.UpsertBatch(c.Request().Context(), convs); err != nil {
		h.logger.Error("failed to sync conversations", "error", err)
		return shared.InternalError("sync_failed", "failed to sync conversations")
	}

	if h.events != nil && len(convs) > 0 {
		h.events.Publish("conversations.synced", map[string]any{
			"count": len(convs),
		})
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{Synced: len(convs)})
}

// Delete godoc
// @Summary      Delete a conversation
// @Tags         conversations
// @Param        id  path  string  true  "Conversation ID"
// @Success      204  "No Content"
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations/{id} [delete]
func (h *Handler) Delete(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("conversation_not_found", "conversation not found")
		}
		h.logger.Error("failed to delete conversation", "error", err, "id", c.Param("id"))
		return shared.InternalError("delete_failed", "failed to delete conversation")
	}

	return c.NoContent(http.StatusNoContent)
}
