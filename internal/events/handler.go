package events

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	hub    *Hub
	logger *slog.Logger
}

func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to dashboard events
// @Description  Upgrades the connection to a websocket and streams events as JSON
// @Tags         events
// @Security     BearerAuth
// @Router       /events [get]
func (h *Handler) Subscribe(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return err
	}

	cl := &client{
		ws:     ws,
		hub:    h.hub,
		logger: h.logger,
		send:   make(chan []byte, 64),
	}
	h.hub.register <- cl

	go cl.writePump()
	cl.readPump()
	return nil
}
