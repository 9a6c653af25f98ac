// Package events pushes dashboard notifications to connected operator
// clients over websockets. Publishers fire and forget; slow clients are
// dropped rather than allowed to back up the hub.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

type Event struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Hub struct {
	logger     *slog.Logger
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With("component", "events"),
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-h.done:
			h.closeAll()
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("client connected", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- data:
				default:
					delete(h.clients, c)
					close(c.send)
					h.logger.Warn("dropping slow client")
				}
			}
		}
	}
}

func (h *Hub) Stop() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// Publish broadcasts an event to every connected client. It never blocks
// the caller; if the hub's buffer is full the event is dropped.
func (h *Hub) Publish(eventType string, payload any) {
	evt := Event{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("failed to marshal event", "error", err, "type", eventType)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("broadcast buffer full, dropping event", "type", eventType)
	}
}

func (h *Hub) closeAll() {
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
