package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type stubSource struct {
	records []Record
	err     error
	gotID   string
}

func (s *stubSource) Records(_ context.Context, chatbotID string) ([]Record, error) {
	s.gotID = chatbotID
	return s.records, s.err
}

type recordingPublisher struct {
	events []string
}

func (p *recordingPublisher) Publish(eventType string, _ any) {
	p.events = append(p.events, eventType)
}

func newTestHandler(source ConversationSource, events Publisher) *Handler {
	h := NewHandler(source, nil, events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.clock = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return h
}

func TestGetComputesSummary(t *testing.T) {
	created := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	source := &stubSource{records: []Record{
		simpleConversation(created,
			Message{Role: RoleUser, Content: "how do I reset my password", Timestamp: ts(created)},
			Message{Role: RoleAssistant, Content: "open settings and choose reset", Timestamp: ts(created.Add(2 * time.Second))},
		),
	}}
	h := newTestHandler(source, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?chatbot_id=bot_1", nil)
	rec := httptest.NewRecorder()

	if err := h.Get(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if source.gotID != "bot_1" {
		t.Fatalf("expected chatbot_id bot_1, got %q", source.gotID)
	}

	var summary Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.TotalConversations != 1 {
		t.Fatalf("expected 1 conversation, got %d", summary.TotalConversations)
	}
}

func TestGetSourceFailure(t *testing.T) {
	h := newTestHandler(&stubSource{err: errors.New("db down")}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	err := h.Get(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %v", err)
	}
}

func TestRefreshPublishesEvent(t *testing.T) {
	pub := &recordingPublisher{}
	h := newTestHandler(&stubSource{}, pub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()

	if err := h.Refresh(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(pub.events) != 1 || pub.events[0] != "analytics.refreshed" {
		t.Fatalf("expected analytics.refreshed event, got %v", pub.events)
	}
}
