package operator

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/atlasdesk/support-backend/internal/auth"
	"github.com/atlasdesk/support-backend/internal/dto"
	"github.com/labstack/echo/v4"
)

func setupHandler(t *testing.T) (*Handler, *Store, *echo.Echo) {
	t.Helper()
	store := NewStore(setupTestDB(t))
	validator := auth.NewJWTValidator([]byte("test-key"))
	logger := slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
	h := NewHandler(store, validator, logger)
	return h, store, echo.New()
}

func TestLogin(t *testing.T) {
	h, store, e := setupHandler(t)
	op := &Operator{Email: "ana@example.com", Name: "Ana", Role: RoleAdmin}
	if err := store.Create(context.Background(), op, "s3cret"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	body := `{"email":"ana@example.com","password":"s3cret"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.Operator.Email != "ana@example.com" {
		t.Fatalf("unexpected operator: %+v", resp.Operator)
	}

	claims, err := auth.NewJWTValidator([]byte("test-key")).Validate(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.OperatorID != op.ID {
		t.Fatalf("expected subject %s, got %s", op.ID, claims.OperatorID)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	h, store, e := setupHandler(t)
	op := &Operator{Email: "ana@example.com", Name: "Ana", Role: RoleAgent}
	if err := store.Create(context.Background(), op, "s3cret"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	body := `{"email":"ana@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestMe(t *testing.T) {
	h, store, e := setupHandler(t)
	op := &Operator{Email: "ana@example.com", Name: "Ana", Role: RoleAgent}
	if err := store.Create(context.Background(), op, "s3cret"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.SetClaimsForTest(c, &auth.Claims{OperatorID: op.ID})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me: %v", err)
	}
	var resp dto.OperatorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != op.ID || resp.Name != "Ana" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestMeWithoutClaims(t *testing.T) {
	h, _, e := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()

	err := h.Me(e.NewContext(req, rec))
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
