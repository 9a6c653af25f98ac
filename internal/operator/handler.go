package operator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atlasdesk/support-backend/internal/auth"
	"github.com/atlasdesk/support-backend/internal/dto"
	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store     *Store
	validator *auth.JWTValidator
	logger    *slog.Logger
}

func NewHandler(store *Store, validator *auth.JWTValidator, logger *slog.Logger) *Handler {
	return &Handler{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// RegisterPublicRoutes mounts the endpoints that work without a token.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/me", h.Me)
}

// Login godoc
// @Summary      Operator login
// @Description  Exchanges email and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.LoginResponse
// @Failure      400  {object}  shared.APIError
// @Failure      401  {object}  shared.APIError
// @Router       /auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return shared.BadRequest("missing_credentials", "email and password are required")
	}

	op, err := h.store.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return shared.Unauthorized("invalid_credentials", "invalid email or password")
	}

	token, err := h.validator.Issue(op.ID, op.Email, op.Name, string(op.Role))
	if err != nil {
		h.logger.Error("failed to issue token", "error", err, "operator_id", op.ID)
		return shared.InternalError("token_failed", "failed to issue token")
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Operator: dto.OperatorResponse{
			ID:    op.ID,
			Email: op.Email,
			Name:  op.Name,
			Role:  string(op.Role),
		},
	})
}

// Me godoc
// @Summary      Get the authenticated operator
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.OperatorResponse
// @Failure      401  {object}  shared.APIError
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *Handler) Me(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	op, err := h.store.GetByID(c.Request().Context(), claims.OperatorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("operator_not_found", "operator not found")
		}
		h.logger.Error("failed to get operator", "error", err, "operator_id", claims.OperatorID)
		return shared.InternalError("get_failed", "failed to get operator")
	}

	return c.JSON(http.StatusOK, dto.OperatorResponse{
		ID:    op.ID,
		Email: op.Email,
		Name:  op.Name,
		Role:  string(op.Role),
	})
}
