package translation

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
	g.GET("", h.Locales)
	g.GET("/:locale", h.Strings)
	g.POST("/:locale", h.Import)
	g.PUT("/:locale/:key", h.Upsert)
	g.DELETE("/:locale/:key", h.Delete)
}

// Locales godoc
// @Summary      List locales with translations
// @Tags         translations
// @Produce      json
// @Success      200  {object}  dto.LocaleListResponse
// @Security     BearerAuth
// @Router       /translations [get]
func (h *Handler) Locales(c echo.Context) error {
	locales, err := h.store.Locales(c.Request().Context())
	if err != nil {
		h.logger.Error("failed to list locales", "error", err)
		return shared.InternalError("translations_failed", "failed to list locales")
	}
	return c.JSON(http.StatusOK, dto.LocaleListResponse{Locales: locales})
}

// Strings godoc
// @Summary      Get all strings for a locale
// @Tags         translations
// @Produce      json
// @Param        locale  path  string  true  "Locale code"
// @Success      200  {object}  map[string]string
// @Security     BearerAuth
// @Router       /translations/{locale} [get]
func (h *Handler) Strings(c echo.Context) error {
	strings, err := h.store.Strings(c.Request().Context(), c.Param("locale"))
	if err != nil {
		h.logger.Error("failed to load strings", "error", err, "locale", c.Param("locale"))
		return shared.InternalError("translations_failed", "failed to load strings")
	}
	return c.JSON(http.StatusOK, strings)
}

// Import godoc
// @Summary      Bulk import a locale map
// @Tags         translations
// @Accept       json
// @Produce      json
// @Param        locale  path  string  true  "Locale code"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /translations/{locale} [post]
func (h *Handler) Import(c echo.Context) error {
	var strings map[string]string
	if err := c.Bind(&strings); err != nil {
		return shared.BadRequest("invalid_body", "expected a flat key/value map")
	}

	if err := h.store.Import(c.Request().Context(), c.Param("locale"), strings); err != nil {
		h.logger.Error("failed to import strings", "error", err, "locale", c.Param("locale"))
		return shared.InternalError("translations_failed", "failed to import strings")
	}
	return c.JSON(http.StatusOK, dto.ImportResponse{Imported: len(strings)})
}

// Upsert godoc
// @Summary      Set one translation string
// @Tags         translations
// @Accept       json
// @Param        locale  path  string  true  "Locale code"
// @Param        key     path  string  true  "String key"
// @Success      204  "No Content"
// @Failure      400  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /translations/{locale}/{key} [put]
func (h *Handler) Upsert(c echo.Context) error {
	var req dto.TranslationValueRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}

	err := h.store.Upsert(c.Request().Context(), c.Param("locale"), c.Param("key"), req.Value)
	if err != nil {
		h.logger.Error("failed to upsert string", "error", err,
			"locale", c.Param("locale"), "key", c.Param("key"))
		return shared.InternalError("translations_failed", "failed to save string")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete one translation string
// @Tags         translations
// @Param        locale  path  string  true  "Locale code"
// @Param        key     path  string  true  "String key"
// @Success      204  "No Content"
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /translations/{locale}/{key} [delete]
func (h *Handler) Delete(c echo.Context) error {
	err := h.store.Delete(c.Request().Context(), c.Param("locale"), c.Param("key"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("string_not_found", "translation string not found")
		}
		h.logger.Error("failed to delete string", "error", err)
		return shared.InternalError("translations_failed", "failed to delete string")
	}
	return c.NoContent(http.StatusNoContent)
}
