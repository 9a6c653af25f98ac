package conversation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"

	"github.com/atlasdesk/support-backend/internal/shared"
	"github.com/labstack/echo/v4"
)

// Export godoc
// @Summary      Export a conversation transcript
// @Description  Streams the transcript as CSV (default) or JSON
// @Tags         conversations
// @Produce      text/csv
// @Param        id      path   string  true   "Conversation ID"
// @Param        format  query  string  false  "csv or json"
// @Success      200
// @Failure      404  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /conversations/{id}/export [get]
func (h *Handler) Export(c echo.Context) error {
	conv, err := h.store.GetWithMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NotFound("conversation_not_found", "conversation not found")
		}
		h.logger.Error("failed to load conversation for export", "error", err, "id", c.Param("id"))
		return shared.InternalError("export_failed", "failed to export conversation")
	}

	if c.QueryParam("format") == "json" {
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="conversation-%s.json"`, conv.ID))
		return c.JSON(http.StatusOK, conv)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="conversation-%s.csv"`, conv.ID))
	c.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(c.Response())
	if err := w.Write([]string{"position", "role", "content", "timestamp"}); err != nil {
		return err
	}
	for _, m := range conv.Messages {
		row := []string{fmt.Sprintf("%d", m.Position), m.Role, m.Content, m.Timestamp}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
