package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/grantpilot/sectiond/internal/service"
)

// GetHistory lists past generation results for a company, newest first.
// GET /history/:company_id
func (h *Handler) GetHistory(c echo.Context) error {
	companyID := c.Param("company_id")
	limit := service.DefaultHistoryLimit
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil {
			limit = val
		}
	}

	resp, err := h.service.History(c.Request().Context(), companyID, limit)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}
