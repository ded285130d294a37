package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grantpilot/sectiond/internal/domain"
)

// GenerateSection generates one section of text for a company.
// POST /generate-section
func (h *Handler) GenerateSection(c echo.Context) error {
	var req domain.GenerateSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	result, err := h.service.GenerateSection(c.Request().Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
