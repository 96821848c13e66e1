package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

type DirectoryHandler struct {
	directory ports.DirectoryService
	log       zerolog.Logger
}

func NewDirectoryHandler(directory ports.DirectoryService, log zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, log: log}
}

// ListAdvocates returns every registered advocate. Failures answer 500 with
// an empty array so list-rendering clients need no special case.
//
// @Summary      List advocates
// @Tags         directory
// @Produce      json
// @Success      200   {array}   domain.AdvocateSummary
// @Failure      500   {array}   domain.AdvocateSummary
// @Router       /advocates [get]
func (h *DirectoryHandler) ListAdvocates(c echo.Context) error {
	advocates, err := h.directory.ListAdvocates(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list advocates failed")
		return c.JSON(http.StatusInternalServerError, []domain.AdvocateSummary{})
	}
	return c.JSON(http.StatusOK, advocates)
}
