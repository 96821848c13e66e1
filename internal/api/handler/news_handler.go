package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/ports"
	"github.com/nyayasetu/portal-api/internal/pkg/metrics"
)

type NewsHandler struct {
	news ports.NewsService
	log  zerolog.Logger
}

func NewNewsHandler(news ports.NewsService, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{news: news, log: log}
}

// Headlines relays the upstream top-headlines document.
//
// @Summary      Top headlines
// @Tags         news
// @Produce      json
// @Success      200   {object}  map[string]any
// @Failure      500   {object}  newsErrorResponse
// @Router       /news [get]
func (h *NewsHandler) Headlines(c echo.Context) error {
	body, err := h.news.TopHeadlines(c.Request().Context())
	if err != nil {
		metrics.NewsUpstreamErrorsTotal.Inc()
		h.log.Error().Err(err).Msg("news fetch failed")
		return c.JSON(http.StatusInternalServerError, newsErrorResponse{Error: "Unable to fetch news"})
	}
	return c.JSONBlob(http.StatusOK, body)
}
