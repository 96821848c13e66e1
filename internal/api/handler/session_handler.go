package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/core/ports"
)

type SessionHandler struct {
	sessions ports.SessionService
	cookies  SessionCookies
}

func NewSessionHandler(sessions ports.SessionService, cookies SessionCookies) *SessionHandler {
	return &SessionHandler{sessions: sessions, cookies: cookies}
}

// Status reports whether the caller is logged in, and as whom.
//
// @Summary      Session status
// @Tags         auth
// @Produce      json
// @Success      200   {object}  domain.SessionStatus
// @Router       /session [get]
func (h *SessionHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.sessions.Status(c.Request().Context(), sessionHandle(c)))
}

// Logout destroys the caller's session, if any.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  successResponse
// @Failure      500   {object}  errorResponse
// @Router       /logout [get]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c.Request().Context(), sessionHandle(c)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
