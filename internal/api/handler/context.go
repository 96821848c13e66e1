package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/api/middleware"
	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// SessionCookies writes and clears the client's session cookie.
type SessionCookies interface {
	Issue(c echo.Context, sess *domain.Session) error
	Clear(c echo.Context)
}

// sessionHandle returns the handle verified by the Session middleware, or ""
// when the request carries no valid session cookie.
func sessionHandle(c echo.Context) string {
	sid, _ := c.Get(middleware.SessionKey).(string)
	return sid
}
