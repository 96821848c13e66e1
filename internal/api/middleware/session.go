package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// SessionKey is the echo context key holding the verified session handle.
const SessionKey = "session_id"

// SessionCookie signs session handles into an HS256 JWT cookie and verifies
// them on the way back in. The cookie carries only the handle and its expiry;
// session state stays server-side.
type SessionCookie struct {
	Name     string
	Secret   string
	Secure   bool
	SameSite http.SameSite
	now      func() time.Time
}

func NewSessionCookie(name, secret string, secure bool, sameSite http.SameSite) *SessionCookie {
	return &SessionCookie{Name: name, Secret: secret, Secure: secure, SameSite: sameSite, now: time.Now}
}

// Middleware puts the handle of a valid cookie under SessionKey. A missing,
// tampered or expired cookie simply yields no handle.
func (sc *SessionCookie) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sc.Name)
			if err == nil && cookie.Value != "" {
				if sid, err := sc.parse(cookie.Value); err == nil {
					c.Set(SessionKey, sid)
				}
			}
			return next(c)
		}
	}
}

// Issue writes the cookie for sess.
func (sc *SessionCookie) Issue(c echo.Context, sess *domain.Session) error {
	token, err := sc.sign(sess)
	if err != nil {
		return err
	}
	maxAge := int(sess.ExpiresAt.Sub(sc.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}
	c.SetCookie(sc.cookie(token, maxAge, sess.ExpiresAt))
	return nil
}

// Clear expires the cookie on the client.
func (sc *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(sc.cookie("", -1, time.Unix(0, 0)))
}

func (sc *SessionCookie) cookie(value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     sc.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: sc.SameSite,
	}
}

func (sc *SessionCookie) sign(sess *domain.Session) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        sess.ID,
		IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
		ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(sc.Secret))
}

func (sc *SessionCookie) parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(sc.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(sc.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if claims.ID == "" {
		return "", errors.New("session cookie without id")
	}
	return claims.ID, nil
}
