package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

func newTestCookie() *SessionCookie {
	return NewSessionCookie("sid", "secret", true, http.SameSiteNoneMode)
}

func testSession() *domain.Session {
	now := time.Now()
	return &domain.Session{ID: "abc-123", Email: "a@x.com", Authenticated: true, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
}

// runWithCookie sends a request carrying the given cookie value through the
// middleware and returns the handle the handler observed.
func runWithCookie(t *testing.T, sc *SessionCookie, value string) (string, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: sc.Name, Value: value})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		sid    string
		called bool
	)
	h := sc.Middleware()(func(c echo.Context) error {
		called = true
		sid, _ = c.Get(SessionKey).(string)
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	return sid, sid != ""
}

func issuedValue(t *testing.T, sc *SessionCookie, sess *domain.Session) string {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)
	if err := sc.Issue(c, sess); err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0].Value
}

func TestSessionCookie_IssueAndVerify(t *testing.T) {
	sc := newTestCookie()
	value := issuedValue(t, sc, testSession())

	sid, ok := runWithCookie(t, sc, value)
	if !ok || sid != "abc-123" {
		t.Fatalf("expected handle abc-123, got %q", sid)
	}
}

func TestSessionCookie_Attributes(t *testing.T) {
	sc := newTestCookie()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

	if err := sc.Issue(c, testSession()); err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	header := rec.Header().Get("Set-Cookie")
	for _, want := range []string{"sid=", "HttpOnly", "Secure", "SameSite=None", "Path=/", "Max-Age="} {
		if !strings.Contains(header, want) {
			t.Fatalf("expected %q in Set-Cookie %q", want, header)
		}
	}
}

func TestSessionCookie_NoCookie(t *testing.T) {
	if _, ok := runWithCookie(t, newTestCookie(), ""); ok {
		t.Fatalf("expected no handle without cookie")
	}
}

func TestSessionCookie_Tampered(t *testing.T) {
	sc := newTestCookie()
	value := issuedValue(t, sc, testSession())

	other := NewSessionCookie("sid", "other-secret", true, http.SameSiteNoneMode)
	if _, ok := runWithCookie(t, other, value); ok {
		t.Fatalf("cookie signed with another secret must be rejected")
	}
	if _, ok := runWithCookie(t, sc, "not-a-token"); ok {
		t.Fatalf("garbage cookie must be rejected")
	}
}

func TestSessionCookie_Expired(t *testing.T) {
	sc := newTestCookie()
	sess := testSession()
	value := issuedValue(t, sc, sess)

	sc.now = func() time.Time { return sess.ExpiresAt.Add(time.Minute) }
	if _, ok := runWithCookie(t, sc, value); ok {
		t.Fatalf("expired cookie must be rejected")
	}
}

func TestSessionCookie_RejectsOtherAlgorithms(t *testing.T) {
	sc := newTestCookie()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		ID:        "abc",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, ok := runWithCookie(t, sc, signed); ok {
		t.Fatalf("HS512 token must be rejected")
	}
}

func TestSessionCookie_Clear(t *testing.T) {
	sc := newTestCookie()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/logout", nil), rec)

	sc.Clear(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected an expiring empty cookie, got %+v", cookies)
	}
}
