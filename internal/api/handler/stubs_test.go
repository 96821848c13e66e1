package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/nyayasetu/portal-api/internal/api/middleware"
	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubCookies struct {
	issued  []*domain.Session
	cleared int
}

func (s *stubCookies) Issue(c echo.Context, sess *domain.Session) error {
	s.issued = append(s.issued, sess)
	return nil
}

func (s *stubCookies) Clear(c echo.Context) { s.cleared++ }

type stubSessionService struct {
	statusFn  func(handle string) domain.SessionStatus
	destroyed []string
	err       error
}

func (s *stubSessionService) Create(_ context.Context, email string) (*domain.Session, error) {
	return &domain.Session{ID: "new", Email: email}, nil
}

func (s *stubSessionService) Status(_ context.Context, handle string) domain.SessionStatus {
	return s.statusFn(handle)
}

func (s *stubSessionService) Destroy(_ context.Context, handle string) error {
	if s.err != nil {
		return s.err
	}
	s.destroyed = append(s.destroyed, handle)
	return nil
}

type stubDirectory struct {
	advocates []domain.AdvocateSummary
	err       error
}

func (s *stubDirectory) ListAdvocates(context.Context) ([]domain.AdvocateSummary, error) {
	return s.advocates, s.err
}

type stubNews struct {
	body json.RawMessage
	err  error
}

func (s *stubNews) TopHeadlines(context.Context) (json.RawMessage, error) {
	return s.body, s.err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// multipartRequest builds a multipart/form-data POST with the given fields
// and, when fileName is non-empty, a photo part.
func multipartRequest(t *testing.T, target string, fields map[string]string, fileName, fileBody string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile("photo", fileName)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		_, _ = io.WriteString(part, fileBody)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

func withSession(c echo.Context, handle string) {
	c.Set(middleware.SessionKey, handle)
}
