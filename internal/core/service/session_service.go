package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
	"github.com/nyayasetu/portal-api/internal/pkg/metrics"
)

// DefaultSessionTTL is the lifetime of a session measured from creation.
const DefaultSessionTTL = 24 * time.Hour

// SessionService implements ports.SessionService on top of a SessionStore.
type SessionService struct {
	store ports.SessionStore
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewSessionService(store ports.SessionStore, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{store: store, ttl: ttl, log: log, now: time.Now}
}

// TTL returns the fixed session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create allocates an authenticated session bound to email.
func (s *SessionService) Create(ctx context.Context, email string) (*domain.Session, error) {
	now := s.now().UTC()
	sess := domain.Session{
		ID:            uuid.NewString(),
		Email:         email,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, err
	}
	metrics.SessionsCreatedTotal.Inc()
	return &sess, nil
}

// Status never fails: unknown, expired or unreadable sessions report logged out.
func (s *SessionService) Status(ctx context.Context, handle string) domain.SessionStatus {
	loggedOut := domain.SessionStatus{LoggedIn: false, Email: nil}
	if handle == "" {
		return loggedOut
	}

	sess, err := s.store.Get(ctx, handle)
	if err != nil {
		if !errors.Is(err, domain.ErrSessionNotFound) {
			s.log.Error().Err(err).Msg("session lookup failed")
		}
		return loggedOut
	}
	if !sess.Authenticated || sess.Expired(s.now()) {
		return loggedOut
	}

	email := sess.Email
	return domain.SessionStatus{LoggedIn: true, Email: &email}
}

// Destroy clears the session. Unknown handles are not an error.
func (s *SessionService) Destroy(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	return s.store.Delete(ctx, handle)
}
