package service

import (
	"context"
	"errors"
	"sync"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

type stubUserRepo struct {
	mu        sync.Mutex
	users     []domain.UserRecord
	allErr    error
	findErr   error
	createErr error
}

func newStubUserRepo(seed ...domain.UserRecord) *stubUserRepo {
	return &stubUserRepo{users: append([]domain.UserRecord(nil), seed...)}
}

func (r *stubUserRepo) All(_ context.Context) ([]domain.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.allErr != nil {
		return nil, r.allErr
	}
	return append([]domain.UserRecord(nil), r.users...), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := domain.RecordCollection(r.users).FindByEmail(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := domain.RecordCollection(r.users).FindByEmail(user.Email); ok {
		return domain.ErrDuplicateEmail
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type countingHasher struct {
	inner  ports.PasswordHasher
	hashes int
}

func (h *countingHasher) Hash(plain string) (string, error) {
	h.hashes++
	return h.inner.Hash(plain)
}

func (h *countingHasher) Verify(plain, hash string) bool {
	return h.inner.Verify(plain, hash)
}

type stubSessions struct {
	created []string
	err     error
}

func (s *stubSessions) Create(_ context.Context, email string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, email)
	return &domain.Session{ID: "sess-" + email, Email: email, Authenticated: true}, nil
}

func (s *stubSessions) Status(_ context.Context, _ string) domain.SessionStatus {
	return domain.SessionStatus{}
}

func (s *stubSessions) Destroy(_ context.Context, _ string) error { return nil }

type stubAttachments struct {
	saved   []string
	removed []string
	saveErr error
}

func (a *stubAttachments) Save(_ context.Context, att ports.Attachment) (string, error) {
	if a.saveErr != nil {
		return "", a.saveErr
	}
	ref := "/uploads/" + att.Filename
	a.saved = append(a.saved, ref)
	return ref, nil
}

func (a *stubAttachments) Remove(_ context.Context, ref string) error {
	a.removed = append(a.removed, ref)
	return nil
}

var errBoom = errors.New("boom")
