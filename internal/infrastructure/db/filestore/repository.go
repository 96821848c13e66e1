package filestore

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
	"github.com/nyayasetu/portal-api/internal/pkg/metrics"
)

// Repository implements ports.UserRepository over a whole-collection
// RecordStore. Every mutation is load, modify, save under one lock, so two
// concurrent signups for the same email cannot both succeed.
type Repository struct {
	store ports.RecordStore
	mu    sync.RWMutex
	log   zerolog.Logger
}

func NewRepository(store ports.RecordStore, log zerolog.Logger) *Repository {
	return &Repository{store: store, log: log}
}

func (r *Repository) All(ctx context.Context) ([]domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	u, ok := records.FindByEmail(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	if _, exists := records.FindByEmail(user.Email); exists {
		return domain.ErrDuplicateEmail
	}
	return r.store.Save(ctx, append(records, *user))
}

// load treats a corrupt store as empty. That keeps signup and login available
// but the next save overwrites whatever was unreadable.
func (r *Repository) load(ctx context.Context) (domain.RecordCollection, error) {
	records, err := r.store.Load(ctx)
	if err == nil {
		return records, nil
	}
	if errors.Is(err, domain.ErrStorageCorrupt) {
		metrics.StorageCorruptTotal.Inc()
		r.log.Error().Err(err).Msg("user store is corrupt, continuing with an empty collection")
		return domain.RecordCollection{}, nil
	}
	return nil, err
}
