package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

func newTestRepo(t *testing.T) (*Repository, *Store) {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "users.json"))
	return NewRepository(store, zerolog.Nop()), store
}

func TestRepository_CreateAndFind(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.UserRecord{ID: "1", Email: "a@x.com", Fullname: "A"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.FindByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.Fullname != "A" {
		t.Fatalf("unexpected record: %+v", got)
	}

	if _, err := repo.FindByEmail(ctx, "A@x.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for different case, got %v", err)
	}
}

func TestRepository_CreateDuplicate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	_ = repo.Create(ctx, &domain.UserRecord{ID: "1", Email: "a@x.com"})
	if err := repo.Create(ctx, &domain.UserRecord{ID: "2", Email: "a@x.com"}); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	all, _ := repo.All(ctx)
	if len(all) != 1 || all[0].ID != "1" {
		t.Fatalf("store must be unchanged, got %+v", all)
	}
}

func TestRepository_AllPreservesOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_ = repo.Create(ctx, &domain.UserRecord{ID: fmt.Sprint(i), Email: fmt.Sprintf("u%d@x.com", i)})
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All error: %v", err)
	}
	for i, u := range all {
		if u.ID != fmt.Sprint(i) {
			t.Fatalf("expected insertion order, got %+v", all)
		}
	}
}

func TestRepository_ConcurrentSignupsSameEmail(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const n = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, &domain.UserRecord{ID: fmt.Sprint(i), Email: "race@x.com"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrDuplicateEmail):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if ok != 1 || dups != n-1 {
		t.Fatalf("expected exactly one success, got ok=%d dups=%d", ok, dups)
	}
	all, _ := repo.All(ctx)
	if len(all) != 1 {
		t.Fatalf("expected one stored record, got %d", len(all))
	}
}

func TestRepository_RecoversFromCorruptStore(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()
	if err := os.WriteFile(store.Path(), []byte("{garbage"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil || len(all) != 0 {
		t.Fatalf("expected empty collection on corrupt store, got %+v, %v", all, err)
	}

	if err := repo.Create(ctx, &domain.UserRecord{ID: "1", Email: "a@x.com"}); err != nil {
		t.Fatalf("Create after corruption error: %v", err)
	}
	if _, err := repo.FindByEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("expected record readable after rewrite: %v", err)
	}
}

type failingStore struct{ err error }

func (f failingStore) Load(context.Context) (domain.RecordCollection, error) { return nil, f.err }
func (f failingStore) Save(context.Context, domain.RecordCollection) error   { return f.err }

func TestRepository_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	repo := NewRepository(failingStore{err: boom}, zerolog.Nop())

	if _, err := repo.All(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if err := repo.Create(context.Background(), &domain.UserRecord{Email: "a@x.com"}); !errors.Is(err, boom) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
