package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

// LocalStore writes attachments under a directory served at URLPrefix.
type LocalStore struct {
	dir string
	now func() time.Time
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, now: time.Now}, nil
}

// Dir returns the directory holding the files.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Save copies a.Body into a new file and returns "/uploads/<name>".
func (s *LocalStore) Save(ctx context.Context, a ports.Attachment) (string, error) {
	name := GenerateName(a.Filename, s.now())
	target := filepath.Join(s.dir, name)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAttachmentWrite, err)
	}

	if _, err := io.Copy(f, ctxReader{ctx: ctx, r: a.Body}); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("%w: %v", domain.ErrAttachmentWrite, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("%w: %v", domain.ErrAttachmentWrite, err)
	}

	return URLPrefix + "/" + name, nil
}

// Remove deletes a file previously returned by Save. Unknown refs are ignored.
func (s *LocalStore) Remove(_ context.Context, ref string) error {
	name, ok := strings.CutPrefix(ref, URLPrefix+"/")
	if !ok || name == "" || strings.ContainsAny(name, `/\`) {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove attachment: %w", err)
	}
	return nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
