package ports

import (
	"context"
	"io"
)

// Attachment is an uploaded file waiting to be stored.
type Attachment struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// AttachmentStore stores uploaded files and hands back a stable reference.
type AttachmentStore interface {
	Save(ctx context.Context, a Attachment) (string, error)
	Remove(ctx context.Context, ref string) error
}
