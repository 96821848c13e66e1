package mongo

import (
	"testing"
	"time"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

func TestMongoUserMapping(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	in := &domain.UserRecord{
		ID:             "id-1",
		Email:          "a@x.com",
		PasswordHash:   "$2a$10$hash",
		Fullname:       "A",
		Role:           domain.RoleAdvocate,
		BarID:          "UP/1",
		Specialization: "criminal,family",
		AttachmentRef:  "/uploads/a.png",
		CreatedAt:      created,
	}

	doc := toMongoUser(in)
	if doc.Role != "Advocate" || doc.Image != "/uploads/a.png" || doc.UserID != "id-1" {
		t.Fatalf("unexpected document: %+v", doc)
	}

	out := fromMongoUser(doc)
	if out.Email != in.Email || out.Role != in.Role || !out.CreatedAt.Equal(created) {
		t.Fatalf("mapping lost data: %+v", out)
	}
}

func TestFromMongoUser_UnknownRole(t *testing.T) {
	out := fromMongoUser(mongoUser{Email: "a@x.com", Role: "ADVOCATE"})
	if out.Role != domain.RoleAdvocate {
		t.Fatalf("expected case-insensitive role, got %q", out.Role)
	}
	out = fromMongoUser(mongoUser{Email: "b@x.com", Role: "clerk"})
	if out.Role != domain.RoleUser {
		t.Fatalf("expected unknown role to read as User, got %q", out.Role)
	}
	if !out.CreatedAt.IsZero() {
		t.Fatalf("expected zero time for missing created_at")
	}
}
