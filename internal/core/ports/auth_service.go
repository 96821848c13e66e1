package ports

import (
	"context"

	"github.com/nyayasetu/portal-api/internal/core/domain"
)

// RegisterInput carries the signup form. Everything except Email and
// Password may be empty.
type RegisterInput struct {
	Email          string
	Password       string
	Fullname       string
	Mobile         string
	City           string
	State          string
	Pincode        string
	Role           string
	BarID          string
	Specialization string
	Experience     string
	Photo          *Attachment // optional
}

// AuthResult is returned by a successful signup or login.
type AuthResult struct {
	User    domain.UserSummary
	Session *domain.Session
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
