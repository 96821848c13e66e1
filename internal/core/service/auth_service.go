package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
	"github.com/nyayasetu/portal-api/internal/pkg/metrics"
)

// DefaultAttachmentTimeout bounds a single attachment write.
const DefaultAttachmentTimeout = 30 * time.Second

// AuthService implements registration and login.
type AuthService struct {
	users             ports.UserRepository
	hasher            ports.PasswordHasher
	sessions          ports.SessionService
	attachments       ports.AttachmentStore
	attachmentTimeout time.Duration
	log               zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	sessions ports.SessionService,
	attachments ports.AttachmentStore,
	attachmentTimeout time.Duration,
	log zerolog.Logger,
) *AuthService {
	if attachmentTimeout <= 0 {
		attachmentTimeout = DefaultAttachmentTimeout
	}
	return &AuthService{
		users:             users,
		hasher:            hasher,
		sessions:          sessions,
		attachments:       attachments,
		attachmentTimeout: attachmentTimeout,
		log:               log,
	}
}

// Register creates a user record and logs the new user in.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	// 1. Validate input.
	role, err := validateRegistration(in)
	if err != nil {
		metrics.SignupRejectionsTotal.WithLabelValues("validation").Inc()
		return nil, err
	}

	// 2. Reject duplicates before doing any hashing or upload work.
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		metrics.SignupRejectionsTotal.WithLabelValues("duplicate_email").Inc()
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup: %w", err)
	}

	// 3. Hash the password.
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash: %w", err)
	}

	// 4. Store the optional photo.
	ref, err := s.saveAttachment(ctx, in.Photo)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// 5. Insert; Create re-checks uniqueness atomically.
	user := &domain.UserRecord{
		ID:             uuid.NewString(),
		Email:          in.Email,
		PasswordHash:   hash,
		Fullname:       in.Fullname,
		Mobile:         in.Mobile,
		City:           in.City,
		State:          in.State,
		Pincode:        in.Pincode,
		Role:           role,
		BarID:          in.BarID,
		Specialization: in.Specialization,
		Experience:     in.Experience,
		AttachmentRef:  ref,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		s.discardAttachment(ctx, ref)
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignupRejectionsTotal.WithLabelValues("duplicate_email").Inc()
			return nil, err
		}
		return nil, fmt.Errorf("register: create: %w", err)
	}

	// 6. Log the new user in.
	sess, err := s.sessions.Create(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("register: session: %w", err)
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("user registered")

	return &ports.AuthResult{User: user.Summary(), Session: sess}, nil
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("login: session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{User: user.Summary(), Session: sess}, nil
}

func (s *AuthService) saveAttachment(ctx context.Context, a *ports.Attachment) (string, error) {
	if a == nil || s.attachments == nil {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.attachmentTimeout)
	defer cancel()

	ref, err := s.attachments.Save(ctx, *a)
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (s *AuthService) discardAttachment(ctx context.Context, ref string) {
	if ref == "" || s.attachments == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.attachmentTimeout)
	defer cancel()

	if err := s.attachments.Remove(ctx, ref); err != nil {
		s.log.Warn().Err(err).Str("ref", ref).Msg("failed to remove orphaned attachment")
	}
}

func validateRegistration(in ports.RegisterInput) (domain.Role, error) {
	if strings.TrimSpace(in.Email) == "" {
		return "", domain.NewValidationError("email is required")
	}
	if in.Password == "" {
		return "", domain.NewValidationError("password is required")
	}
	if len(in.Password) > MaxPasswordBytes {
		return "", domain.NewValidationError(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}
	role, ok := domain.ParseRole(in.Role)
	if !ok {
		return "", domain.NewValidationError("role must be one of: User, Advocate")
	}
	return role, nil
}
