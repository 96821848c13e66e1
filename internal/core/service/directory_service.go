package service

import (
	"context"
	"fmt"

	"github.com/nyayasetu/portal-api/internal/core/domain"
	"github.com/nyayasetu/portal-api/internal/core/ports"
)

// DirectoryService projects advocate records for the public listing.
// Nothing is cached: every call reads the repository.
type DirectoryService struct {
	users ports.UserRepository
}

func NewDirectoryService(users ports.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// ListAdvocates returns advocates in registration order.
func (s *DirectoryService) ListAdvocates(ctx context.Context) ([]domain.AdvocateSummary, error) {
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}

	out := make([]domain.AdvocateSummary, 0, len(users))
	for _, u := range users {
		if isAdvocate(u.Role) {
			out = append(out, toAdvocateSummary(u))
		}
	}
	return out, nil
}

func isAdvocate(r domain.Role) bool {
	role, ok := domain.ParseRole(string(r))
	if !ok {
		return false
	}
	switch role {
	case domain.RoleAdvocate:
		return true
	case domain.RoleUser:
		return false
	}
	return false
}

func toAdvocateSummary(u domain.UserRecord) domain.AdvocateSummary {
	return domain.AdvocateSummary{
		Fullname:       u.Fullname,
		Email:          u.Email,
		Specialization: u.Specialization,
		Experience:     u.Experience,
		City:           u.City,
		State:          u.State,
		BarID:          u.BarID,
		Image:          u.AttachmentRef,
	}
}
