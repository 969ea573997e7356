package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// ProfileService handles profile business logic
type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

var _ Service = (*ProfileService)(nil)

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// SaveProfile upserts the profile then reads it back
func (s *ProfileService) SaveProfile(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, *entities.Profile, error) {
	if email == "" {
		return nil, nil, usecaseErrors.ErrInvalidInput
	}

	result, err := s.profileRepo.Upsert(ctx, email, attrs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to save profile: %w", err)
	}

	saved, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	return result, saved, nil
}

// GetProfile retrieves a profile by email
func (s *ProfileService) GetProfile(ctx context.Context, email string) (*entities.Profile, error) {
	p, err := s.profileRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}
