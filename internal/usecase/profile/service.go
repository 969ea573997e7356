package profile

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// Service defines the interface for profile use case
type Service interface {
	// SaveProfile merges attrs into the profile of email and returns the stored profile
	SaveProfile(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, *entities.Profile, error)

	GetProfile(ctx context.Context, email string) (*entities.Profile, error)
}
