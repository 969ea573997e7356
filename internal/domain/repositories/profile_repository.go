package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	// Upsert merges attrs into the profile stored under email, creating it if needed.
	// Attributes not present in attrs are kept.
	Upsert(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, error)

	FindByEmail(ctx context.Context, email string) (*entities.Profile, error)
}
