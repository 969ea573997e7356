package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// TeamRepository defines the interface for team data access.
// Identifiers that the store cannot parse behave like missing records.
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) (*entities.OperationResult, error)
	FindByID(ctx context.Context, id string) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)

	// Replace overwrites name and members of the team
	Replace(ctx context.Context, id string, name string, members []entities.Member) (*entities.OperationResult, error)

	Delete(ctx context.Context, id string) (*entities.OperationResult, error)
}
