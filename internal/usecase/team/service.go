package team

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// Service defines the interface for team use case.
// Create and Update return *entities.TeamValidationError for invalid records.
type Service interface {
	CreateTeam(ctx context.Context, team *entities.Team) (*entities.OperationResult, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, team *entities.Team) (*entities.OperationResult, error)
	DeleteTeam(ctx context.Context, id string) (*entities.OperationResult, error)
}
