package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// TeamService handles team business logic
type TeamService struct {
	teamRepo repositories.TeamRepository
}

var _ Service = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(teamRepo repositories.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// CreateTeam validates and stores a team
func (s *TeamService) CreateTeam(ctx context.Context, team *entities.Team) (*entities.OperationResult, error) {
	if err := entities.ValidateTeam(team); err != nil {
		return nil, err
	}

	result, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return result, nil
}

// GetTeam retrieves a team by ID
func (s *TeamService) GetTeam(ctx context.Context, id string) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "get")
	}
	return team, nil
}

// ListTeams retrieves all teams
func (s *TeamService) ListTeams(ctx context.Context) ([]*entities.Team, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam validates team and replaces name and members of the stored record
func (s *TeamService) UpdateTeam(ctx context.Context, id string, team *entities.Team) (*entities.OperationResult, error) {
	if err := entities.ValidateTeam(team); err != nil {
		return nil, err
	}

	result, err := s.teamRepo.Replace(ctx, id, team.Name, team.Members)
	if err != nil {
		return nil, translate(err, "update")
	}
	return result, nil
}

// DeleteTeam removes a team
func (s *TeamService) DeleteTeam(ctx context.Context, id string) (*entities.OperationResult, error) {
	result, err := s.teamRepo.Delete(ctx, id)
	if err != nil {
		return nil, translate(err, "delete")
	}
	return result, nil
}

func translate(err error, op string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return usecaseErrors.ErrTeamNotFound
	}
	return fmt.Errorf("failed to %s team: %w", op, err)
}
