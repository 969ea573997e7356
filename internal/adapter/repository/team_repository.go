package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) repositories.TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team
func (r *teamRepository) Create(ctx context.Context, team *entities.Team) (*entities.OperationResult, error) {
	team.ID = uuid.NewString()
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}
	return entities.Inserted(team.ID), nil
}

// FindByID retrieves a team by its ID
func (r *teamRepository) FindByID(ctx context.Context, id string) (*entities.Team, error) {
	if !validID(id) {
		return nil, repositories.ErrNotFound
	}
	var team entities.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&team).Error; err != nil {
		return nil, translateError(err)
	}
	return &team, nil
}

// List retrieves all teams
func (r *teamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	var teams []*entities.Team
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Replace overwrites name and members
func (r *teamRepository) Replace(ctx context.Context, id string, name string, members []entities.Member) (*entities.OperationResult, error) {
	if !validID(id) {
		return nil, repositories.ErrNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&entities.Team{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":       name,
			"members":    datatypes.NewJSONSlice(members),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}
	return &entities.OperationResult{Acknowledged: true, MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}

// Delete removes a team
func (r *teamRepository) Delete(ctx context.Context, id string) (*entities.OperationResult, error) {
	if !validID(id) {
		return nil, repositories.ErrNotFound
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Team{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}
	return &entities.OperationResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}
