package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) repositories.ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert merges attrs into the stored attribute bag using jsonb concatenation
func (r *profileRepository) Upsert(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, error) {
	generated := uuid.NewString()
	now := time.Now().UTC()
	profile := entities.NewProfile(email, attrs)
	profile.ID = generated
	profile.CreatedAt = now
	profile.UpdatedAt = now

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "email"}},
				DoUpdates: clause.Set{
					{Column: clause.Column{Name: "attributes"}, Value: gorm.Expr(`"profiles"."attributes" || EXCLUDED."attributes"`)},
					{Column: clause.Column{Name: "updated_at"}, Value: now},
				},
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(profile).Error
	if err != nil {
		return nil, err
	}

	return upsertResult(generated, profile.ID), nil
}

// FindByEmail retrieves a profile by email
func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&profile).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}
