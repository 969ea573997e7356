package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// questionRepository implements the QuestionRepository interface
type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question set repository
func NewQuestionRepository(db *gorm.DB) repositories.QuestionRepository {
	return &questionRepository{db: db}
}

// Upsert replaces the question list for (meetID, userID) in a single statement
func (r *questionRepository) Upsert(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error) {
	generated := uuid.NewString()
	set := &entities.QuestionSet{
		ID:        generated,
		MeetID:    meetID,
		UserID:    userID,
		Questions: datatypes.NewJSONSlice(questions),
		UpdatedAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "meet_id"}, {Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"questions", "updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}}},
		).
		Create(set).Error
	if err != nil {
		return nil, err
	}

	return upsertResult(generated, set.ID), nil
}

// Find retrieves the question set of a user for a meeting
func (r *questionRepository) Find(ctx context.Context, meetID, userID string) (*entities.QuestionSet, error) {
	var set entities.QuestionSet
	err := r.db.WithContext(ctx).
		Where("meet_id = ? AND user_id = ?", meetID, userID).
		Take(&set).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &set, nil
}

// upsertResult tells an insert from an update by the id the row came back with
func upsertResult(generated, returned string) *entities.OperationResult {
	if returned == "" || returned == generated {
		return &entities.OperationResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: generated}
	}
	return &entities.OperationResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
}
