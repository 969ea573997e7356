package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// QuestionRepository defines the interface for question set data access
type QuestionRepository interface {
	// Upsert replaces the question list stored for (meetID, userID), creating it if needed
	Upsert(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error)

	// Find returns ErrNotFound when no set exists
	Find(ctx context.Context, meetID, userID string) (*entities.QuestionSet, error)
}
