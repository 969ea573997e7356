package question

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// Service defines the interface for question set use case
type Service interface {
	// SaveQuestions replaces the questions of (meetID, userID)
	SaveQuestions(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error)

	// GetQuestions returns an empty list when nothing was saved
	GetQuestions(ctx context.Context, meetID, userID string) ([]entities.Question, error)
}
