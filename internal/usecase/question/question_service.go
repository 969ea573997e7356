package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// QuestionService handles question set business logic
type QuestionService struct {
	questionRepo repositories.QuestionRepository
}

var _ Service = (*QuestionService)(nil)

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repositories.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// SaveQuestions upserts the question list
func (s *QuestionService) SaveQuestions(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error) {
	if meetID == "" || userID == "" || questions == nil {
		return nil, usecaseErrors.ErrInvalidInput
	}

	result, err := s.questionRepo.Upsert(ctx, meetID, userID, questions)
	if err != nil {
		return nil, fmt.Errorf("failed to save questions: %w", err)
	}
	return result, nil
}

// GetQuestions retrieves the saved question list
func (s *QuestionService) GetQuestions(ctx context.Context, meetID, userID string) ([]entities.Question, error) {
	set, err := s.questionRepo.Find(ctx, meetID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []entities.Question{}, nil
		}
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	if set.Questions == nil {
		return []entities.Question{}, nil
	}
	return set.Questions, nil
}
