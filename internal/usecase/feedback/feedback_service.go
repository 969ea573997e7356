package feedback

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// FeedbackService maps submissions to stored feedback records
type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	invalidator  ReportInvalidator
	logger       *zap.Logger
}

var _ Service = (*FeedbackService)(nil)

// NewFeedbackService creates a new feedback service. invalidator may be nil.
func NewFeedbackService(feedbackRepo repositories.FeedbackRepository, invalidator ReportInvalidator, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		invalidator:  invalidator,
		logger:       logger,
	}
}

// SubmitFeedback stores a feedback record and drops the meeting's cached insight report
func (s *FeedbackService) SubmitFeedback(ctx context.Context, input SubmitFeedbackInput) (*entities.OperationResult, error) {
	if input.MeetingID == "" || input.UserID == "" || input.Responses == nil {
		return nil, usecaseErrors.ErrInvalidInput
	}

	record := &entities.Feedback{
		MeetingID: input.MeetingID,
		UserID:    input.UserID,
		Responses: input.Responses,
		CreatedAt: time.Now().UTC(),
	}

	result, err := s.feedbackRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to save feedback: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.InvalidateMeeting(ctx, input.MeetingID); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to invalidate insight cache",
				zap.String("meeting_id", input.MeetingID),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

// ListFeedback retrieves all feedback
func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*entities.Feedback, error) {
	items, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return items, nil
}
