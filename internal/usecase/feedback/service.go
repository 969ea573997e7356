package feedback

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// Service defines the interface for feedback use case
type Service interface {
	// SubmitFeedback stores a feedback form. Several submissions per meeting and user are kept.
	SubmitFeedback(ctx context.Context, input SubmitFeedbackInput) (*entities.OperationResult, error)

	// ListFeedback retrieves every stored submission
	ListFeedback(ctx context.Context) ([]*entities.Feedback, error)
}

// SubmitFeedbackInput represents a feedback submission. Only these fields are persisted.
type SubmitFeedbackInput struct {
	MeetingID string
	UserID    string
	Responses map[string]any
}

// ReportInvalidator drops cached insight reports of a meeting
type ReportInvalidator interface {
	InvalidateMeeting(ctx context.Context, meetingID string) error
}
