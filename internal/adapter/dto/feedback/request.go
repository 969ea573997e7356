package feedback

import "github.com/johnquangdev/meeting-feedback/internal/domain/entities"

// SubmitFeedbackRequest represents a feedback form submission
type SubmitFeedbackRequest struct {
	MeetingID entities.FlexString `json:"meetingId" validate:"required"`
	UserID    entities.FlexString `json:"userId" validate:"required"`
	Responses map[string]any      `json:"responses" validate:"required"`
}
