package question

import "github.com/johnquangdev/meeting-feedback/internal/domain/entities"

// SaveQuestionsRequest replaces the question set of a meeting and user
type SaveQuestionsRequest struct {
	MeetID    entities.FlexString `json:"meetId" validate:"required"`
	UserID    entities.FlexString `json:"userId" validate:"required"`
	Questions []entities.Question `json:"questions" validate:"required"`
}

// GetQuestionsRequest represents the path of a question set lookup
type GetQuestionsRequest struct {
	MeetID string `param:"meetId"`
	UserID string `param:"userId"`
}
