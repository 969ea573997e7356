package insight

import (
	"time"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	insightUsecase "github.com/johnquangdev/meeting-feedback/internal/usecase/insight"
)

// MeetingInsightsResponse is the report of a meeting plus the questions and answers view
type MeetingInsightsResponse struct {
	MeetingID              string                 `json:"meetingId"`
	Source                 entities.InsightSource `json:"source"`
	Insights               entities.InsightReport `json:"insights"`
	MeetingRecommendations []string               `json:"meetingRecommendations"`
	Questions              []entities.Question    `json:"questions"`
	Answers                []QuestionAnswers      `json:"answers"`
	FeedbackCount          int                    `json:"feedbackCount"`
	GeneratedAt            time.Time              `json:"generatedAt"`
}

// QuestionAnswers lists every feedback answer to one question
type QuestionAnswers struct {
	QuestionID string   `json:"questionId"`
	Label      string   `json:"label"`
	Answers    []Answer `json:"answers"`
}

// Answer is one participant's answer. Answered is false when the form skipped the question.
type Answer struct {
	UserID   string `json:"userId"`
	Answer   string `json:"answer,omitempty"`
	Answered bool   `json:"answered"`
}

// ArchiveResponse lists archived reports of a meeting
type ArchiveResponse struct {
	MeetingID string                          `json:"meetingId"`
	Reports   []insightUsecase.ArchivedReport `json:"reports"`
	Count     int                             `json:"count"`
}
