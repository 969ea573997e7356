package presenter

import (
	insightDTO "github.com/johnquangdev/meeting-feedback/internal/adapter/dto/insight"
	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// ToMeetingInsightsResponse converts an aggregation result to the insights response
func ToMeetingInsightsResponse(mi *entities.MeetingInsights) *insightDTO.MeetingInsightsResponse {
	if mi == nil {
		return nil
	}

	questions := mi.Questions
	if questions == nil {
		questions = []entities.Question{}
	}
	recommendations := mi.MeetingRecommendations
	if recommendations == nil {
		recommendations = []string{}
	}

	return &insightDTO.MeetingInsightsResponse{
		MeetingID:              mi.MeetingID,
		Source:                 mi.Source,
		Insights:               mi.Report,
		MeetingRecommendations: recommendations,
		Questions:              questions,
		Answers:                ToQuestionAnswers(questions, mi.Feedback),
		FeedbackCount:          len(mi.Feedback),
		GeneratedAt:            mi.GeneratedAt,
	}
}

// ToQuestionAnswers pairs every question with the answer of each feedback record, in feedback order.
// The view is empty unless there are both questions and feedback.
func ToQuestionAnswers(questions []entities.Question, feedback []*entities.Feedback) []insightDTO.QuestionAnswers {
	out := make([]insightDTO.QuestionAnswers, 0, len(questions))
	if len(feedback) == 0 {
		return out
	}

	for i, q := range questions {
		id := q.ID()
		qa := insightDTO.QuestionAnswers{
			QuestionID: id,
			Label:      q.Label(i),
			Answers:    make([]insightDTO.Answer, 0, len(feedback)),
		}
		for _, fb := range feedback {
			if fb == nil {
				continue
			}
			answer, ok := fb.Answer(id)
			qa.Answers = append(qa.Answers, insightDTO.Answer{
				UserID:   fb.UserID,
				Answer:   answer,
				Answered: ok,
			})
		}
		out = append(out, qa)
	}
	return out
}
