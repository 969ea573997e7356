package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// formatFeedback renders every submission as labelled question/answer lines.
// Responses to unknown question ids are listed under their raw key.
func formatFeedback(feedback []*entities.Feedback, questions []entities.Question) string {
	labels := make(map[string]string, len(questions))
	for i, q := range questions {
		if id := q.ID(); id != "" {
			labels[id] = q.Label(i)
		}
	}

	var sb strings.Builder
	for i, fb := range feedback {
		fmt.Fprintf(&sb, "Response %d (participant %s):\n", i+1, fb.UserID)

		keys := make([]string, 0, len(fb.Responses))
		for k := range fb.Responses {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			answer, ok := fb.Answer(k)
			if !ok || answer == "" {
				continue
			}
			label := k
			if l, found := labels[k]; found {
				label = l
			}
			fmt.Fprintf(&sb, "- %s: %s\n", label, answer)
		}
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String())
}

func reportPrompt(feedback []*entities.Feedback, questions []entities.Question) string {
	return fmt.Sprintf(`You are analyzing participant feedback collected after a meeting.

Feedback:
%s

Return ONLY a JSON object with exactly these fields:
{
  "strengths": [string],
  "improvements": [string],
  "recommendations": [string],
  "trends": [string],
  "effectivenessScore": number between 0 and 10,
  "summary": string
}
Keep each list item to one short sentence.`, formatFeedback(feedback, questions))
}

func recommendationsPrompt(meetingType string, feedback []*entities.Feedback, questions []entities.Question) string {
	return fmt.Sprintf(`Based on the feedback below for a %s meeting, suggest up to five concrete practices that would make the next meeting more effective.

Feedback:
%s

Return ONLY a JSON object of the form {"recommendations": [string]}.`, meetingType, formatFeedback(feedback, questions))
}
