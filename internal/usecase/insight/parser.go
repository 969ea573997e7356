package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// rawReport keeps pointers so missing fields can be told apart from empty ones
type rawReport struct {
	Strengths          *[]string `json:"strengths"`
	Improvements       *[]string `json:"improvements"`
	Recommendations    *[]string `json:"recommendations"`
	Trends             *[]string `json:"trends"`
	EffectivenessScore *float64  `json:"effectivenessScore"`
	Summary            *string   `json:"summary"`
}

// parseReport parses the summarizer's report answer
func parseReport(content string) (entities.InsightReport, error) {
	var raw rawReport
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return entities.InsightReport{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	switch {
	case raw.Strengths == nil:
		return entities.InsightReport{}, fmt.Errorf("missing strengths in response")
	case raw.Improvements == nil:
		return entities.InsightReport{}, fmt.Errorf("missing improvements in response")
	case raw.Recommendations == nil:
		return entities.InsightReport{}, fmt.Errorf("missing recommendations in response")
	case raw.Trends == nil:
		return entities.InsightReport{}, fmt.Errorf("missing trends in response")
	case raw.EffectivenessScore == nil:
		return entities.InsightReport{}, fmt.Errorf("missing effectivenessScore in response")
	case raw.Summary == nil || strings.TrimSpace(*raw.Summary) == "":
		return entities.InsightReport{}, fmt.Errorf("missing summary in response")
	}

	score := *raw.EffectivenessScore
	if score < 0 || score > 10 {
		return entities.InsightReport{}, fmt.Errorf("effectivenessScore %v out of range", score)
	}

	return entities.InsightReport{
		Strengths:          *raw.Strengths,
		Improvements:       *raw.Improvements,
		Recommendations:    *raw.Recommendations,
		Trends:             *raw.Trends,
		EffectivenessScore: score,
		Summary:            strings.TrimSpace(*raw.Summary),
	}, nil
}

// parseRecommendations accepts either a bare JSON array or {"recommendations": [...]}
func parseRecommendations(content string) ([]string, error) {
	content = extractJSON(content)

	var list []string
	if err := json.Unmarshal([]byte(content), &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Recommendations *[]string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if wrapped.Recommendations == nil {
		return nil, fmt.Errorf("missing recommendations in response")
	}
	return *wrapped.Recommendations, nil
}

// extractJSON strips a markdown code fence around the answer
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
