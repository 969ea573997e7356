package entities

import (
	"time"

	"gorm.io/datatypes"
)

// InsightSource tells how an insight report was produced
type InsightSource string

const (
	InsightSourceNoFeedback InsightSource = "no_feedback"
	InsightSourceDefault    InsightSource = "default"
	InsightSourceGenerated  InsightSource = "generated"
	InsightSourceDegraded   InsightSource = "degraded"
)

// IsFallback reports whether the report is canned text rather than a summary of the feedback
func (s InsightSource) IsFallback() bool {
	return s != InsightSourceGenerated
}

// InsightReport is the structured summary of a meeting's feedback
type InsightReport struct {
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	Recommendations    []string `json:"recommendations"`
	Trends             []string `json:"trends"`
	EffectivenessScore float64  `json:"effectivenessScore"`
	Summary            string   `json:"summary"`
}

// MeetingInsights is the outcome of one aggregation run
type MeetingInsights struct {
	MeetingID              string        `json:"meetingId"`
	Source                 InsightSource `json:"source"`
	Report                 InsightReport `json:"insights"`
	MeetingRecommendations []string      `json:"meetingRecommendations"`
	Feedback               []*Feedback   `json:"-"`
	Questions              []Question    `json:"-"`
	GeneratedAt            time.Time     `json:"generatedAt"`
}

// Insight is an audit record of a stored report. Clients may also post free-form insights.
type Insight struct {
	ID                     string                      `json:"_id,omitempty" bson:"_id,omitempty" gorm:"column:id;type:uuid;primaryKey"`
	MeetingID              string                      `json:"meetingId,omitempty" bson:"meetingId,omitempty" gorm:"column:meeting_id;type:varchar(255);index"`
	UserID                 string                      `json:"userId,omitempty" bson:"userId,omitempty" gorm:"column:user_id;type:varchar(255)"`
	Source                 InsightSource               `json:"source,omitempty" bson:"source,omitempty" gorm:"column:source;type:varchar(32)"`
	Strengths              datatypes.JSONSlice[string] `json:"strengths,omitempty" bson:"strengths,omitempty" gorm:"column:strengths;type:jsonb"`
	Improvements           datatypes.JSONSlice[string] `json:"improvements,omitempty" bson:"improvements,omitempty" gorm:"column:improvements;type:jsonb"`
	Recommendations        datatypes.JSONSlice[string] `json:"recommendations,omitempty" bson:"recommendations,omitempty" gorm:"column:recommendations;type:jsonb"`
	Trends                 datatypes.JSONSlice[string] `json:"trends,omitempty" bson:"trends,omitempty" gorm:"column:trends;type:jsonb"`
	EffectivenessScore     float64                     `json:"effectivenessScore,omitempty" bson:"effectivenessScore,omitempty" gorm:"column:effectiveness_score"`
	Summary                string                      `json:"summary,omitempty" bson:"summary,omitempty" gorm:"column:summary;type:text"`
	MeetingRecommendations datatypes.JSONSlice[string] `json:"meetingRecommendations,omitempty" bson:"meetingRecommendations,omitempty" gorm:"column:meeting_recommendations;type:jsonb"`
	CreatedAt              time.Time                   `json:"createdAt" bson:"createdAt" gorm:"column:created_at"`
}

// TableName specifies the table name for Insight
func (Insight) TableName() string {
	return "ai_insights"
}

// NewInsightRecord builds the audit record of an aggregation run
func NewInsightRecord(userID string, mi *MeetingInsights) *Insight {
	return &Insight{
		MeetingID:              mi.MeetingID,
		UserID:                 userID,
		Source:                 mi.Source,
		Strengths:              mi.Report.Strengths,
		Improvements:           mi.Report.Improvements,
		Recommendations:        mi.Report.Recommendations,
		Trends:                 mi.Report.Trends,
		EffectivenessScore:     mi.Report.EffectivenessScore,
		Summary:                mi.Report.Summary,
		MeetingRecommendations: mi.MeetingRecommendations,
		CreatedAt:              mi.GeneratedAt,
	}
}
