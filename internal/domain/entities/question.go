package entities

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// QuestionSet is the list of questions a user configured for a meeting.
// There is at most one set per (meetId, userId); saving replaces the list.
type QuestionSet struct {
	ID        string                        `json:"_id,omitempty" bson:"_id,omitempty" gorm:"column:id;type:uuid;primaryKey"`
	MeetID    string                        `json:"meetId" bson:"meetId" gorm:"column:meet_id;type:varchar(255);not null;uniqueIndex:idx_question_sets_meet_user"`
	UserID    string                        `json:"userId" bson:"userId" gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_question_sets_meet_user"`
	Questions datatypes.JSONSlice[Question] `json:"questions" bson:"questions" gorm:"column:questions;type:jsonb;not null"`
	UpdatedAt time.Time                     `json:"updatedAt" bson:"updatedAt" gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for QuestionSet
func (QuestionSet) TableName() string {
	return "question_sets"
}

// Question is one entry of a feedback form, stored as the client sent it.
// Only "id", "text" and "question" are interpreted.
type Question map[string]any

// ID returns the question id. Numeric ids are normalized like FlexString.
func (q Question) ID() string {
	switch v := q["id"].(type) {
	case nil, bool, map[string]any, []any:
		return ""
	default:
		return FormatAnswer(v)
	}
}

// Label returns the display text of the question at position index (zero based)
func (q Question) Label(index int) string {
	for _, key := range []string{"text", "question"} {
		if s, ok := q[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fmt.Sprintf("Q%d", index+1)
}
