package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// Feedback is one submitted feedback form. Several records may exist for the same meeting and user.
type Feedback struct {
	ID        string            `json:"_id,omitempty" bson:"_id,omitempty" gorm:"column:id;type:uuid;primaryKey"`
	MeetingID string            `json:"meetingId" bson:"meetingId" gorm:"column:meeting_id;type:varchar(255);not null;index"`
	UserID    string            `json:"userId" bson:"userId" gorm:"column:user_id;type:varchar(255);not null;index"`
	Responses datatypes.JSONMap `json:"responses" bson:"responses" gorm:"column:responses;type:jsonb;not null"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt" gorm:"column:created_at"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// Answer returns the stringified response for a question id
func (f *Feedback) Answer(questionID string) (string, bool) {
	v, ok := f.Responses[questionID]
	if !ok || v == nil {
		return "", false
	}
	return FormatAnswer(v), true
}

// FormatAnswer renders a response value the way it is shown in reports
func FormatAnswer(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case json.Number:
		return val.String()
	case []any:
		out := ""
		for i, item := range val {
			if i > 0 {
				out += ","
			}
			out += FormatAnswer(item)
		}
		return out
	case fmt.Stringer:
		return val.String()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
