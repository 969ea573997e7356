package entities

import (
	"strings"
	"time"
)

// Meeting is a scheduled event that owners create and participants give feedback on.
// ID and MeetingID are both public identifiers and hold the same value; lookups accept either.
type Meeting struct {
	RecordID    string    `json:"_id,omitempty" bson:"_id,omitempty" gorm:"column:record_id;type:uuid;primaryKey"`
	ID          string    `json:"id" bson:"id" gorm:"column:id;type:varchar(255);not null;index"`
	MeetingID   string    `json:"meetingId" bson:"meetingId" gorm:"column:meeting_id;type:varchar(255);not null;index"`
	UserID      string    `json:"userId" bson:"userId" gorm:"column:user_id;type:varchar(255);not null;index"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy" gorm:"column:created_by;type:varchar(255);not null"`
	Title       string    `json:"title,omitempty" bson:"title,omitempty" gorm:"column:title;type:varchar(255)"`
	Date        string    `json:"date,omitempty" bson:"date,omitempty" gorm:"column:meeting_date;type:varchar(32)"`
	Time        string    `json:"time,omitempty" bson:"time,omitempty" gorm:"column:meeting_time;type:varchar(32)"`
	Description string    `json:"description,omitempty" bson:"description,omitempty" gorm:"column:description;type:text"`
	MeetingType string    `json:"meetingType,omitempty" bson:"meetingType,omitempty" gorm:"column:meeting_type;type:varchar(64)"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting owned by createdBy
func NewMeeting(id, createdBy string) *Meeting {
	return &Meeting{
		ID:        id,
		MeetingID: id,
		UserID:    createdBy,
		CreatedBy: createdBy,
	}
}

// MatchesSearch reports whether the title or meeting id contains term, ignoring case.
// An empty term matches every meeting.
func (m *Meeting) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.MeetingID), term)
}
