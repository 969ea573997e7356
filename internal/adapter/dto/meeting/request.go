package meeting

import "github.com/johnquangdev/meeting-feedback/internal/domain/entities"

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	ID          entities.FlexString `json:"id" validate:"required"`
	CreatedBy   entities.FlexString `json:"createdBy" validate:"required"`
	Title       string              `json:"title,omitempty"`
	Date        string              `json:"date,omitempty"`
	Time        string              `json:"time,omitempty"`
	Description string              `json:"description,omitempty"`
	MeetingType string              `json:"meetingType,omitempty"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	UserID string `query:"userId"`
	Search string `query:"search"`
}
