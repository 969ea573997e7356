package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// Service defines the interface for meeting use case
type Service interface {
	// CreateMeeting stores a meeting owned by input.CreatedBy
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.OperationResult, error)

	// GetMeeting retrieves a meeting by meetingId or id
	GetMeeting(ctx context.Context, id string) (*entities.Meeting, error)

	// ListMeetings retrieves meetings, optionally filtered
	ListMeetings(ctx context.Context, filter ListFilter) ([]*entities.Meeting, error)
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	ID          string
	CreatedBy   string
	Title       string
	Date        string
	Time        string
	Description string
	MeetingType string
}

// ListFilter narrows ListMeetings. Zero value lists everything.
type ListFilter struct {
	UserID string
	Search string
}
