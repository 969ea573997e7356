package meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
}

var _ Service = (*MeetingService)(nil)

// NewMeetingService creates a new meeting service
func NewMeetingService(meetingRepo repositories.MeetingRepository) *MeetingService {
	return &MeetingService{meetingRepo: meetingRepo}
}

// CreateMeeting creates a new meeting. userId and meetingId mirror createdBy and id.
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.OperationResult, error) {
	if input.ID == "" || input.CreatedBy == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meeting := entities.NewMeeting(input.ID, input.CreatedBy)
	meeting.Title = input.Title
	meeting.Date = input.Date
	meeting.Time = input.Time
	meeting.Description = input.Description
	meeting.MeetingType = input.MeetingType

	result, err := s.meetingRepo.Create(ctx, meeting)
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}
	return result, nil
}

// GetMeeting retrieves a meeting by either public id
func (s *MeetingService) GetMeeting(ctx context.Context, id string) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByPublicID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// ListMeetings retrieves meetings in store order
func (s *MeetingService) ListMeetings(ctx context.Context, filter ListFilter) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.List(ctx, filter.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	if filter.Search == "" {
		return meetings, nil
	}

	matched := make([]*entities.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if m.MatchesSearch(filter.Search) {
			matched = append(matched, m)
		}
	}
	return matched, nil
}
