package dashboard

import (
	"context"
	"fmt"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

// Service defines the interface for dashboard use case
type Service interface {
	GetUserDashboard(ctx context.Context, userID string) (*Stats, error)
}

// Stats summarizes the meetings a user owns
type Stats struct {
	UserID            string              `json:"userId"`
	TotalMeetings     int                 `json:"totalMeetings"`
	TotalFeedback     int64               `json:"totalFeedback"`
	FeedbackByMeeting map[string]int64    `json:"feedbackByMeeting"`
	Meetings          []*entities.Meeting `json:"meetings"`
}

// DashboardService builds per user statistics
type DashboardService struct {
	meetingRepo  repositories.MeetingRepository
	feedbackRepo repositories.FeedbackRepository
}

var _ Service = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(meetingRepo repositories.MeetingRepository, feedbackRepo repositories.FeedbackRepository) *DashboardService {
	return &DashboardService{meetingRepo: meetingRepo, feedbackRepo: feedbackRepo}
}

// GetUserDashboard counts feedback of every meeting owned by userID
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID string) (*Stats, error) {
	if userID == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meetings, err := s.meetingRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}

	// meetingId is not unique, count each id once
	ids := make([]string, 0, len(meetings))
	seen := make(map[string]struct{}, len(meetings))
	for _, m := range meetings {
		if _, ok := seen[m.MeetingID]; ok {
			continue
		}
		seen[m.MeetingID] = struct{}{}
		ids = append(ids, m.MeetingID)
	}

	counts, err := s.feedbackRepo.CountByMeetingIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	stats := &Stats{
		UserID:            userID,
		TotalMeetings:     len(meetings),
		FeedbackByMeeting: make(map[string]int64, len(ids)),
		Meetings:          meetings,
	}
	for _, id := range ids {
		stats.FeedbackByMeeting[id] = counts[id]
		stats.TotalFeedback += counts[id]
	}
	return stats, nil
}
