package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entities.Feedback) (*entities.OperationResult, error)
	List(ctx context.Context) ([]*entities.Feedback, error)

	// FindByMeetingID returns every record whose meetingId equals meetingID
	FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.Feedback, error)

	// CountByMeetingIDs returns feedback counts keyed by meeting id
	CountByMeetingIDs(ctx context.Context, meetingIDs []string) (map[string]int64, error)
}
