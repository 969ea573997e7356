package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a meeting and returns the generated internal id
	Create(ctx context.Context, meeting *entities.Meeting) (*entities.OperationResult, error)

	// FindByPublicID returns the first meeting whose meetingId or id equals id
	FindByPublicID(ctx context.Context, id string) (*entities.Meeting, error)

	// List returns meetings in store order. An empty userID returns every meeting.
	List(ctx context.Context, userID string) ([]*entities.Meeting, error)
}
