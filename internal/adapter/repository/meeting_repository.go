package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create inserts a meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) (*entities.OperationResult, error) {
	meeting.RecordID = uuid.NewString()
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return nil, err
	}
	return entities.Inserted(meeting.RecordID), nil
}

// FindByPublicID retrieves the oldest meeting matching meetingId or id
func (r *meetingRepository) FindByPublicID(ctx context.Context, id string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? OR id = ?", id, id).
		Order("created_at ASC").
		Take(&meeting).Error

	if err != nil {
		return nil, translateError(err)
	}
	return &meeting, nil
}

// List retrieves meetings, optionally scoped to an owner
func (r *meetingRepository) List(ctx context.Context, userID string) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	query := r.db.WithContext(ctx).Model(&entities.Meeting{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.Order("created_at ASC").Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}
