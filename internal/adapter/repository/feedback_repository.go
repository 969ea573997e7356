package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// feedbackRepository implements the FeedbackRepository interface
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) repositories.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create stores a feedback submission
func (r *feedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) (*entities.OperationResult, error) {
	feedback.ID = uuid.NewString()
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return nil, err
	}
	return entities.Inserted(feedback.ID), nil
}

// List retrieves all feedback
func (r *feedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	var items []*entities.Feedback
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByMeetingID retrieves feedback submitted for a meeting
func (r *feedbackRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.Feedback, error) {
	var items []*entities.Feedback
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// CountByMeetingIDs counts feedback per meeting
func (r *feedbackRepository) CountByMeetingIDs(ctx context.Context, meetingIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		MeetingID string
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Feedback{}).
		Select("meeting_id, COUNT(*) AS count").
		Where("meeting_id IN ?", meetingIDs).
		Group("meeting_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.MeetingID] = row.Count
	}
	return counts, nil
}
