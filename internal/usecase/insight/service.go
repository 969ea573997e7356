package insight

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/storage"
)

// Service defines the interface for the insight use case
type Service interface {
	// GenerateMeetingInsights summarizes the feedback of a meeting. Summarizer failures
	// never surface as errors; they produce a fallback report instead.
	GenerateMeetingInsights(ctx context.Context, meetingID, userID string) (*entities.MeetingInsights, error)

	// SaveInsight stores a client supplied insight record
	SaveInsight(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error)

	ListInsights(ctx context.Context) ([]*entities.Insight, error)

	// ListArchivedReports lists archived reports of a meeting, newest last
	ListArchivedReports(ctx context.Context, meetingID string) ([]ArchivedReport, error)

	// InvalidateMeeting drops cached reports of a meeting
	InvalidateMeeting(ctx context.Context, meetingID string) error
}

// Cache stores encoded reports
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Archive is object storage for generated reports
type Archive interface {
	UploadJSON(ctx context.Context, objectName string, data []byte) error
	ListFiles(ctx context.Context, prefix string) ([]storage.ObjectInfo, error)
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// ArchivedReport is one archived report object
type ArchivedReport struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
}
