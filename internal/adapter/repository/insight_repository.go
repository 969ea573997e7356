package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// insightRepository implements the InsightRepository interface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) repositories.InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) Create(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error) {
	insight.ID = uuid.NewString()
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(insight).Error; err != nil {
		return nil, err
	}
	return entities.Inserted(insight.ID), nil
}

func (r *insightRepository) List(ctx context.Context) ([]*entities.Insight, error) {
	var items []*entities.Insight
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
