package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

// InsightRepository defines the interface for insight audit records
type InsightRepository interface {
	Create(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error)
	List(ctx context.Context) ([]*entities.Insight, error)
}
