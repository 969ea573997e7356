package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

type insightRepository struct {
	coll *mongo.Collection
}

// NewInsightRepository creates an insight repository on db
func NewInsightRepository(db *mongo.Database) repositories.InsightRepository {
	return &insightRepository{coll: db.Collection(InsightsCollection)}
}

func (r *insightRepository) Create(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error) {
	insight.ID = newID()
	if insight.CreatedAt.IsZero() {
		insight.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, insight)
	if err != nil {
		return nil, err
	}
	return &entities.OperationResult{Acknowledged: res.Acknowledged, InsertedID: insight.ID}, nil
}

func (r *insightRepository) List(ctx context.Context) ([]*entities.Insight, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	items := []*entities.Insight{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
