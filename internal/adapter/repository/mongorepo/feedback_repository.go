package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

type feedbackRepository struct {
	coll *mongo.Collection
}

// NewFeedbackRepository creates a feedback repository on db
func NewFeedbackRepository(db *mongo.Database) repositories.FeedbackRepository {
	return &feedbackRepository{coll: db.Collection(FeedbackCollection)}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) (*entities.OperationResult, error) {
	feedback.ID = newID()
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return nil, err
	}
	return &entities.OperationResult{Acknowledged: res.Acknowledged, InsertedID: feedback.ID}, nil
}

func (r *feedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	return r.find(ctx, bson.D{})
}

func (r *feedbackRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.Feedback, error) {
	return r.find(ctx, bson.D{{Key: "meetingId", Value: meetingID}})
}

func (r *feedbackRepository) CountByMeetingIDs(ctx context.Context, meetingIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(meetingIDs))
	if len(meetingIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "meetingId", Value: bson.D{{Key: "$in", Value: meetingIDs}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$meetingId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		MeetingID string `bson:"_id"`
		Count     int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.MeetingID] = row.Count
	}
	return counts, nil
}

func (r *feedbackRepository) find(ctx context.Context, filter bson.D) ([]*entities.Feedback, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := []*entities.Feedback{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		normalizeMap(item.Responses)
	}
	return items, nil
}
