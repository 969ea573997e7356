package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

type meetingRepository struct {
	coll *mongo.Collection
}

// NewMeetingRepository creates a meeting repository on db
func NewMeetingRepository(db *mongo.Database) repositories.MeetingRepository {
	return &meetingRepository{coll: db.Collection(MeetingsCollection)}
}

func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) (*entities.OperationResult, error) {
	meeting.RecordID = newID()
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, meeting)
	if err != nil {
		return nil, err
	}
	return &entities.OperationResult{Acknowledged: res.Acknowledged, InsertedID: meeting.RecordID}, nil
}

func (r *meetingRepository) FindByPublicID(ctx context.Context, id string) (*entities.Meeting, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "meetingId", Value: id}},
		bson.D{{Key: "id", Value: id}},
	}}}

	var meeting entities.Meeting
	if err := r.coll.FindOne(ctx, filter).Decode(&meeting); err != nil {
		return nil, translateError(err)
	}
	return &meeting, nil
}

func (r *meetingRepository) List(ctx context.Context, userID string) ([]*entities.Meeting, error) {
	filter := bson.D{}
	if userID != "" {
		filter = bson.D{{Key: "userId", Value: userID}}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	meetings := []*entities.Meeting{}
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	return meetings, nil
}
