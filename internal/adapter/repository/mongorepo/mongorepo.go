// Package mongorepo implements the domain repositories on a MongoDB database.
// Documents use string ObjectID hex values as _id.
package mongorepo

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// Collection names
const (
	MeetingsCollection  = "meetings"
	TeamsCollection     = "teams"
	FeedbackCollection  = "feedback"
	QuestionsCollection = "questions"
	ProfilesCollection  = "users"
	InsightsCollection  = "ai_insights"
)

func newID() string {
	return bson.NewObjectID().Hex()
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func translateError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repositories.ErrNotFound
	}
	return err
}

func updateResult(res *mongo.UpdateResult) *entities.OperationResult {
	out := &entities.OperationResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(string); ok {
		out.UpsertedID = id
	}
	return out
}

// normalize converts decoded BSON containers into plain maps and slices
func normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case map[string]any:
		for k, e := range val {
			val[k] = normalize(e)
		}
		return val
	case bson.A:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case []any:
		for i, e := range val {
			val[i] = normalize(e)
		}
		return val
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalize(v)
	}
	return m
}
