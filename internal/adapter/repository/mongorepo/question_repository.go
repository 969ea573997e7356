package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

type questionRepository struct {
	coll *mongo.Collection
}

// NewQuestionRepository creates a question set repository on db
func NewQuestionRepository(db *mongo.Database) repositories.QuestionRepository {
	return &questionRepository{coll: db.Collection(QuestionsCollection)}
}

func (r *questionRepository) Upsert(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error) {
	if questions == nil {
		questions = []entities.Question{}
	}
	filter := bson.D{{Key: "meetId", Value: meetID}, {Key: "userId", Value: userID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "questions", Value: questions},
			{Key: "updatedAt", Value: now()},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "_id", Value: newID()}}},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *questionRepository) Find(ctx context.Context, meetID, userID string) (*entities.QuestionSet, error) {
	filter := bson.D{{Key: "meetId", Value: meetID}, {Key: "userId", Value: userID}}

	var set entities.QuestionSet
	if err := r.coll.FindOne(ctx, filter).Decode(&set); err != nil {
		return nil, translateError(err)
	}
	for i := range set.Questions {
		set.Questions[i] = normalizeMap(set.Questions[i])
	}
	return &set, nil
}
