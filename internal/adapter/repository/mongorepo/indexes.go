package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func uniqueIndex() *options.IndexOptionsBuilder {
	return options.Index().SetUnique(true)
}

// EnsureIndexes creates the unique indexes the repositories rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(QuestionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "meetId", Value: 1}, {Key: "userId", Value: 1}},
		Options: uniqueIndex(),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(ProfilesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: uniqueIndex(),
	})
	if err != nil {
		return err
	}
	_, err = db.Collection(FeedbackCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "meetingId", Value: 1}},
	})
	return err
}
