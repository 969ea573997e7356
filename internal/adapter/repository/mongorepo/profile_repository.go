package mongorepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

// Profiles are stored flat: email, createdAt and updatedAt next to the attributes.
type profileRepository struct {
	coll *mongo.Collection
}

// NewProfileRepository creates a profile repository on db
func NewProfileRepository(db *mongo.Database) repositories.ProfileRepository {
	return &profileRepository{coll: db.Collection(ProfilesCollection)}
}

func (r *profileRepository) Upsert(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, error) {
	ts := now()
	set := bson.M{}
	for k, v := range entities.CleanProfileAttributes(attrs) {
		set[k] = v
	}
	set["email"] = email
	set["updatedAt"] = ts

	update := bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: newID()},
			{Key: "createdAt", Value: ts},
		}},
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "email", Value: email}}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc); err != nil {
		return nil, translateError(err)
	}
	return profileFromDocument(doc), nil
}

func profileFromDocument(doc bson.M) *entities.Profile {
	raw := normalizeMap(doc)
	profile := &entities.Profile{Attributes: entities.CleanProfileAttributes(raw)}
	if id, ok := raw["_id"].(string); ok {
		profile.ID = id
	}
	if email, ok := raw["email"].(string); ok {
		profile.Email = email
	}
	if t, ok := raw["createdAt"].(time.Time); ok {
		profile.CreatedAt = t
	}
	if t, ok := raw["updatedAt"].(time.Time); ok {
		profile.UpdatedAt = t
	}
	return profile
}
