package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

type teamRepository struct {
	coll *mongo.Collection
}

// NewTeamRepository creates a team repository on db
func NewTeamRepository(db *mongo.Database) repositories.TeamRepository {
	return &teamRepository{coll: db.Collection(TeamsCollection)}
}

func (r *teamRepository) Create(ctx context.Context, team *entities.Team) (*entities.OperationResult, error) {
	team.ID = newID()
	team.CreatedAt = now()
	team.UpdatedAt = team.CreatedAt
	res, err := r.coll.InsertOne(ctx, team)
	if err != nil {
		return nil, err
	}
	return &entities.OperationResult{Acknowledged: res.Acknowledged, InsertedID: team.ID}, nil
}

func (r *teamRepository) FindByID(ctx context.Context, id string) (*entities.Team, error) {
	var team entities.Team
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&team); err != nil {
		return nil, translateError(err)
	}
	return &team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	teams := []*entities.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) Replace(ctx context.Context, id string, name string, members []entities.Member) (*entities.OperationResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "members", Value: members},
		{Key: "updatedAt", Value: now()},
	}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, repositories.ErrNotFound
	}
	return updateResult(res), nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) (*entities.OperationResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}
	if res.DeletedCount == 0 {
		return nil, repositories.ErrNotFound
	}
	return &entities.OperationResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}
