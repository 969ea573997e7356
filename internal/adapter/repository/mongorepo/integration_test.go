//go:build integration

package mongorepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
)

func setupDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	ctx := context.Background()

	ctr, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	uri, err := ctr.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("meeting_feedback_test")
	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestIntegration_Repositories(t *testing.T) {
	db := setupDatabase(t)
	ctx := context.Background()

	t.Run("meeting lookup by either public id", func(t *testing.T) {
		repo := NewMeetingRepository(db)
		_, err := repo.Create(ctx, entities.NewMeeting("m1", "u1"))
		require.NoError(t, err)

		got, err := repo.FindByPublicID(ctx, "m1")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)

		_, err = repo.FindByPublicID(ctx, "nope")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("question upsert replaces the list", func(t *testing.T) {
		repo := NewQuestionRepository(db)
		res, err := repo.Upsert(ctx, "m1", "u1", []entities.Question{{"id": "q1"}, {"id": "q2"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)

		res, err = repo.Upsert(ctx, "m1", "u1", []entities.Question{{"id": "q3", "text": "Why?", "scale": 5}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)

		set, err := repo.Find(ctx, "m1", "u1")
		require.NoError(t, err)
		require.Len(t, set.Questions, 1)
		assert.Equal(t, "q3", set.Questions[0].ID())
		assert.EqualValues(t, 5, set.Questions[0]["scale"])
	})

	t.Run("profile upsert merges attributes", func(t *testing.T) {
		repo := NewProfileRepository(db)
		_, err := repo.Upsert(ctx, "a@b.co", map[string]any{"name": "Ana", "age": 30})
		require.NoError(t, err)
		_, err = repo.Upsert(ctx, "a@b.co", map[string]any{"role": "PM", "_id": "ignored"})
		require.NoError(t, err)

		p, err := repo.FindByEmail(ctx, "a@b.co")
		require.NoError(t, err)
		assert.Equal(t, "Ana", p.Attributes["name"])
		assert.Equal(t, "PM", p.Attributes["role"])
		assert.NotEqual(t, "ignored", p.ID)
	})

	t.Run("team delete of unknown id", func(t *testing.T) {
		repo := NewTeamRepository(db)
		_, err := repo.Delete(ctx, "not-an-id")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("feedback counts", func(t *testing.T) {
		repo := NewFeedbackRepository(db)
		for i := 0; i < 2; i++ {
			_, err := repo.Create(ctx, &entities.Feedback{MeetingID: "m1", UserID: "u2", Responses: map[string]any{"q1": "ok"}})
			require.NoError(t, err)
		}
		counts, err := repo.CountByMeetingIDs(ctx, []string{"m1", "m9"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts["m1"])
		assert.Zero(t, counts["m9"])
	})
}
