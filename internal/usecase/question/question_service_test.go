package question

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories/mocks"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

func TestGetQuestions_EmptyWhenMissing(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)
	repo.On("Find", mock.Anything, "m1", "u1").Return(nil, repositories.ErrNotFound)

	got, err := NewQuestionService(repo).GetQuestions(context.Background(), "m1", "u1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSaveQuestions(t *testing.T) {
	repo := new(mocks.MockQuestionRepository)
	qs := []entities.Question{{"id": "q1", "text": "Was it useful?"}}
	repo.On("Upsert", mock.Anything, "m1", "u1", qs).
		Return(&entities.OperationResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: "x"}, nil)
	svc := NewQuestionService(repo)

	res, err := svc.SaveQuestions(context.Background(), "m1", "u1", qs)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)

	_, err = svc.SaveQuestions(context.Background(), "m1", "u1", nil)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	repo.On("Upsert", mock.Anything, "m1", "u1", []entities.Question{}).
		Return(&entities.OperationResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
	res, err = svc.SaveQuestions(context.Background(), "m1", "u1", []entities.Question{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)
}
