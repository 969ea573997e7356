package meeting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories/mocks"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

func TestCreateMeeting_MirrorsOwnerAndID(t *testing.T) {
	repo := new(mocks.MockMeetingRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(m *entities.Meeting) bool {
		return m.ID == "m1" && m.MeetingID == "m1" && m.UserID == "u1" && m.CreatedBy == "u1" && m.Title == "Sync"
	})).Return(entities.Inserted("abc"), nil)

	res, err := NewMeetingService(repo).CreateMeeting(context.Background(), CreateMeetingInput{ID: "m1", CreatedBy: "u1", Title: "Sync"})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.InsertedID)
	repo.AssertExpectations(t)
}

func TestCreateMeeting_RequiresIDAndOwner(t *testing.T) {
	repo := new(mocks.MockMeetingRepository)
	svc := NewMeetingService(repo)

	_, err := svc.CreateMeeting(context.Background(), CreateMeetingInput{ID: "m1"})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	_, err = svc.CreateMeeting(context.Background(), CreateMeetingInput{CreatedBy: "u1"})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetMeeting(t *testing.T) {
	repo := new(mocks.MockMeetingRepository)
	repo.On("FindByPublicID", mock.Anything, "m1").Return(entities.NewMeeting("m1", "u1"), nil)
	repo.On("FindByPublicID", mock.Anything, "missing").Return(nil, repositories.ErrNotFound)
	repo.On("FindByPublicID", mock.Anything, "broken").Return(nil, errors.New("socket closed"))
	svc := NewMeetingService(repo)

	m, err := svc.GetMeeting(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "u1", m.UserID)

	_, err = svc.GetMeeting(context.Background(), "missing")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	_, err = svc.GetMeeting(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestListMeetings_Search(t *testing.T) {
	weekly := entities.NewMeeting("w-1", "u1")
	weekly.Title = "Weekly Sync"
	retro := entities.NewMeeting("r-1", "u1")
	retro.Title = "Retro"

	repo := new(mocks.MockMeetingRepository)
	repo.On("List", mock.Anything, "").Return([]*entities.Meeting{weekly, retro}, nil)
	svc := NewMeetingService(repo)

	all, err := svc.ListMeetings(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.ListMeetings(context.Background(), ListFilter{Search: "SYNC"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "w-1", found[0].MeetingID)
}
