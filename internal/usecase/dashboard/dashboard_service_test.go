package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories/mocks"
	usecaseErrors "github.com/johnquangdev/meeting-feedback/internal/usecase/errors"
)

func TestGetUserDashboard(t *testing.T) {
	meetingRepo := new(mocks.MockMeetingRepository)
	feedbackRepo := new(mocks.MockFeedbackRepository)

	meetingRepo.On("List", mock.Anything, "u1").Return([]*entities.Meeting{
		entities.NewMeeting("m1", "u1"),
		entities.NewMeeting("m2", "u1"),
	}, nil)
	feedbackRepo.On("CountByMeetingIDs", mock.Anything, []string{"m1", "m2"}).
		Return(map[string]int64{"m1": 3}, nil)

	stats, err := NewDashboardService(meetingRepo, feedbackRepo).GetUserDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalMeetings)
	assert.Equal(t, int64(3), stats.TotalFeedback)
	assert.Equal(t, map[string]int64{"m1": 3, "m2": 0}, stats.FeedbackByMeeting)
}

func TestGetUserDashboard_DuplicateMeetingIDs(t *testing.T) {
	meetingRepo := new(mocks.MockMeetingRepository)
	feedbackRepo := new(mocks.MockFeedbackRepository)

	meetingRepo.On("List", mock.Anything, "u1").Return([]*entities.Meeting{
		entities.NewMeeting("m1", "u1"),
		entities.NewMeeting("m1", "u1"),
	}, nil)
	feedbackRepo.On("CountByMeetingIDs", mock.Anything, []string{"m1"}).
		Return(map[string]int64{"m1": 2}, nil)

	stats, err := NewDashboardService(meetingRepo, feedbackRepo).GetUserDashboard(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalMeetings)
	assert.Equal(t, int64(2), stats.TotalFeedback)
	assert.Equal(t, map[string]int64{"m1": 2}, stats.FeedbackByMeeting)
	feedbackRepo.AssertExpectations(t)
}

func TestGetUserDashboard_Errors(t *testing.T) {
	meetingRepo := new(mocks.MockMeetingRepository)
	feedbackRepo := new(mocks.MockFeedbackRepository)
	svc := NewDashboardService(meetingRepo, feedbackRepo)

	_, err := svc.GetUserDashboard(context.Background(), "")
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	meetingRepo.On("List", mock.Anything, "u1").Return(nil, errors.New("boom"))
	_, err = svc.GetUserDashboard(context.Background(), "u1")
	assert.Error(t, err)
}
