// Package mocks provides testify mocks of the domain repositories.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
)

func opResult(args mock.Arguments) (*entities.OperationResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OperationResult), args.Error(1)
}

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *entities.Meeting) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, meeting))
}

func (m *MockMeetingRepository) FindByPublicID(ctx context.Context, id string) (*entities.Meeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) List(ctx context.Context, userID string) ([]*entities.Meeting, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Meeting), args.Error(1)
}

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *entities.Team) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, team))
}

func (m *MockTeamRepository) FindByID(ctx context.Context, id string) (*entities.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Team), args.Error(1)
}

func (m *MockTeamRepository) Replace(ctx context.Context, id string, name string, members []entities.Member) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, id, name, members))
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, id))
}

type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *entities.Feedback) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, feedback))
}

func (m *MockFeedbackRepository) List(ctx context.Context) ([]*entities.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindByMeetingID(ctx context.Context, meetingID string) ([]*entities.Feedback, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) CountByMeetingIDs(ctx context.Context, meetingIDs []string) (map[string]int64, error) {
	args := m.Called(ctx, meetingIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Upsert(ctx context.Context, meetID, userID string, questions []entities.Question) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, meetID, userID, questions))
}

func (m *MockQuestionRepository) Find(ctx context.Context, meetID, userID string) (*entities.QuestionSet, error) {
	args := m.Called(ctx, meetID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.QuestionSet), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Upsert(ctx context.Context, email string, attrs map[string]any) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, email, attrs))
}

func (m *MockProfileRepository) FindByEmail(ctx context.Context, email string) (*entities.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

type MockInsightRepository struct {
	mock.Mock
}

func (m *MockInsightRepository) Create(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error) {
	return opResult(m.Called(ctx, insight))
}

func (m *MockInsightRepository) List(ctx context.Context) ([]*entities.Insight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Insight), args.Error(1)
}
