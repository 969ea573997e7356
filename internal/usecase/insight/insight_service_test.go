package insight

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories/mocks"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/storage"
)

const validReport = `{"strengths":["Clear agenda"],"improvements":["Shorter updates"],"recommendations":["Timebox"],"trends":["Improving"],"effectivenessScore":8.5,"summary":"Good meeting."}`

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type fakeArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (f *fakeArchive) UploadJSON(_ context.Context, name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[name] = data
	return nil
}

func (f *fakeArchive) ListFiles(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []storage.ObjectInfo
	for k, v := range f.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, storage.ObjectInfo{Key: k, Size: int64(len(v))})
		}
	}
	return out, nil
}

func (f *fakeArchive) GetFileURL(_ context.Context, name string, _ time.Duration) (string, error) {
	return "https://files.test/" + name, nil
}

type fixture struct {
	feedback  *mocks.MockFeedbackRepository
	questions *mocks.MockQuestionRepository
	insights  *mocks.MockInsightRepository
}

func newFixture() *fixture {
	return &fixture{
		feedback:  new(mocks.MockFeedbackRepository),
		questions: new(mocks.MockQuestionRepository),
		insights:  new(mocks.MockInsightRepository),
	}
}

func (f *fixture) service(summarizer *mockSummarizer, opts ...Option) *InsightService {
	if summarizer == nil {
		return NewInsightService(f.feedback, f.questions, f.insights, nil, nil, opts...)
	}
	return NewInsightService(f.feedback, f.questions, f.insights, summarizer, nil, opts...)
}

func sampleFeedback() []*entities.Feedback {
	return []*entities.Feedback{
		{MeetingID: "m1", UserID: "u2", Responses: map[string]any{"q1": float64(4), "q2": "More demos"}},
	}
}

func TestGenerate_NoFeedbackSkipsSummarizer(t *testing.T) {
	f := newFixture()
	f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return([]*entities.Feedback{}, nil)
	f.questions.On("Find", mock.Anything, "m1", "u1").Return(nil, repositories.ErrNotFound)
	summarizer := new(mockSummarizer)

	got, err := f.service(summarizer).GenerateMeetingInsights(context.Background(), "m1", "u1")
	require.NoError(t, err)

	assert.Equal(t, entities.InsightSourceNoFeedback, got.Source)
	assert.Equal(t, []string{"No feedback found for this meeting."}, got.Report.Strengths)
	assert.Equal(t, []string{"No feedback found for this meeting."}, got.Report.Trends)
	assert.Equal(t, "No feedback found for this meeting.", got.Report.Summary)
	assert.Zero(t, got.Report.EffectivenessScore)
	assert.Empty(t, got.MeetingRecommendations)
	summarizer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGenerate_DefaultWithoutSummarizer(t *testing.T) {
	f := newFixture()
	f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return(sampleFeedback(), nil)
	f.questions.On("Find", mock.Anything, "m1", "u1").Return(nil, repositories.ErrNotFound)

	got, err := f.service(nil).GenerateMeetingInsights(context.Background(), "m1", "u1")
	require.NoError(t, err)

	assert.Equal(t, entities.InsightSourceDefault, got.Source)
	assert.Equal(t, 7.0, got.Report.EffectivenessScore)
	assert.Equal(t, "Default insights due to missing AI API key.", got.Report.Summary)
	assert.Len(t, got.MeetingRecommendations, 5)
	f.insights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGenerate_Generated(t *testing.T) {
	f := newFixture()
	f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return(sampleFeedback(), nil)
	f.questions.On("Find", mock.Anything, "m1", "u1").Return(&entities.QuestionSet{
		Questions: []entities.Question{{"id": "q1", "text": "Rate the meeting"}},
	}, nil)
	f.insights.On("Create", mock.Anything, mock.MatchedBy(func(i *entities.Insight) bool {
		return i.MeetingID == "m1" && i.Source == entities.InsightSourceGenerated
	})).Return(entities.Inserted("audit-1"), nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Rate the meeting: 4") && strings.Contains(p, "effectivenessScore")
	})).Return("```json\n"+validReport+"\n```", nil).Once()
	summarizer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, `{"recommendations": [string]}`)
	})).Return(`{"recommendations":["Share notes"]}`, nil).Once()

	archive := &fakeArchive{}
	got, err := f.service(summarizer, WithArchive(archive)).GenerateMeetingInsights(context.Background(), "m1", "u1")
	require.NoError(t, err)

	assert.Equal(t, entities.InsightSourceGenerated, got.Source)
	assert.Equal(t, 8.5, got.Report.EffectivenessScore)
	assert.Equal(t, []string{"Share notes"}, got.MeetingRecommendations)
	summarizer.AssertExpectations(t)
	f.insights.AssertExpectations(t)

	reports, err := f.service(summarizer, WithArchive(archive)).ListArchivedReports(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.True(t, strings.HasPrefix(reports[0].Key, "insights/m1/"))
	assert.Contains(t, reports[0].URL, "https://files.test/insights/m1/")
}

func TestGenerate_DegradedOnFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mockSummarizer)
	}{
		{
			name: "report call fails",
			setup: func(m *mockSummarizer) {
				m.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("503"))
			},
		},
		{
			name: "report is not json",
			setup: func(m *mockSummarizer) {
				m.On("Complete", mock.Anything, mock.Anything).Return("I think it went well", nil)
			},
		},
		{
			name: "report misses fields",
			setup: func(m *mockSummarizer) {
				m.On("Complete", mock.Anything, mock.Anything).Return(`{"strengths":[]}`, nil)
			},
		},
		{
			name: "recommendations call fails",
			setup: func(m *mockSummarizer) {
				m.On("Complete", mock.Anything, mock.Anything).Return(validReport, nil).Once()
				m.On("Complete", mock.Anything, mock.Anything).Return("", context.DeadlineExceeded).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return(sampleFeedback(), nil)
			f.questions.On("Find", mock.Anything, "m1", "u1").Return(nil, repositories.ErrNotFound)
			summarizer := new(mockSummarizer)
			tt.setup(summarizer)

			got, err := f.service(summarizer).GenerateMeetingInsights(context.Background(), "m1", "u1")
			require.NoError(t, err)

			assert.Equal(t, entities.InsightSourceDegraded, got.Source)
			assert.Equal(t, 7.8, got.Report.EffectivenessScore)
			assert.Equal(t, []string{"Start meetings with clear objectives and expected outcomes"}, got.MeetingRecommendations)
			f.insights.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGenerate_StoreFailureIsReturned(t *testing.T) {
	f := newFixture()
	f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return(nil, errors.New("connection reset"))

	_, err := f.service(nil).GenerateMeetingInsights(context.Background(), "m1", "u1")
	assert.Error(t, err)
}

func TestGenerate_CacheAndInvalidate(t *testing.T) {
	store := cache.NewMemoryStore(time.Minute)
	defer store.Close()

	f := newFixture()
	f.feedback.On("FindByMeetingID", mock.Anything, "m1").Return(sampleFeedback(), nil)
	f.questions.On("Find", mock.Anything, "m1", "u1").Return(nil, repositories.ErrNotFound)
	f.insights.On("Create", mock.Anything, mock.Anything).Return(entities.Inserted("a"), nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "effectivenessScore")
	})).Return(validReport, nil)
	summarizer.On("Complete", mock.Anything, mock.Anything).Return(`["Share notes"]`, nil)

	svc := f.service(summarizer, WithCache(store, time.Minute))
	ctx := context.Background()

	first, err := svc.GenerateMeetingInsights(ctx, "m1", "u1")
	require.NoError(t, err)
	second, err := svc.GenerateMeetingInsights(ctx, "m1", "u1")
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
	summarizer.AssertNumberOfCalls(t, "Complete", 2)

	require.NoError(t, svc.InvalidateMeeting(ctx, "m1"))
	_, err = svc.GenerateMeetingInsights(ctx, "m1", "u1")
	require.NoError(t, err)
	summarizer.AssertNumberOfCalls(t, "Complete", 4)
}

func TestListArchivedReports_Disabled(t *testing.T) {
	reports, err := newFixture().service(nil).ListArchivedReports(context.Background(), "m1")
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.NotNil(t, reports)
}
