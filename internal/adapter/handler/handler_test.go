package handler

import (
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories/mocks"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/dashboard"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/feedback"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/insight"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/profile"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/question"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/team"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-feedback/pkg/validator"
)

type testServer struct {
	e            *echo.Echo
	meetingRepo  *mocks.MockMeetingRepository
	teamRepo     *mocks.MockTeamRepository
	feedbackRepo *mocks.MockFeedbackRepository
	questionRepo *mocks.MockQuestionRepository
	profileRepo  *mocks.MockProfileRepository
	insightRepo  *mocks.MockInsightRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		meetingRepo:  new(mocks.MockMeetingRepository),
		teamRepo:     new(mocks.MockTeamRepository),
		feedbackRepo: new(mocks.MockFeedbackRepository),
		questionRepo: new(mocks.MockQuestionRepository),
		profileRepo:  new(mocks.MockProfileRepository),
		insightRepo:  new(mocks.MockInsightRepository),
	}
	t.Cleanup(func() {
		ts.meetingRepo.AssertExpectations(t)
		ts.teamRepo.AssertExpectations(t)
		ts.feedbackRepo.AssertExpectations(t)
		ts.questionRepo.AssertExpectations(t)
		ts.profileRepo.AssertExpectations(t)
		ts.insightRepo.AssertExpectations(t)
	})

	logger := zap.NewNop()
	insightService := insight.NewInsightService(ts.feedbackRepo, ts.questionRepo, ts.insightRepo, nil, logger)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"
	cfg.Store.Driver = config.StoreDriverMongo

	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = ErrorHandler(logger)
	NewRouter(cfg, Handlers{
		Meeting:   NewMeetingHandler(meeting.NewMeetingService(ts.meetingRepo), logger),
		Team:      NewTeamHandler(team.NewTeamService(ts.teamRepo), logger),
		Feedback:  NewFeedbackHandler(feedback.NewFeedbackService(ts.feedbackRepo, insightService, logger), logger),
		Question:  NewQuestionHandler(question.NewQuestionService(ts.questionRepo), logger),
		Profile:   NewProfileHandler(profile.NewProfileService(ts.profileRepo), logger),
		Insight:   NewInsightHandler(insightService, logger),
		Dashboard: NewDashboardHandler(dashboard.NewDashboardService(ts.meetingRepo, ts.feedbackRepo), logger),
	}).Setup(e)

	ts.e = e
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func assertMessage(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	assert.JSONEq(t, `{"message":"`+message+`"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","environment":"test","store":"mongo"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/nope", "")
	assertMessage(t, rec, http.StatusNotFound, "Not Found")
}

func TestMeeting_CreateThenGet(t *testing.T) {
	ts := newTestServer(t)

	var stored *entities.Meeting
	ts.meetingRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Meeting")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*entities.Meeting) }).
		Return(entities.Inserted("abc"), nil).Once()

	rec := ts.do(http.MethodPost, "/api/meetings", `{"id":"m1","createdBy":"u1","title":"Standup"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Meeting created","result":{"acknowledged":true,"insertedId":"abc"}}`, rec.Body.String())
	require.NotNil(t, stored)

	ts.meetingRepo.On("FindByPublicID", mock.Anything, "m1").Return(stored, nil).Once()

	rec = ts.do(http.MethodGet, "/api/meetings/m1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meetingId":"m1"`)
	assert.Contains(t, rec.Body.String(), `"userId":"u1"`)
	assert.Contains(t, rec.Body.String(), `"createdBy":"u1"`)
}

func TestMeeting_CreateRequiresIDAndCreatedBy(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{`{"id":"m1"}`, `{"createdBy":"u1"}`, `{}`, `not json`} {
		rec := ts.do(http.MethodPost, "/api/meetings", body)
		assertMessage(t, rec, http.StatusBadRequest, "Meeting ID and createdBy (userId) are required")
	}
	ts.meetingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMeeting_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.meetingRepo.On("FindByPublicID", mock.Anything, "nope").Return(nil, repositories.ErrNotFound).Once()

	rec := ts.do(http.MethodGet, "/api/meetings/nope", "")
	assertMessage(t, rec, http.StatusNotFound, "Meeting not found")
}

func TestMeeting_StoreFailureDoesNotLeak(t *testing.T) {
	ts := newTestServer(t)
	ts.meetingRepo.On("List", mock.Anything, "").Return(nil, stdErrors.New("dial tcp: connection refused")).Once()

	rec := ts.do(http.MethodGet, "/api/meetings", "")
	assertMessage(t, rec, http.StatusInternalServerError, "Server error")
}

func TestMeeting_ListScopedAndSearched(t *testing.T) {
	ts := newTestServer(t)
	ts.meetingRepo.On("List", mock.Anything, "u1").Return([]*entities.Meeting{
		{ID: "m1", MeetingID: "m1", UserID: "u1", Title: "Weekly Sync"},
		{ID: "m2", MeetingID: "m2", UserID: "u1", Title: "Retro"},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/meetings?userId=u1&search=sync", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meetingId":"m1"`)
	assert.NotContains(t, rec.Body.String(), `"meetingId":"m2"`)
}

func TestTeam_Validation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"null body", `null`, "Team object required"},
		{"scalar body", `"team"`, "Team object required"},
		{"malformed", `{"name":`, "Team object required"},
		{"empty body", ``, "Team Name is required"},
		{"array body", `[]`, "Team Name is required"},
		{"numeric name", `{"name":5,"members":[{"name":"Ann","role":"Dev","email":"ann@x.io"}]}`, "Team Name is required"},
		{"members not array", `{"name":"A","members":"x"}`, "At least one member is required"},
		{"numeric member name", `{"name":"A","members":[{"name":7,"role":"Dev","email":"ann@x.io"}]}`, "Member Name is required"},
		{"member not object", `{"name":"A","members":[5]}`, "Member Name is required"},
		{"blank name", `{"name":"  ","members":[]}`, "Team Name is required"},
		{"no members", `{"name":"Core","members":[]}`, "At least one member is required"},
		{"member role", `{"name":"Core","members":[{"name":"Ann","email":"ann@x.io"}]}`, "Member Role is required"},
		{"member email format", `{"name":"Core","members":[{"name":"Ann","role":"Dev","email":"ann@x"}]}`, "Invalid Email format for member: Ann"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/teams", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			ts.e.ServeHTTP(rec, req)
			assertMessage(t, rec, http.StatusBadRequest, tt.want)
		})
	}
	ts.teamRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeam_CreateUpdateDelete(t *testing.T) {
	ts := newTestServer(t)
	body := `{"name":"Core","members":[{"name":"Ann","role":"Dev","email":"ann@x.io"}]}`

	ts.teamRepo.On("Create", mock.Anything, mock.MatchedBy(func(tm *entities.Team) bool {
		return tm.Name == "Core" && len(tm.Members) == 1 && tm.Members[0].Email == "ann@x.io"
	})).Return(entities.Inserted("t1"), nil).Once()
	rec := ts.do(http.MethodPost, "/api/teams", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Team created"`)

	ts.teamRepo.On("Replace", mock.Anything, "t1", "Core", mock.Anything).
		Return(&entities.OperationResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil).Once()
	rec = ts.do(http.MethodPut, "/api/teams/t1", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Team updated"`)

	ts.teamRepo.On("Replace", mock.Anything, "missing", "Core", mock.Anything).Return(nil, repositories.ErrNotFound).Once()
	rec = ts.do(http.MethodPut, "/api/teams/missing", body)
	assertMessage(t, rec, http.StatusNotFound, "Team not found")

	ts.teamRepo.On("Delete", mock.Anything, "t1").
		Return(&entities.OperationResult{Acknowledged: true, DeletedCount: 1}, nil).Once()
	rec = ts.do(http.MethodDelete, "/api/teams/t1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Team deleted"`)

	ts.teamRepo.On("Delete", mock.Anything, "t1").Return(nil, repositories.ErrNotFound).Once()
	rec = ts.do(http.MethodDelete, "/api/teams/t1", "")
	assertMessage(t, rec, http.StatusNotFound, "Team not found")
}

func TestTeam_ListEmpty(t *testing.T) {
	ts := newTestServer(t)
	ts.teamRepo.On("List", mock.Anything).Return(nil, nil).Once()

	rec := ts.do(http.MethodGet, "/api/teams", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFeedback_NumericIdentifiers(t *testing.T) {
	ts := newTestServer(t)
	ts.feedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(fb *entities.Feedback) bool {
		return fb.MeetingID == "42" && fb.UserID == "7" && fb.Responses["q1"] == "Yes"
	})).Return(entities.Inserted("f1"), nil).Once()

	rec := ts.do(http.MethodPost, "/api/feedback", `{"meetingId":42,"userId":7,"responses":{"q1":"Yes"},"extra":"dropped"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Feedback saved"`)
}

func TestFeedback_RequiresFields(t *testing.T) {
	ts := newTestServer(t)

	for _, body := range []string{`{"meetingId":"m1","userId":"u1"}`, `{"meetingId":"m1","responses":{}}`, `{"userId":"u1","responses":{}}`} {
		rec := ts.do(http.MethodPost, "/api/feedback", body)
		assertMessage(t, rec, http.StatusBadRequest, "meetingId, userId, and responses are required")
	}
}

func TestQuestions_SaveAndGet(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/questions", `{"meetId":"m1","userId":"u1"}`)
	assertMessage(t, rec, http.StatusBadRequest, "meetId, userId, and questions[] required")

	rec = ts.do(http.MethodPost, "/api/questions", `{"meetId":"m1","userId":"u1","questions":"nope"}`)
	assertMessage(t, rec, http.StatusBadRequest, "meetId, userId, and questions[] required")

	ts.questionRepo.On("Upsert", mock.Anything, "m1", "u1", mock.MatchedBy(func(qs []entities.Question) bool {
		return len(qs) == 1 && qs[0].ID() == "q1"
	})).Return(&entities.OperationResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: "qs1"}, nil).Once()
	rec = ts.do(http.MethodPost, "/api/questions", `{"meetId":"m1","userId":"u1","questions":[{"id":"q1","text":"How was it?"}]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Questions saved"`)

	ts.questionRepo.On("Find", mock.Anything, "m2", "u1").Return(nil, repositories.ErrNotFound).Once()
	rec = ts.do(http.MethodGet, "/api/questions/m2/u1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestQuestions_KeepFieldsAsSent(t *testing.T) {
	ts := newTestServer(t)

	var saved []entities.Question
	ts.questionRepo.On("Upsert", mock.Anything, "m1", "u1", mock.AnythingOfType("[]entities.Question")).
		Run(func(args mock.Arguments) { saved = args.Get(3).([]entities.Question) }).
		Return(&entities.OperationResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: "qs1"}, nil).Once()

	body := `{"meetId":"m1","userId":"u1","questions":[{"id":1,"text":"How?","required":true,"scale":5}]}`
	rec := ts.do(http.MethodPost, "/api/questions", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, saved, 1)
	assert.Equal(t, "1", saved[0].ID())
	assert.Equal(t, true, saved[0]["required"])
	assert.Equal(t, float64(5), saved[0]["scale"])

	ts.questionRepo.On("Find", mock.Anything, "m1", "u1").
		Return(&entities.QuestionSet{MeetID: "m1", UserID: "u1", Questions: saved}, nil).Once()
	rec = ts.do(http.MethodGet, "/api/questions/m1/u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"text":"How?","required":true,"scale":5}]`, rec.Body.String())
}

func TestProfile_SaveAndGet(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/profile", `{"name":"Ann"}`)
	assertMessage(t, rec, http.StatusBadRequest, "Email is required")

	saved := entities.NewProfile("ann@x.io", map[string]any{"name": "Ann"})
	ts.profileRepo.On("Upsert", mock.Anything, "ann@x.io", mock.MatchedBy(func(attrs map[string]any) bool {
		return attrs["name"] == "Ann"
	})).Return(&entities.OperationResult{Acknowledged: true, MatchedCount: 1}, nil).Once()
	ts.profileRepo.On("FindByEmail", mock.Anything, "ann@x.io").Return(saved, nil)

	rec = ts.do(http.MethodPost, "/api/profile", `{"_id":"x","email":"ann@x.io","name":"Ann"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Profile saved"`)
	assert.Contains(t, rec.Body.String(), `"profile":{`)

	rec = ts.do(http.MethodGet, "/api/profile/ann%40x.io", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ann@x.io"`)

	ts.profileRepo.On("FindByEmail", mock.Anything, "bob@x.io").Return(nil, repositories.ErrNotFound).Once()
	rec = ts.do(http.MethodGet, "/api/profile/bob@x.io", "")
	assertMessage(t, rec, http.StatusNotFound, "Profile not found")
}

func TestInsights_DefaultReportWithoutSummarizer(t *testing.T) {
	ts := newTestServer(t)
	ts.feedbackRepo.On("FindByMeetingID", mock.Anything, "m1").Return([]*entities.Feedback{
		{MeetingID: "m1", UserID: "u2", Responses: map[string]any{"q1": float64(4)}},
	}, nil).Once()
	ts.questionRepo.On("Find", mock.Anything, "m1", "u1").Return(&entities.QuestionSet{
		MeetID: "m1", UserID: "u1", Questions: []entities.Question{{"id": "q1", "text": "Rate it"}},
	}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/meetings/m1/insights?userId=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"source":"default"`)
	assert.Contains(t, body, `"effectivenessScore":7`)
	assert.Contains(t, body, `"label":"Rate it"`)
	assert.Contains(t, body, `"answer":"4"`)
}

func TestInsights_SaveAndList(t *testing.T) {
	ts := newTestServer(t)
	ts.insightRepo.On("Create", mock.Anything, mock.MatchedBy(func(in *entities.Insight) bool {
		return in.MeetingID == "m1" && in.Summary == "ok"
	})).Return(entities.Inserted("i1"), nil).Once()

	rec := ts.do(http.MethodPost, "/api/ai-insights", `{"meetingId":"m1","summary":"ok"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"AI Insight saved"`)

	ts.insightRepo.On("List", mock.Anything).Return([]*entities.Insight{{MeetingID: "m1"}}, nil).Once()
	rec = ts.do(http.MethodGet, "/api/ai-insights", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"meetingId":"m1"`)
}

func TestInsights_ArchiveDisabled(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/meetings/m1/insights/archive", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meetingId":"m1","reports":[],"count":0}`, rec.Body.String())
}

func TestDashboard(t *testing.T) {
	ts := newTestServer(t)
	ts.meetingRepo.On("List", mock.Anything, "u1").Return([]*entities.Meeting{{ID: "m1", MeetingID: "m1", UserID: "u1"}}, nil).Once()
	ts.feedbackRepo.On("CountByMeetingIDs", mock.Anything, []string{"m1"}).Return(map[string]int64{"m1": 3}, nil).Once()

	rec := ts.do(http.MethodGet, "/api/users/u1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalFeedback":3`)
	assert.Contains(t, rec.Body.String(), `"totalMeetings":1`)
}
