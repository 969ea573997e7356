package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-feedback/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	meetingHandler   *Meeting
	teamHandler      *Team
	feedbackHandler  *Feedback
	questionHandler  *Question
	profileHandler   *Profile
	insightHandler   *Insight
	dashboardHandler *Dashboard
}

// Handlers groups the handlers passed to NewRouter
type Handlers struct {
	Meeting   *Meeting
	Team      *Team
	Feedback  *Feedback
	Question  *Question
	Profile   *Profile
	Insight   *Insight
	Dashboard *Dashboard
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, h Handlers) *Router {
	return &Router{
		cfg:              cfg,
		meetingHandler:   h.Meeting,
		teamHandler:      h.Team,
		feedbackHandler:  h.Feedback,
		questionHandler:  h.Question,
		profileHandler:   h.Profile,
		insightHandler:   h.Insight,
		dashboardHandler: h.Dashboard,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	rt.setupMeetingRoutes(api)
	rt.setupTeamRoutes(api)
	rt.setupFeedbackRoutes(api)
	rt.setupQuestionRoutes(api)
	rt.setupProfileRoutes(api)
	rt.setupInsightRoutes(api)
	rt.setupDashboardRoutes(api)
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")
	if rt.meetingHandler == nil {
		meetings.Any("*", rt.notImplemented)
		return
	}
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)

	if rt.insightHandler != nil {
		meetings.GET("/:id/insights", rt.insightHandler.GetMeetingInsights)
		meetings.GET("/:id/insights/archive", rt.insightHandler.ListArchivedReports)
	}
}

// setupTeamRoutes configures team CRUD routes
func (rt *Router) setupTeamRoutes(g *echo.Group) {
	teams := g.Group("/teams")
	if rt.teamHandler == nil {
		teams.Any("*", rt.notImplemented)
		return
	}
	teams.GET("", rt.teamHandler.ListTeams)
	teams.POST("", rt.teamHandler.CreateTeam)
	teams.GET("/:id", rt.teamHandler.GetTeam)
	teams.PUT("/:id", rt.teamHandler.UpdateTeam)
	teams.DELETE("/:id", rt.teamHandler.DeleteTeam)
}

func (rt *Router) setupFeedbackRoutes(g *echo.Group) {
	if rt.feedbackHandler == nil {
		g.Any("/feedback", rt.notImplemented)
		return
	}
	g.GET("/feedback", rt.feedbackHandler.ListFeedback)
	g.POST("/feedback", rt.feedbackHandler.SubmitFeedback)
}

func (rt *Router) setupQuestionRoutes(g *echo.Group) {
	questions := g.Group("/questions")
	if rt.questionHandler == nil {
		questions.Any("*", rt.notImplemented)
		return
	}
	questions.POST("", rt.questionHandler.SaveQuestions)
	questions.GET("/:meetId/:userId", rt.questionHandler.GetQuestions)
}

func (rt *Router) setupProfileRoutes(g *echo.Group) {
	profile := g.Group("/profile")
	if rt.profileHandler == nil {
		profile.Any("*", rt.notImplemented)
		return
	}
	profile.POST("", rt.profileHandler.SaveProfile)
	profile.GET("/:email", rt.profileHandler.GetProfile)
}

func (rt *Router) setupInsightRoutes(g *echo.Group) {
	insights := g.Group("/ai-insights")
	if rt.insightHandler == nil {
		insights.Any("*", rt.notImplemented)
		return
	}
	insights.GET("", rt.insightHandler.ListInsights)
	insights.POST("", rt.insightHandler.SaveInsight)
}

func (rt *Router) setupDashboardRoutes(g *echo.Group) {
	if rt.dashboardHandler == nil {
		return
	}
	g.GET("/users/:userId/dashboard", rt.dashboardHandler.GetUserDashboard)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, common.ErrorResponse{
		Message: "This endpoint is not yet implemented",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{Status: "ok"}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
		resp.Store = rt.cfg.Store.Driver
	}
	return c.JSON(http.StatusOK, resp)
}
