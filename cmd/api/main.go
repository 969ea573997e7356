package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-feedback/docs"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/handler"
	"github.com/johnquangdev/meeting-feedback/internal/adapter/repository"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/dashboard"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/feedback"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/insight"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/profile"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/question"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/team"
	pkgai "github.com/johnquangdev/meeting-feedback/pkg/ai"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
	"github.com/johnquangdev/meeting-feedback/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-feedback/pkg/validator"
)

// @title           Meeting Feedback API
// @version         1.0
// @description     Meetings, teams, feedback forms, question sets, profiles and AI summaries of meeting feedback.

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false
	e.HTTPErrorHandler = handler.ErrorHandler(zapLogger)

	// Custom logger format
	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.Store.Driver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			zapLogger.Warn("failed to close store", zap.Error(err))
		}
	}()

	// Report cache: Redis when enabled, in-process otherwise
	var reportCache insight.Cache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		reportCache = redisStore
	} else {
		log.Println("⚠️  Redis disabled, caching insight reports in memory")
		memStore := cache.NewMemoryStore(time.Minute)
		defer memStore.Close()
		reportCache = memStore
	}
	insightOpts := []insight.Option{insight.WithCache(reportCache, cfg.Redis.ReportTTL)}

	// Report archive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		insightOpts = append(insightOpts, insight.WithArchive(minioClient))
	}

	// Summarizer
	log.Println("🤖 Initializing AI components...")
	summarizer, err := pkgai.NewClient(ctx, &cfg.AI)
	if err != nil {
		log.Fatalf("Failed to initialize %s client: %v", cfg.AI.Provider, err)
	}
	if summarizer == nil {
		log.Printf("⚠️  No %s API key configured, insights use the default report", cfg.AI.Provider)
	}

	// Initialize services
	log.Println("⚙️  Initializing services...")
	insightService := insight.NewInsightService(store.Feedback, store.Questions, store.Insights, summarizer, zapLogger, insightOpts...)
	meetingService := meeting.NewMeetingService(store.Meetings)
	teamService := team.NewTeamService(store.Teams)
	feedbackService := feedback.NewFeedbackService(store.Feedback, insightService, zapLogger)
	questionService := question.NewQuestionService(store.Questions)
	profileService := profile.NewProfileService(store.Profiles)
	dashboardService := dashboard.NewDashboardService(store.Meetings, store.Feedback)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, handler.Handlers{
		Meeting:   handler.NewMeetingHandler(meetingService, zapLogger),
		Team:      handler.NewTeamHandler(teamService, zapLogger),
		Feedback:  handler.NewFeedbackHandler(feedbackService, zapLogger),
		Question:  handler.NewQuestionHandler(questionService, zapLogger),
		Profile:   handler.NewProfileHandler(profileService, zapLogger),
		Insight:   handler.NewInsightHandler(insightService, zapLogger),
		Dashboard: handler.NewDashboardHandler(dashboardService, zapLogger),
	})
	router.Setup(e)

	// Start server
	addr := cfg.GetServerAddr()
	go func() {
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s, store: %s", cfg.Server.Environment, cfg.Store.Driver)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}
