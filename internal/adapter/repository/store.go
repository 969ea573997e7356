package repository

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/adapter/repository/mongorepo"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

// Store bundles the repositories of the configured backend
type Store struct {
	Meetings  repositories.MeetingRepository
	Teams     repositories.TeamRepository
	Feedback  repositories.FeedbackRepository
	Questions repositories.QuestionRepository
	Profiles  repositories.ProfileRepository
	Insights  repositories.InsightRepository

	close func(ctx context.Context) error
}

// Close releases the underlying connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by STORE_DRIVER, retrying for
// cfg.Store.ConnectTimeout, and prepares its schema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		return openPostgres(ctx, cfg)
	case config.StoreDriverMongo:
		return openMongo(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	log.Println("📦 Connecting to MongoDB...")
	mdb, err := database.ConnectWithRetry(ctx, cfg.Store.ConnectTimeout, "MongoDB", func() (*database.MongoDB, error) {
		return database.NewMongoDB(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}

	if err := mongorepo.EnsureIndexes(ctx, mdb.Database); err != nil {
		_ = mdb.Close(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	db := mdb.Database
	return &Store{
		Meetings:  mongorepo.NewMeetingRepository(db),
		Teams:     mongorepo.NewTeamRepository(db),
		Feedback:  mongorepo.NewFeedbackRepository(db),
		Questions: mongorepo.NewQuestionRepository(db),
		Profiles:  mongorepo.NewProfileRepository(db),
		Insights:  mongorepo.NewInsightRepository(db),
		close:     mdb.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	log.Println("📦 Connecting to PostgreSQL...")
	db, err := database.ConnectWithRetry(ctx, cfg.Store.ConnectTimeout, "PostgreSQL", func() (*gorm.DB, error) {
		return database.NewPostgresDB(cfg)
	})
	if err != nil {
		return nil, err
	}

	// Schema is managed by cmd/migrate unless auto-migrate is enabled (never in production).
	if cfg.Database.AutoMigrate {
		log.Println("🔄 Running embedded migrations (development only) ...")
		if _, err := database.MigrateUp(db); err != nil {
			_ = database.CloseDB(db)
			return nil, err
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	return NewStore(db), nil
}

// NewStore builds the gorm backed repositories on an open connection
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Meetings:  NewMeetingRepository(db),
		Teams:     NewTeamRepository(db),
		Feedback:  NewFeedbackRepository(db),
		Questions: NewQuestionRepository(db),
		Profiles:  NewProfileRepository(db),
		Insights:  NewInsightRepository(db),
		close: func(context.Context) error {
			return database.CloseDB(db)
		},
	}
}
