package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/domain/repositories"
	"github.com/johnquangdev/meeting-feedback/pkg/ai"
)

const archiveURLExpiry = 15 * time.Minute

// InsightService aggregates meeting feedback into insight reports
type InsightService struct {
	feedbackRepo repositories.FeedbackRepository
	questionRepo repositories.QuestionRepository
	insightRepo  repositories.InsightRepository
	summarizer   ai.Client
	cache        Cache
	cacheTTL     time.Duration
	archive      Archive
	logger       *zap.Logger
	now          func() time.Time
}

var _ Service = (*InsightService)(nil)

// Option configures optional collaborators of InsightService
type Option func(*InsightService)

// WithCache caches generated reports for ttl
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *InsightService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithArchive archives generated reports
func WithArchive(archive Archive) Option {
	return func(s *InsightService) {
		s.archive = archive
	}
}

// NewInsightService creates a new insight service. A nil summarizer means summarization is not configured.
func NewInsightService(
	feedbackRepo repositories.FeedbackRepository,
	questionRepo repositories.QuestionRepository,
	insightRepo repositories.InsightRepository,
	summarizer ai.Client,
	logger *zap.Logger,
	opts ...Option,
) *InsightService {
	s := &InsightService{
		feedbackRepo: feedbackRepo,
		questionRepo: questionRepo,
		insightRepo:  insightRepo,
		summarizer:   summarizer,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// GenerateMeetingInsights builds the report of a meeting.
// Order: no feedback, summarizer not configured, cached report, generated report, degraded fallback.
func (s *InsightService) GenerateMeetingInsights(ctx context.Context, meetingID, userID string) (*entities.MeetingInsights, error) {
	feedback, err := s.feedbackRepo.FindByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}

	questions, err := s.loadQuestions(ctx, meetingID, userID)
	if err != nil {
		return nil, err
	}

	result := &entities.MeetingInsights{
		MeetingID:   meetingID,
		Feedback:    feedback,
		Questions:   questions,
		GeneratedAt: s.now(),
	}

	if len(feedback) == 0 {
		result.Source = entities.InsightSourceNoFeedback
		result.Report = noFeedbackReport()
		result.MeetingRecommendations = []string{}
		return result, nil
	}

	if s.summarizer == nil {
		result.Source = entities.InsightSourceDefault
		result.Report, result.MeetingRecommendations = defaultReport()
		return result, nil
	}

	cacheKey := s.cacheKey(ctx, meetingID, userID)
	if cached, ok := s.cachedReport(ctx, cacheKey); ok {
		cached.Feedback = feedback
		cached.Questions = questions
		return cached, nil
	}

	report, recommendations, err := s.summarize(ctx, feedback, questions)
	if err != nil {
		s.logger.Warn("insight.fallback.degraded",
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
		result.Source = entities.InsightSourceDegraded
		result.Report, result.MeetingRecommendations = degradedReport()
		return result, nil
	}

	result.Source = entities.InsightSourceGenerated
	result.Report = report
	result.MeetingRecommendations = recommendations

	s.storeCache(ctx, cacheKey, result)
	s.recordAudit(ctx, userID, result)
	s.archiveReport(ctx, result)

	return result, nil
}

func (s *InsightService) loadQuestions(ctx context.Context, meetingID, userID string) ([]entities.Question, error) {
	set, err := s.questionRepo.Find(ctx, meetingID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []entities.Question{}, nil
		}
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	return set.Questions, nil
}

// summarize makes the report call and the recommendations call. Either failure fails the whole run.
func (s *InsightService) summarize(ctx context.Context, feedback []*entities.Feedback, questions []entities.Question) (entities.InsightReport, []string, error) {
	content, err := s.summarizer.Complete(ctx, reportPrompt(feedback, questions))
	if err != nil {
		return entities.InsightReport{}, nil, fmt.Errorf("report request: %w", err)
	}
	report, err := parseReport(content)
	if err != nil {
		return entities.InsightReport{}, nil, err
	}

	content, err = s.summarizer.Complete(ctx, recommendationsPrompt("general", feedback, questions))
	if err != nil {
		return entities.InsightReport{}, nil, fmt.Errorf("recommendations request: %w", err)
	}
	recommendations, err := parseRecommendations(content)
	if err != nil {
		return entities.InsightReport{}, nil, err
	}

	return report, recommendations, nil
}

// SaveInsight stores a client supplied insight as is
func (s *InsightService) SaveInsight(ctx context.Context, insight *entities.Insight) (*entities.OperationResult, error) {
	result, err := s.insightRepo.Create(ctx, insight)
	if err != nil {
		return nil, fmt.Errorf("failed to save insight: %w", err)
	}
	return result, nil
}

// ListInsights retrieves all insight records
func (s *InsightService) ListInsights(ctx context.Context) ([]*entities.Insight, error) {
	items, err := s.insightRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return items, nil
}

// ListArchivedReports returns an empty list when archiving is disabled
func (s *InsightService) ListArchivedReports(ctx context.Context, meetingID string) ([]ArchivedReport, error) {
	reports := []ArchivedReport{}
	if s.archive == nil {
		return reports, nil
	}

	files, err := s.archive.ListFiles(ctx, archivePrefix(meetingID))
	if err != nil {
		return nil, fmt.Errorf("failed to list archived reports: %w", err)
	}

	for _, f := range files {
		url, err := s.archive.GetFileURL(ctx, f.Key, archiveURLExpiry)
		if err != nil {
			return nil, fmt.Errorf("failed to sign archived report: %w", err)
		}
		reports = append(reports, ArchivedReport{
			Key:          f.Key,
			Size:         f.Size,
			LastModified: f.LastModified,
			URL:          url,
		})
	}
	return reports, nil
}

// InvalidateMeeting rotates the cache generation of a meeting so earlier reports are no longer served
func (s *InsightService) InvalidateMeeting(ctx context.Context, meetingID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, generationKey(meetingID))
}

func generationKey(meetingID string) string {
	return "insights:generation:" + meetingID
}

func archivePrefix(meetingID string) string {
	return "insights/" + meetingID + "/"
}

// cacheKey returns "" when caching is off or the generation could not be read
func (s *InsightService) cacheKey(ctx context.Context, meetingID, userID string) string {
	if s.cache == nil {
		return ""
	}

	genKey := generationKey(meetingID)
	gen, ok, err := s.cache.Get(ctx, genKey)
	if err != nil {
		s.logger.Warn("⚠️ Insight cache unavailable", zap.String("meeting_id", meetingID), zap.Error(err))
		return ""
	}
	if !ok {
		gen = []byte(uuid.NewString())
		if err := s.cache.Set(ctx, genKey, gen, s.cacheTTL); err != nil {
			s.logger.Warn("⚠️ Insight cache unavailable", zap.String("meeting_id", meetingID), zap.Error(err))
			return ""
		}
	}
	return fmt.Sprintf("insights:%s:%s:%s", meetingID, gen, userID)
}

func (s *InsightService) cachedReport(ctx context.Context, key string) (*entities.MeetingInsights, bool) {
	if key == "" {
		return nil, false
	}
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}

	var cached entities.MeetingInsights
	if err := json.Unmarshal(data, &cached); err != nil {
		s.logger.Warn("⚠️ Dropping unreadable cached report", zap.String("key", key), zap.Error(err))
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	return &cached, true
}

func (s *InsightService) storeCache(ctx context.Context, key string, result *entities.MeetingInsights) {
	if key == "" {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("⚠️ Failed to cache insight report", zap.String("meeting_id", result.MeetingID), zap.Error(err))
	}
}

func (s *InsightService) recordAudit(ctx context.Context, userID string, result *entities.MeetingInsights) {
	if _, err := s.insightRepo.Create(ctx, entities.NewInsightRecord(userID, result)); err != nil {
		s.logger.Error("❌ Failed to store insight audit record",
			zap.String("meeting_id", result.MeetingID),
			zap.Error(err),
		)
	}
}

func (s *InsightService) archiveReport(ctx context.Context, result *entities.MeetingInsights) {
	if s.archive == nil {
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return
	}
	name := fmt.Sprintf("%s%d.json", archivePrefix(result.MeetingID), result.GeneratedAt.UnixMilli())
	if err := s.archive.UploadJSON(ctx, name, data); err != nil {
		s.logger.Warn("⚠️ Failed to archive insight report",
			zap.String("meeting_id", result.MeetingID),
			zap.String("object", name),
			zap.Error(err),
		)
		return
	}
	s.logger.Info("✅ Insight report archived", zap.String("object", name))
}
