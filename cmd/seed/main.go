// Command seed fills the configured store with demo meetings, a team, question sets and feedback.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-feedback/internal/adapter/repository"
	"github.com/johnquangdev/meeting-feedback/internal/domain/entities"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/feedback"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/profile"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/question"
	"github.com/johnquangdev/meeting-feedback/internal/usecase/team"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

var (
	owner        string
	meetingCount int
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo data",
	Long: `Creates demo meetings owned by --owner, one team, a question set per meeting
and a few feedback forms, using the same services as the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.ConnectTimeout+time.Minute)
		defer cancel()

		store, err := repository.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer store.Close(context.Background())

		return seed(ctx, store)
	},
}

var demoParticipants = []entities.Member{
	{Name: "Alice", Role: "Engineer", Email: "alice@test.local"},
	{Name: "Bob", Role: "Designer", Email: "bob@test.local"},
	{Name: "Charlie", Role: "Product Manager", Email: "charlie@test.local"},
}

var demoQuestions = []entities.Question{
	{"id": "q1", "text": "How effective was the meeting?", "type": "rating", "scale": 5},
	{"id": "q2", "text": "Was the agenda clear?", "type": "choice", "options": []string{"Yes", "No", "Partly"}},
	{"id": "q3", "text": "What should we change next time?", "type": "text"},
}

var demoAnswers = []map[string]any{
	{"q1": 4, "q2": "Yes", "q3": "Start on time"},
	{"q1": 3, "q2": "Partly", "q3": "Share the agenda earlier"},
	{"q1": 5, "q2": "Yes", "q3": "Nothing, keep it short"},
}

func seed(ctx context.Context, store *repository.Store) error {
	meetingService := meeting.NewMeetingService(store.Meetings)
	teamService := team.NewTeamService(store.Teams)
	questionService := question.NewQuestionService(store.Questions)
	feedbackService := feedback.NewFeedbackService(store.Feedback, nil, nil)
	profileService := profile.NewProfileService(store.Profiles)

	log.Println("👥 Creating team and profiles...")
	if _, err := teamService.CreateTeam(ctx, &entities.Team{Name: "Demo Team", Members: demoParticipants}); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	for _, m := range demoParticipants {
		if _, _, err := profileService.SaveProfile(ctx, m.Email, map[string]any{"name": m.Name, "role": m.Role}); err != nil {
			return fmt.Errorf("failed to save profile %s: %w", m.Email, err)
		}
	}

	log.Printf("📅 Creating %d meeting(s) for %s...", meetingCount, owner)
	stamp := time.Now().UTC()
	for i := 0; i < meetingCount; i++ {
		id := fmt.Sprintf("demo-%d-%d", stamp.Unix(), i+1)
		day := stamp.AddDate(0, 0, -i)

		if _, err := meetingService.CreateMeeting(ctx, meeting.CreateMeetingInput{
			ID:          id,
			CreatedBy:   owner,
			Title:       fmt.Sprintf("Weekly Sync #%d", i+1),
			Date:        day.Format("2006-01-02"),
			Time:        "10:00",
			Description: "Demo meeting",
			MeetingType: "team",
		}); err != nil {
			return fmt.Errorf("failed to create meeting %s: %w", id, err)
		}

		if _, err := questionService.SaveQuestions(ctx, id, owner, demoQuestions); err != nil {
			return fmt.Errorf("failed to save questions for %s: %w", id, err)
		}

		for j, p := range demoParticipants {
			if _, err := feedbackService.SubmitFeedback(ctx, feedback.SubmitFeedbackInput{
				MeetingID: id,
				UserID:    p.Email,
				Responses: demoAnswers[j%len(demoAnswers)],
			}); err != nil {
				return fmt.Errorf("failed to submit feedback for %s: %w", id, err)
			}
		}
		log.Printf("✅ Meeting %s seeded", id)
	}

	log.Println("🎉 Seeding complete")
	return nil
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&owner, "owner", "o", "demo-user", "userId that owns the demo meetings")
	f.IntVarP(&meetingCount, "meetings", "m", 3, "Number of demo meetings")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
