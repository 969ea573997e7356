// Command migrate manages the PostgreSQL schema with the embedded sql-migrate migrations.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-feedback/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-feedback/pkg/config"
)

var steps int

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL schema",
	Long: `Applies or rolls back the SQL migrations embedded in the binary.
Only needed when STORE_DRIVER=postgres; MongoDB indexes are created by the API at startup.`,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			log.Println("🔄 Applying migrations...")
			n, err := database.MigrateUp(db)
			if err != nil {
				return err
			}
			log.Printf("✅ Successfully applied %d migration(s)!\n", n)
			return nil
		})
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if steps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		return withDB(func(db *gorm.DB) error {
			log.Printf("🔄 Rolling back %d migration(s)...", steps)
			n, err := database.MigrateDown(db, steps)
			if err != nil {
				return err
			}
			log.Printf("✅ Rolled back %d migration(s)", n)
			return nil
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *gorm.DB) error {
			states, err := database.MigrationStatus(db)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, st := range states {
				applied := "pending"
				if st.AppliedAt != nil {
					applied = st.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(out, "%-28s %s\n", st.ID, applied)
			}
			return nil
		})
	},
}

func withDB(fn func(db *gorm.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	return fn(db)
}

func init() {
	downCmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")
	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
