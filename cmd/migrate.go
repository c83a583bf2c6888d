package cmd

import (
	"log"

	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  "Creates or updates the users and tasks tables for the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		database := config.NewDatabaseClient(cfg)

		if err := config.Migrate(database); err != nil {
			return err
		}

		log.Printf("database schema migrated (%s)", cfg.DatabaseDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
