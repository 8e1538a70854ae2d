package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/models"
	"github.com/vin0san/mini-twitter/output"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Create or update the tables, constraints and indexes used by the API.

Examples:
  mini-twitter migrate
  mini-twitter migrate --env-file ./deploy/.env`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	cfg, db, cleanup, err := bootstrap()
	if err != nil {
		output.Error("Could not open database: %v", err)
		return err
	}
	defer cleanup()

	output.Section("Migrating schema")
	output.KeyValue("driver", cfg.Database.Driver)
	output.KeyValue("tables", len(models.All()))

	start := time.Now()
	if err := database.Migrate(db); err != nil {
		output.Error("Migration failed: %v", err)
		return err
	}
	output.Success("Schema up to date in %s", time.Since(start).Round(time.Millisecond))
	return nil
}
