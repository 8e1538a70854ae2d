package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vin0san/mini-twitter/config"
	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/logger"
)

var (
	// Global flags
	envFile string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mini-twitter",
	Short: "mini-twitter - a small social backend",
	Long: `mini-twitter serves accounts, tweets, likes, follows and timelines over a
JSON HTTP API backed by PostgreSQL or SQLite.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to a .env file (defaults to ./.env when present)")
}

// bootstrap loads the configuration, sets up logging and opens the database.
// The returned cleanup closes both.
func bootstrap() (*config.Config, *database.DB, func(), error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, nil, nil, err
	}

	logCloser := logger.InitLogger(cfg.Log)
	db, err := database.New(cfg.Database)
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, nil, err
	}

	cleanup := func() {
		_ = db.Close()
		_ = logCloser.Close()
	}
	return cfg, db, cleanup, nil
}
