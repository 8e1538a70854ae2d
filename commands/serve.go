package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vin0san/mini-twitter/auth"
	"github.com/vin0san/mini-twitter/database"
	"github.com/vin0san/mini-twitter/handlers"
	"github.com/vin0san/mini-twitter/output"
	"github.com/vin0san/mini-twitter/repositories"
	"github.com/vin0san/mini-twitter/routes"
	"github.com/vin0san/mini-twitter/services"
)

const shutdownTimeout = 10 * time.Second

var (
	// Serve flags
	port string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Migrate the database and serve the HTTP API until interrupted.

Examples:
  mini-twitter serve
  mini-twitter serve --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&port, "port", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(ctx context.Context) error {
	cfg, db, cleanup, err := bootstrap()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	svc := services.New(repositories.NewStore(db.DB), tokens)
	router := routes.SetupRoutes(routes.Handlers{
		Users:  handlers.NewUserHandler(svc.Accounts),
		Tweets: handlers.NewTweetHandler(svc.Tweets, svc.Feed),
		Social: handlers.NewSocialHandler(svc.Social),
		System: handlers.NewSystemHandler(db),
	}, tokens)

	addr := ":" + cfg.Port
	if port != "" {
		addr = ":" + port
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"addr": addr, "driver": cfg.Database.Driver}).Info("Server running")
		output.Success("Listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	output.Info("Shutting down, waiting up to %s for open requests", shutdownTimeout)
	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logrus.Info("Server stopped")
	return nil
}
