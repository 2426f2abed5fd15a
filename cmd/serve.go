package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/amrtaher/portfolio/internal/analytics"
	"github.com/amrtaher/portfolio/internal/config"
	"github.com/amrtaher/portfolio/internal/content"
	"github.com/amrtaher/portfolio/internal/server"
	"github.com/amrtaher/portfolio/internal/session"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio site",
	Long:  `Serves the portfolio over HTTP until interrupted. Configuration comes from the environment and an optional .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := serveConfig(cmd.Flags().Changed("port"), servePort)
		if err != nil {
			return err
		}
		gin.SetMode(cfg.GinMode)

		store, err := content.Open(cfg.ContentPath)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}
		for _, w := range store.Lint() {
			log.Printf("Content warning: %s", w)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sessions := session.NewStore(server.Blueprint(store), cfg.SessionTTL, cfg.SessionMax)
		go sessions.Run(ctx, cfg.SessionSweepInterval)

		var tracker server.VisitTracker
		if cfg.AnalyticsEnabled {
			t, err := analytics.Open(cfg.AnalyticsDB)
			if err != nil {
				return fmt.Errorf("opening analytics: %w", err)
			}
			defer t.Close()
			if n, err := t.Cleanup(ctx, cfg.AnalyticsRetention); err != nil {
				log.Printf("Error cleaning up old visits: %v", err)
			} else if n > 0 {
				log.Printf("Removed %d visits older than %s", n, cfg.AnalyticsRetention)
			}
			tracker = t
		}

		srv, err := server.New(server.Config{
			Addr:       cfg.Addr(),
			ImagesDir:  cfg.ImagesDir,
			AdminToken: cfg.AdminToken,
		}, store, sessions, tracker)
		if err != nil {
			return fmt.Errorf("building server: %w", err)
		}

		go func() {
			<-ctx.Done()
			log.Println("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error shutting down: %v", err)
			}
		}()

		return srv.Start()
	},
}

// serveConfig loads the environment config and applies the --port flag
// when it was given.
func serveConfig(portSet bool, port int) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !portSet {
		return cfg, nil
	}
	cfg.Port = port
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("--port: %w", err)
	}
	return cfg, nil
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}
