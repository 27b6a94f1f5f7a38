package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"notes-client/config"
	"notes-client/internal/httpserver"
	"notes-client/internal/middleware"
	"notes-client/internal/note"
	webDelivery "notes-client/internal/note/delivery/web"
	"notes-client/internal/note/repository/rest"
	"notes-client/internal/note/usecase"
	"notes-client/internal/session"
	"notes-client/internal/view"
	"notes-client/pkg/log"
)

func main() {
	var configPath string
	cmd := &cobra.Command{
		Use:          "notes-web",
		Short:        "Web frontend for the notes service",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the config file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath string) error {
	// 1. Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting notes web frontend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "API URL: %s", cfg.API.BaseURL)

	// 3. Session
	store, closeStore, err := session.OpenStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer closeStore()

	sess := session.New(logger, store, cfg.Session.Key)
	if err := sess.Load(ctx); err != nil {
		logger.Warnf(ctx, "Could not restore session, starting signed out: %v", err)
	}
	if cfg.Session.Watch {
		if err := sess.Watch(ctx); err != nil {
			logger.Warnf(ctx, "Session watch disabled: %v", err)
		}
	}

	// 4. Notes domain
	client := rest.NewClient(cfg.API.BaseURL, sess, logger, rest.WithTimeout(cfg.API.Timeout))
	policy := note.PolicyStrict
	if !cfg.Policy.Strict {
		policy = note.PolicyLenient
	}
	logger.Infof(ctx, "Failure policy: %s", policy)
	uc := usecase.New(logger, client, sess, policy)

	tmpl, err := view.Templates()
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Host:         cfg.HTTPServer.Host,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.New(logger, cfg.Web.RateLimitPerMin),
		NotesHandler: webDelivery.New(logger, uc, sess, tmpl, cfg.Web.FlashTTL),
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
