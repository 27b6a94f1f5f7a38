package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"notes-client/config"
	"notes-client/internal/note"
	"notes-client/internal/note/delivery/cli"
	"notes-client/internal/note/repository/rest"
	"notes-client/internal/note/usecase"
	"notes-client/internal/session"
	"notes-client/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewRootCmd(setup))
	stop()
	os.Exit(code)
}

// setup wires the notes use case from config and global flags.
func setup(ctx context.Context, opts cli.Options) (note.UseCase, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.APIURL != "" {
		cfg.API.BaseURL = strings.TrimRight(opts.APIURL, "/")
	}

	// The terminal presenter reports failures; logs are for --verbose.
	logger := log.NewNop()
	if opts.Verbose {
		logger = log.Init(log.ZapConfig{
			Level:        "debug",
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	store, closeStore, err := session.OpenStore(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}

	sess := session.New(logger, store, cfg.Session.Key)
	if err := sess.Load(ctx); err != nil {
		logger.Warnf(ctx, "Could not restore session: %v", err)
	}

	policy := note.PolicyStrict
	if opts.Lenient || !cfg.Policy.Strict {
		policy = note.PolicyLenient
	}

	client := rest.NewClient(cfg.API.BaseURL, sess, logger, rest.WithTimeout(cfg.API.Timeout))
	cleanup := func() {
		if err := closeStore(); err != nil {
			logger.Warnf(ctx, "close session store: %v", err)
		}
	}
	return usecase.New(logger, client, sess, policy), cleanup, nil
}
