package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/smith3v/tg-word-drill/pkg/bot/drill"
	"github.com/smith3v/tg-word-drill/pkg/bot/handlers"
	"github.com/smith3v/tg-word-drill/pkg/bot/importexport"
	"github.com/smith3v/tg-word-drill/pkg/bot/maintenance"
	"github.com/smith3v/tg-word-drill/pkg/config"
	"github.com/smith3v/tg-word-drill/pkg/db"
	"github.com/smith3v/tg-word-drill/pkg/health"
	"github.com/smith3v/tg-word-drill/pkg/logger"
	"github.com/smith3v/tg-word-drill/pkg/vocab"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	if err := config.LoadConfig(*configPath); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.AppConfig
	if err := logger.Configure(logger.Options{
		Level:  cfg.Logging.Level,
		File:   cfg.Logging.File,
		Format: cfg.Logging.Format,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	if err := db.InitDB(cfg.Database); err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	words := vocab.NewService(db.DB)
	if _, err := words.SeedDefaults(ctx); err != nil {
		logger.Error("failed to seed default words", "error", err)
		os.Exit(1)
	}
	if path := strings.TrimSpace(cfg.Catalog.SeedFile); path != "" {
		if _, err := importexport.SeedFromFile(ctx, words, path); err != nil {
			logger.Error("failed to seed words from file", "path", path, "error", err)
			os.Exit(1)
		}
	}

	sessions := drill.NewStore(cfg.Session.TTL(), drill.WithPersistence(db.DB))
	activity := handlers.NewActivityTracker(words)
	h := handlers.New(words, sessions)

	b, err := bot.New(cfg.Telegram.Token,
		bot.WithDefaultHandler(h.DefaultHandler),
		bot.WithMiddlewares(handlers.ActivityMiddleware(activity)),
	)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}
	h.Register(b)

	jobs := maintenance.New(sessions, activity)
	if err := jobs.Start(ctx); err != nil {
		logger.Error("failed to start maintenance jobs", "error", err)
		os.Exit(1)
	}

	if addr := strings.TrimSpace(cfg.HTTP.Addr); addr != "" {
		sqlDB, err := db.DB.DB()
		if err != nil {
			logger.Error("failed to access database handle", "error", err)
			os.Exit(1)
		}
		go func() {
			if err := health.Serve(ctx, addr, health.NewRouter(sqlDB)); err != nil {
				logger.Error("health server stopped", "error", err)
			}
		}()
	}

	logger.Info("Starting bot...")
	b.Start(ctx)
	jobs.Stop(context.Background())
	logger.Info("bot stopped")
}
