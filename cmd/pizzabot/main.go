package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/adp-pizza/pizzabot/internal/command"
	"github.com/adp-pizza/pizzabot/internal/dispatch"
	"github.com/adp-pizza/pizzabot/internal/session"
	"github.com/adp-pizza/pizzabot/internal/storage"
	"github.com/adp-pizza/pizzabot/internal/telegram"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// config is populated from BOT_* environment variables, optionally loaded
// from a .env file first.
type config struct {
	Token       string `envconfig:"TOKEN" required:"true"`
	DBPath      string `envconfig:"DB_PATH" default:"pizzabot.db"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	PollTimeout int    `envconfig:"POLL_TIMEOUT" default:"30"`
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("pizzabot\n")
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Build Time: %s\n", buildTime)
		fmt.Printf("Build Mode: %s\n", storage.BuildMode)
		fmt.Printf("SQLite Driver: %s\n", storage.DriverName)
		os.Exit(0)
	}

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg config
	if err := envconfig.Process("bot", &cfg); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	log := logger.WithField("version", version)

	if err := run(cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("bot stopped")
	}
	log.Info("bot stopped")
}

func run(cfg config, log *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("failed to close storage")
		}
	}()
	log.WithFields(logrus.Fields{
		"db_path": cfg.DBPath,
		"driver":  storage.DriverName,
	}).Info("storage ready")

	bot, err := telegram.NewBot(cfg.Token, cfg.PollTimeout, log.WithField("component", "bot"))
	if err != nil {
		return fmt.Errorf("start telegram bot: %w", err)
	}

	registry := command.NewRegistry(command.Deps{
		Menu:     store,
		Cart:     store,
		Users:    store,
		Orders:   store,
		Sessions: session.NewStore(),
		Msg:      bot,
		Log:      log.WithField("component", "command"),
	})
	bot.SetDispatcher(dispatch.NewDispatcher(registry, log.WithField("component", "dispatch")))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("polling for updates")
		return bot.Run(ctx)
	})
	return g.Wait()
}
