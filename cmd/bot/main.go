package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"

	"github.com/aideadlines/slack-deadline-bot/internal/config"
	"github.com/aideadlines/slack-deadline-bot/internal/database"
	"github.com/aideadlines/slack-deadline-bot/internal/dispatch"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
	"github.com/aideadlines/slack-deadline-bot/internal/domain/service"
	"github.com/aideadlines/slack-deadline-bot/internal/feed"
	"github.com/aideadlines/slack-deadline-bot/internal/handlers"
	"github.com/aideadlines/slack-deadline-bot/internal/ics"
	"github.com/aideadlines/slack-deadline-bot/internal/scheduler"
	"github.com/aideadlines/slack-deadline-bot/migrator/sqlite"
)

// feedSource is what the app needs from a conference feed: queries plus a
// forced re-fetch ahead of each notification cycle.
type feedSource interface {
	contract.ConferenceProvider
	scheduler.FeedRefresher
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	provider, err := newFeedSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure conference feed")
	}

	slackClient := slack.New(cfg.SlackBotToken)
	dispatcher := dispatch.NewSlack(slackClient)

	services := service.NewInstance(database.NewInstance(db), provider, dispatcher, service.NotifierOptions{
		Concurrency: cfg.NotifyConcurrency,
		RatePerSec:  cfg.NotifyRatePerSec,
	})

	sched, err := scheduler.New(services.Notifier, provider, cfg.NotifyCron)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure scheduler")
	}
	sched.Start()
	defer sched.Stop()

	handler := handlers.New(services.Conference, services.Policy, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.Handle("/calendar.ics", ics.NewHandler(provider))
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func newFeedSource(cfg *config.Config) (feedSource, error) {
	switch {
	case cfg.ConferencesURL != "":
		return feed.NewProvider(cfg.ConferencesURL, cfg.FeedCacheTTL), nil
	case cfg.ConferencesPath != "":
		return feed.NewFileProvider(cfg.ConferencesPath), nil
	default:
		return nil, fmt.Errorf("set CONFERENCES_URL or CONFERENCES_PATH")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
