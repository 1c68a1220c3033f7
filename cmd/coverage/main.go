package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/weekend-coverage/internal/boltstore"
	"github.com/diegoclair/weekend-coverage/internal/config"
	"github.com/diegoclair/weekend-coverage/internal/database"
	"github.com/diegoclair/weekend-coverage/internal/domain/contract"
	"github.com/diegoclair/weekend-coverage/internal/domain/service"
	"github.com/diegoclair/weekend-coverage/internal/filestore"
	"github.com/diegoclair/weekend-coverage/internal/handlers"
	"github.com/diegoclair/weekend-coverage/internal/log"
	"github.com/diegoclair/weekend-coverage/internal/mailer"
	"github.com/diegoclair/weekend-coverage/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using the environment")
	}

	cfg := config.Load()
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Timezone, err)
	}

	dm, closeStorage, err := openStorage(cfg, loc)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.StorageDriver, err)
	}
	defer closeStorage()

	smtpMailer := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.GmailUser,
		Password: cfg.GmailAppPassword,
	})
	if !cfg.MailEnabled() {
		log.Warn("GMAIL_USER or GMAIL_APP_PASSWORD not set, emails will be skipped")
	}

	var slackClient contract.SlackClient
	if cfg.SlackEnabled() {
		slackClient = slack.New(cfg.SlackBotToken)
		log.Infof("Slack reminders enabled for channel %s", cfg.SlackChannelID)
	}

	services := service.NewInstance(dm, smtpMailer, slackClient, service.Config{
		AppURL:         cfg.AppURL,
		RecipientEmail: cfg.RecipientEmail,
		HREmail:        cfg.HREmail,
		SlackChannelID: cfg.SlackChannelID,
		Location:       loc,
		ReminderDay:    cfg.ReminderDay,
		ReminderTime:   cfg.ReminderTime,
	})

	services.Scheduler.Start()

	var slackHandler *handlers.SlackHandler
	if cfg.SlashCommandsEnabled() {
		slackHandler = handlers.NewSlackHandler(services.Coverage, cfg.SlackSigningSecret, cfg.AppURL)
	}
	router := handlers.NewRouter(handlers.NewCoverageHandler(services.Coverage, loc), slackHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}

	services.Scheduler.Stop()
	services.Coverage.Wait()

	log.Info("Bye")
}

func openStorage(cfg *config.Config, loc *time.Location) (contract.DataManager, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		log.Infof("Using file storage at %s", cfg.DataFile)
		return filestore.NewInstance(cfg.DataFile, loc), func() error { return nil }, nil

	case config.StorageSQLite:
		db, err := database.New(cfg.DatabasePath)
		if err != nil {
			return nil, nil, err
		}

		log.Info("Running migrations...")
		if err := sqlite.Migrate(db.DB()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Infof("Using sqlite storage at %s", cfg.DatabasePath)

		return database.NewInstance(db), db.Close, nil

	case config.StorageBolt:
		store, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		log.Infof("Using bolt storage at %s", cfg.BoltPath)

		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
