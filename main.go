package main

import (
	"portfolio/config"
	"portfolio/database"
	"portfolio/logger"
	"portfolio/mailer"
	"portfolio/notifications"
	"portfolio/routers"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.New(cfg.Env)
	defer log.Sync()

	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	sender, err := mailer.New(cfg)
	if err != nil {
		log.Fatal("Invalid mail configuration", zap.Error(err))
	}
	if sender != nil {
		log.Info("Mail provider configured", zap.String("provider", sender.Name()))
	}

	dispatcher := notifications.NewDispatcher(sender, notifications.NewFormatter(notifications.DefaultLabels()), notifications.Addresses{
		ReviewsFrom:  cfg.MailFromReviews,
		BookingsFrom: cfg.MailFromBookings,
		To:           cfg.NotifyTo,
	}, log)

	app := routers.NewApp(routers.Deps{
		Config:    cfg,
		DB:        db,
		Notifier:  dispatcher,
		Log:       log,
		AccessLog: true,
	})

	log.Info("Server is running", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
