package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
	"github.com/Ananth-NQI/scam-honeypot/internal/jobs"
	"github.com/Ananth-NQI/scam-honeypot/internal/routes"
	"github.com/Ananth-NQI/scam-honeypot/internal/services"
	"github.com/Ananth-NQI/scam-honeypot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Auth.UsingDefault {
		log.Println("⚠️  API_KEY not set - using the built-in default key (not for production!)")
	}

	// Sessions are kept for the lifetime of the process; there is no eviction.
	store := storage.NewMemoryStore()
	log.Println("⚠️  Using in-memory session storage (no persistence, no eviction)")

	// Report delivery
	var notifiers []services.Notifier
	if cfg.Callback.URL != "" {
		notifiers = append(notifiers, services.NewCallbackNotifier(cfg.Callback.URL, cfg.Callback.Timeout))
		log.Printf("✅ Callback reporting to %s", cfg.Callback.URL)
	} else {
		log.Println("⚠️  CALLBACK_URL empty - callback reporting disabled")
	}

	if cfg.Twilio.Enabled() {
		twilioService, err := services.NewTwilioService(cfg.Twilio)
		if err != nil {
			log.Fatal("Failed to initialize Twilio service:", err)
		}
		notifiers = append(notifiers, services.NewOperatorAlert(twilioService, cfg.Twilio.OperatorTo))
		log.Println("✅ Twilio operator alerts enabled")
	}

	var reports services.ReportSink
	var notificationJob *jobs.NotificationJob
	if len(notifiers) > 0 {
		notificationJob = jobs.NewNotificationJob(notifiers, cfg.Callback.QueueSize, cfg.Callback.Workers, cfg.Callback.Timeout)
		notificationJob.Start()
		reports = notificationJob
	}

	honeypot := services.NewHoneypotService(
		store,
		services.NewScamClassifier(cfg.Rules.Keywords),
		services.NewReplySelector(cfg.Rules.Replies, cfg.Rules.NeutralReply, nil),
		reports,
		cfg.Rules.AgentNotes,
	)

	app := routes.NewApp()
	routes.SetupRoutes(app, cfg.Auth, store, honeypot)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		log.Println("⏹️  Shutting down server...")
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 Scam Honeypot starting on port %s", cfg.Port)
	log.Printf("🔑 Auth: %s header %q", cfg.Auth.Scheme, cfg.Auth.Header)
	log.Printf("📋 Keywords: %d, replies: %d", len(cfg.Rules.Keywords), len(cfg.Rules.Replies))
	log.Println("========================================")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}

	if notificationJob != nil {
		log.Println("⏹️  Flushing pending reports...")
		notificationJob.Stop()
	}
}
