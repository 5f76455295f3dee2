package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/gateway"
	"github.com/ayonpaul8906/trustbridge-new/internal/logging"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
)

func main() {
	log.Println("Starting escrow scheduler...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging)

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	loanRepo := repository.NewLoanRepository(db)
	userRepo := repository.NewUserRepository(db)
	mailer := gateway.NewMailer(cfg.SMTP)
	loanService := service.NewLoanService(loanRepo, userRepo, mailer, cfg, logger)

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		log.Fatalf("Invalid scheduler timezone: %v", err)
	}

	// Initialize cron scheduler
	c := cron.New(cron.WithSeconds(), cron.WithLocation(location))

	// Daily job to release escrowed documents for loans past due (runs at midnight)
	_, err = c.AddFunc("0 0 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		released, err := loanService.ReleaseSweep(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("release sweep failed", "error", err)
			return
		}
		logger.Info("release sweep finished", "released", released)
	})
	if err != nil {
		log.Printf("Error scheduling release sweep job: %v", err)
	}

	// Weekly job to send payment reminders (runs on Sundays at 9 AM)
	_, err = c.AddFunc("0 0 9 * * SUN", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		sent, err := loanService.SendPaymentReminders(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("payment reminders failed", "error", err)
			return
		}
		logger.Info("payment reminders finished", "sent", sent)
	})
	if err != nil {
		log.Printf("Error scheduling payment reminder job: %v", err)
	}

	// Start the scheduler
	c.Start()
	log.Println("Scheduler started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down scheduler...")
	c.Stop()
	log.Println("Scheduler stopped")
}
