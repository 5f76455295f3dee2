package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/ayonpaul8906/trustbridge-new/internal/auth"
	"github.com/ayonpaul8906/trustbridge-new/internal/config"
	"github.com/ayonpaul8906/trustbridge-new/internal/gateway"
	"github.com/ayonpaul8906/trustbridge-new/internal/handler"
	"github.com/ayonpaul8906/trustbridge-new/internal/logging"
	"github.com/ayonpaul8906/trustbridge-new/internal/repository"
	"github.com/ayonpaul8906/trustbridge-new/internal/scoring"
	"github.com/ayonpaul8906/trustbridge-new/internal/service"
	"github.com/ayonpaul8906/trustbridge-new/pkg/response"
)

func main() {
	// Load environment variables from .env
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging)

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize external collaborators
	ctx := context.Background()
	objectStorage, err := gateway.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	extractor := gateway.NewDocumentExtractor(cfg.Extractor)
	comparator := gateway.NewBiometricComparator(cfg.Comparator)
	mailer := gateway.NewMailer(cfg.SMTP)
	verifier := auth.NewTokenVerifier(cfg.Auth)

	// Initialize repositories
	loanRepo := repository.NewLoanRepository(db)
	userRepo := repository.NewUserRepository(db)
	govRepo := repository.NewGovRecordRepository(db)
	lenderRepo := repository.NewLenderRepository(db, loanRepo)

	// Initialize services
	loanService := service.NewLoanService(loanRepo, userRepo, mailer, cfg, logger)
	userService := service.NewUserService(userRepo, redisClient, cfg, logger)
	aggregator := scoring.NewAggregator(userRepo, userService)
	verificationService := service.NewVerificationService(userRepo, govRepo, extractor, comparator, objectStorage, aggregator, cfg, logger)
	otpService := service.NewOTPService(redisClient, mailer, cfg)
	lenderService := service.NewLenderService(lenderRepo)

	// Initialize handlers
	loanHandler := handler.NewLoanHandler(loanService)
	userHandler := handler.NewUserHandler(userService, verifier)
	verificationHandler := handler.NewVerificationHandler(verificationService)
	otpHandler := handler.NewOTPHandler(otpService)
	lenderHandler := handler.NewLenderHandler(lenderService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Setup routes
	router := setupRoutes(loanHandler, userHandler, verificationHandler, otpHandler, lenderHandler, healthHandler, verifier)

	// Start server
	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	loanHandler *handler.LoanHandler,
	userHandler *handler.UserHandler,
	verificationHandler *handler.VerificationHandler,
	otpHandler *handler.OTPHandler,
	lenderHandler *handler.LenderHandler,
	healthHandler *handler.HealthHandler,
	verifier *auth.TokenVerifier,
) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware, response.LoggingMiddleware)

	// Health check
	router.HandleFunc("/", home).Methods("GET")
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// Auth and user routes
	router.HandleFunc("/auth/verify", userHandler.VerifyToken).Methods("POST")
	router.HandleFunc("/user/profile/{uid}", userHandler.GetProfile).Methods("GET")
	router.HandleFunc("/user/profile/{uid}", userHandler.UpdateProfile).Methods("POST")
	router.HandleFunc("/user/trust-score/{uid}", userHandler.GetTrustScore).Methods("GET")

	// Loan routes
	router.HandleFunc("/loan/request", loanHandler.CreateLoan).Methods("POST")
	router.HandleFunc("/loan/user/{uid}", loanHandler.ListUserLoans).Methods("GET")
	router.HandleFunc("/loan/status/{uid}/{loanId}", loanHandler.LoanStatus).Methods("GET")
	router.HandleFunc("/loan/decision/{uid}/{loanId}", loanHandler.Decide).Methods("POST")

	// Lender routes require a bearer token
	lender := router.PathPrefix("/lender").Subrouter()
	lender.Use(verifier.Middleware)
	lender.HandleFunc("/register", lenderHandler.Register).Methods("POST")
	lender.HandleFunc("/offer", lenderHandler.PostOffer).Methods("POST")
	lender.HandleFunc("/offers/{uid}", lenderHandler.ListOffers).Methods("GET")
	lender.HandleFunc("/borrowers", lenderHandler.ListBorrowers).Methods("GET")

	// Verification routes
	router.HandleFunc("/face/verify", verificationHandler.VerifyFace).Methods("POST")
	router.HandleFunc("/vision/first-trustscore", verificationHandler.VerifyIdentity).Methods("POST")
	router.HandleFunc("/vision/financial-trustscore", verificationHandler.VerifyFinancial).Methods("POST")

	// OTP routes
	router.HandleFunc("/send-otp", otpHandler.Send).Methods("POST")
	router.HandleFunc("/verify-otp", otpHandler.Verify).Methods("POST")

	return router
}

func home(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"message": "TrustBridge Backend Running"})
}
