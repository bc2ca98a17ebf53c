package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmSessionHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/confirm_session"
	createPaymentIntentHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/create_payment_intent"
	createReviewHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/create_review"
	createSlotHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/create_slot"
	deactivateSlotHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/deactivate_slot"
	getSessionHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/get_session"
	getStudentSessionsHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/get_student_sessions"
	getTutorReviewsHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/get_tutor_reviews"
	getTutorSessionsHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/get_tutor_sessions"
	getTutorSlotsHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/get_tutor_slots"
	resolveSlotHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/resolve_slot"
	updateSessionStatusHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/update_session_status"
	updateTutorStatusHandler "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/handlers/update_tutor_status"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/api/middleware"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/bookingtoken"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/config"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/hold"
	reviewRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/reviews"
	sessionRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/sessions"
	slotRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/slots"
	studentRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/students"
	tutorRepo "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/infra/storage/tutors"
	meetingsClient "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/meetings"
	paymentsClient "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/integrations/payments"
	availabilityService "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/availability"
	reviewsService "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/reviews"
	sessionsService "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/sessions"
	tutorsService "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/service/tutors"
	confirmSessionUC "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/confirm_session"
	createPaymentIntentUC "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/create_payment_intent"
	resolveSlotUC "github.com/diegroshe7-gif/EDUKT-OFICIAL2/internal/usecase/resolve_slot"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/dbmetrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/logger"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/metrics"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/simpletxmanager"
	"github.com/diegroshe7-gif/EDUKT-OFICIAL2/pkg/txmanager"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting EDUKT booking service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set migration dialect: %v", err)
	}
	if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied from %s", cfg.Database.MigrationsDir)

	// Reservation holds are an optimization; the service runs without Redis
	var reservationHold *hold.ReservationHold
	if cfg.Redis.Addr != "" {
		reservationHold, err = hold.New(cfg.Redis.Addr)
		if err != nil {
			log.Warn("Reservation holds disabled: %v", err)
			reservationHold = nil
		} else {
			defer reservationHold.Close()
			log.Info("Reservation holds enabled (redis=%s, ttl=%dm)", cfg.Redis.Addr, cfg.Redis.HoldTTLMinutes)
		}
	}

	gateway := paymentsClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.APIKey,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	credentials := meetingsClient.NewConnectorCredentials(
		cfg.Meetings.ConnectorURL,
		cfg.Meetings.IdentityToken,
		time.Duration(cfg.Meetings.Timeout)*time.Second,
	)
	scheduler := meetingsClient.NewClient(
		cfg.Meetings.URL,
		credentials,
		time.Duration(cfg.Meetings.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (gateway=%s, meetings=%s)",
		cfg.PaymentGateway.URL, cfg.Meetings.URL)

	tokens := bookingtoken.New(cfg.Booking.TokenSecret)

	var (
		sessionRepository *sessionRepo.Repository
		slotRepository    *slotRepo.Repository
		tutorRepository   *tutorRepo.Repository
		studentRepository *studentRepo.Repository
		reviewRepository  *reviewRepo.Repository
		txMgr             sessionsService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		tutorRepository = tutorRepo.NewRepository(wrappedDB)
		studentRepository = studentRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		sessionRepository = sessionRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		tutorRepository = tutorRepo.NewRepository(db)
		studentRepository = studentRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	timeProvider := &resolveSlotUC.RealTimeProvider{}

	sessionSvc := sessionsService.NewService(sessionRepository, txMgr, log)
	availabilitySvc := availabilityService.NewService(slotRepository, tutorRepository, log)
	tutorSvc := tutorsService.NewService(tutorRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, sessionRepository, log)

	resolveSlotUseCase, err := resolveSlotUC.New(slotRepository, timeProvider, log)
	if err != nil {
		log.Fatal("Failed to initialize resolve slot use case: %v", err)
	}

	var intentHolds createPaymentIntentUC.HoldStore
	var confirmHolds confirmSessionUC.HoldStore
	if reservationHold != nil {
		intentHolds = reservationHold
		confirmHolds = reservationHold
	}

	createPaymentIntentUseCase, err := createPaymentIntentUC.New(
		slotRepository,
		tutorRepository,
		gateway,
		tokens,
		intentHolds,
		timeProvider,
		cfg.Booking.Currency,
		time.Duration(cfg.Redis.HoldTTLMinutes)*time.Minute,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize payment intent use case: %v", err)
	}

	confirmSessionUseCase, err := confirmSessionUC.New(
		sessionRepository,
		tutorRepository,
		studentRepository,
		gateway,
		tokens,
		scheduler,
		confirmHolds,
		timeProvider,
		time.Duration(cfg.Meetings.NotifyTimeout)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize confirm session use case: %v", err)
	}

	resolveSlot := resolveSlotHandler.NewHandler(resolveSlotUseCase, log)
	createPaymentIntent := createPaymentIntentHandler.NewHandler(createPaymentIntentUseCase, log)
	confirmSession := confirmSessionHandler.NewHandler(confirmSessionUseCase, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	getStudentSessions := getStudentSessionsHandler.NewHandler(sessionSvc, log)
	getTutorSessions := getTutorSessionsHandler.NewHandler(sessionSvc, log)
	updateSessionStatus := updateSessionStatusHandler.NewHandler(sessionSvc, log)
	createSlot := createSlotHandler.NewHandler(availabilitySvc, log)
	deactivateSlot := deactivateSlotHandler.NewHandler(availabilitySvc, log)
	getTutorSlots := getTutorSlotsHandler.NewHandler(availabilitySvc, log)
	updateTutorStatus := updateTutorStatusHandler.NewHandler(tutorSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getTutorReviews := getTutorReviewsHandler.NewHandler(reviewSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/booking/resolve", resolveSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/tutors/{tutorId}/slots", getTutorSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tutors/{tutorId}/reviews", getTutorReviews.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/deactivate", deactivateSlot.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/payments/intent", createPaymentIntent.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking/confirm", confirmSession.Handle).Methods(http.MethodPost)

	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/status", updateSessionStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/students/{studentId}/sessions", getStudentSessions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/tutors/{tutorId}/sessions", getTutorSessions.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/tutors/{tutorId}/status", updateTutorStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
