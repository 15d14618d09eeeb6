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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/get_available_slots"
	getBookingStatusHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/get_booking_status"
	getSettingsHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/get_settings"
	listBookingsHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/list_bookings"
	toggleBookingsHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/toggle_bookings"
	updateSettingsHandler "github.com/torridellacqua/TDA-ReservationService/internal/api/handlers/update_settings"
	"github.com/torridellacqua/TDA-ReservationService/internal/api/middleware"
	"github.com/torridellacqua/TDA-ReservationService/internal/config"
	bookingRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/booking"
	settingsRepo "github.com/torridellacqua/TDA-ReservationService/internal/infra/storage/settings"
	"github.com/torridellacqua/TDA-ReservationService/internal/integrations/mailer"
	"github.com/torridellacqua/TDA-ReservationService/internal/schedule"
	admissionService "github.com/torridellacqua/TDA-ReservationService/internal/service/admission"
	bookingsService "github.com/torridellacqua/TDA-ReservationService/internal/service/bookings"
	settingsService "github.com/torridellacqua/TDA-ReservationService/internal/service/settings"
	createBookingUC "github.com/torridellacqua/TDA-ReservationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/torridellacqua/TDA-ReservationService/internal/usecase/get_available_slots"
	"github.com/torridellacqua/TDA-ReservationService/pkg/logger"
	"github.com/torridellacqua/TDA-ReservationService/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TDA-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	if cfg.Auth.ViewPin == "" {
		log.Warn("No view PIN configured, all operator endpoints will reject requests")
	}

	// Initialize metrics (if enabled)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Configure connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Resolve the event cutoff instant
	cutoff, err := cfg.Event.CutoffTime()
	if err != nil {
		log.Fatal("Failed to resolve event cutoff: %v", err)
	}
	log.Info("Reservations accepted until %s", cutoff.Format(time.RFC3339))

	// Initialize repositories
	bookingRepository := bookingRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)

	// Initialize the weekly service calendar
	scheduleEngine := schedule.NewDefaultEngine()

	// Initialize the mail client
	mailClient := mailer.NewClient(mailer.Config{
		Host:              cfg.SMTP.Host,
		Port:              cfg.SMTP.Port,
		Username:          cfg.SMTP.Username,
		Password:          cfg.SMTP.Password,
		From:              cfg.SMTP.From,
		RestaurantName:    cfg.Restaurant.Name,
		RestaurantAddress: cfg.Restaurant.Address,
	}, log)
	if mailClient.Enabled() {
		log.Info("Email notifications enabled (smtp=%s:%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("Email notifications disabled: no SMTP host configured")
	}

	// Initialize services
	admissionSvc := admissionService.NewService(
		settingsRepository,
		admissionService.RealClock{},
		cutoff,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		cfg.Restaurant.NotificationEmail,
		log,
	)

	// Initialize use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleEngine,
		admissionSvc,
		mailClient,
		settingsSvc,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(scheduleEngine, log)

	// Initialize handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookingStatus := getBookingStatusHandler.NewHandler(admissionSvc, log)
	toggleBookings := toggleBookingsHandler.NewHandler(admissionSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Configure router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (no authentication)
	// ============================================================

	// Admission status for the booking form
	api.HandleFunc("/bookings/status", getBookingStatus.Handle).Methods(http.MethodGet)

	// Available time slots for a date
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Reservation submission, rate limited per client IP
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
		api.Handle("/bookings", limiter.Limit(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)
		log.Info("Rate limiting enabled (%d/min, burst %d)", cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
	} else {
		api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	}

	// ============================================================
	// PROTECTED ROUTES (require X-View-Pin header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.ViewPin))

	// Toggle the admission switch
	protected.HandleFunc("/bookings/status", toggleBookings.Handle).Methods(http.MethodPost)

	// Reservation list and removal
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Notification settings
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Create HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
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
