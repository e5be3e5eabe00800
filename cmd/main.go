package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	confirmBookingHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/confirm_booking"
	deleteApplicationHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/delete_application"
	deleteDocumentHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/delete_document"
	getApplicationsHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_applications"
	getBookingDaysHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_booking_days"
	getCentresHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_centres"
	getConfirmationQRHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_confirmation_qr"
	getOptionsHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_options"
	getWizardStateHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/get_wizard_state"
	saveDemographicsHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/save_demographics"
	selectApplicationHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/select_application"
	selectLanguagesHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/select_languages"
	sendOTPHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/send_otp"
	setThemeHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/set_theme"
	transitionWizardHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/transition_wizard"
	updateBookingSelectionHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/update_booking_selection"
	uploadDocumentHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/upload_document"
	verifyOTPHandler "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers/verify_otp"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/config"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/blobstore"
	applicationsRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/applications"
	refdataRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/refdata"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
	applicationsService "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/applications"
	authService "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
	wizardService "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
	confirmBookingUC "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/confirm_booking"
	generateSlotsUC "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/generate_slots"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/logger"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/metrics"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/types"
)

func main() {
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

	log.Info("Starting pre-registration portal...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// In-memory stores: everything lives for the lifetime of the process
	sessionRepository := sessionRepo.NewRepository()
	refdataRepository := refdataRepo.NewRepository()
	applicationsRepository := applicationsRepo.NewRepository(
		refdataRepository.SeedApplications(context.Background()))
	blobStore := blobstore.NewStore()
	log.Info("In-memory stores initialized (seed applications=%d)",
		len(refdataRepository.SeedApplications(context.Background())))

	bookingSettings := wizardService.BookingSettings{
		Sessions: []domain.SessionWindow{
			{
				Session: domain.SessionMorning,
				Start:   mustTime(log, cfg.Booking.MorningStart),
				End:     mustTime(log, cfg.Booking.MorningEnd),
			},
			{
				Session: domain.SessionAfternoon,
				Start:   mustTime(log, cfg.Booking.AfternoonStart),
				End:     mustTime(log, cfg.Booking.AfternoonEnd),
			},
		},
		DurationMinutes: cfg.Booking.SlotDurationMinutes,
		Capacity:        cfg.Booking.SlotCapacity,
		VisibleDays:     cfg.Booking.VisibleDays,
	}

	generateSlotsUseCase := generateSlotsUC.NewUseCase(log)

	wizardSvc := wizardService.NewService(
		sessionRepository,
		refdataRepository,
		blobStore,
		generateSlotsUseCase,
		bookingSettings,
		log,
	)

	authSvc := authService.NewService(
		sessionRepository,
		wizardSvc,
		refdataRepository,
		authService.Settings{
			AcceptedOTP:   cfg.Auth.AcceptedOTP,
			OTPLength:     cfg.Auth.OTPLength,
			ResendSeconds: cfg.Auth.ResendSeconds,
		},
		log,
	)

	applicationsSvc := applicationsService.NewService(applicationsRepository, log)

	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		sessionRepository,
		refdataRepository,
		applicationsRepository,
		log,
	)

	// transitionObserver and bookingObserver stay nil when metrics are off
	var transitionObserver transitionWizardHandler.TransitionObserver
	var bookingObserver confirmBookingHandler.BookingObserver
	if cfg.Metrics.Enabled {
		transitionObserver = metricsCollector
		bookingObserver = metricsCollector
	}

	sendOTP := sendOTPHandler.NewHandler(authSvc, log)
	verifyOTP := verifyOTPHandler.NewHandler(authSvc, log)
	getOptions := getOptionsHandler.NewHandler(refdataRepository, log)
	getCentres := getCentresHandler.NewHandler(refdataRepository, log)
	setTheme := setThemeHandler.NewHandler(authSvc, log)
	getWizardState := getWizardStateHandler.NewHandler(wizardSvc, log)
	transitionWizard := transitionWizardHandler.NewHandler(wizardSvc, transitionObserver, log)
	saveDemographics := saveDemographicsHandler.NewHandler(wizardSvc, log)
	selectLanguages := selectLanguagesHandler.NewHandler(wizardSvc, log)
	uploadDocument := uploadDocumentHandler.NewHandler(wizardSvc, log)
	deleteDocument := deleteDocumentHandler.NewHandler(wizardSvc, log)
	getBookingDays := getBookingDaysHandler.NewHandler(wizardSvc, log)
	updateBookingSelection := updateBookingSelectionHandler.NewHandler(wizardSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, bookingObserver, log)
	getConfirmationQR := getConfirmationQRHandler.NewHandler(confirmBookingUseCase, log)
	getApplications := getApplicationsHandler.NewHandler(applicationsSvc, log)
	selectApplication := selectApplicationHandler.NewHandler(applicationsSvc, log)
	deleteApplication := deleteApplicationHandler.NewHandler(applicationsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: login flow and static reference data
	api.HandleFunc("/auth/otp", sendOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", verifyOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/options", getOptions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/centres", getCentres.Handle).Methods(http.MethodGet)

	// Protected routes: require the X-Session-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/session/theme", setTheme.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/wizard", getWizardState.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/transition", transitionWizard.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/demographics", saveDemographics.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/languages", selectLanguages.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/documents/{key}", uploadDocument.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/documents/{key}", deleteDocument.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/booking", getBookingDays.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/booking/selection", updateBookingSelection.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/confirmation/notify", confirmBooking.HandleNotify).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/confirmation/download", confirmBooking.HandleDownload).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/confirmation/qr", getConfirmationQR.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/applications", getApplications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/applications/{id}/select", selectApplication.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/applications/{id}", deleteApplication.Handle).Methods(http.MethodDelete)

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

func mustTime(log *logger.Logger, value string) types.TimeString {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		log.Fatal("Invalid time in booking config: %q", value)
	}
	return ts
}
