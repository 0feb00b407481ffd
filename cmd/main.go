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

	"github.com/go-redis/redis/v8"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkoutResultHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/checkout_result"
	getBookingHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/get_booking"
	getNoticesHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/get_notices"
	getReservationFormHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/get_reservation_form"
	resetRangeHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/reset_reservation_range"
	setRangeHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/set_reservation_range"
	submitReservationHandler "github.com/m04kA/SMC-CabinReservationService/internal/api/handlers/submit_reservation"
	"github.com/m04kA/SMC-CabinReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-CabinReservationService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/booking"
	cabinRepo "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/cabin"
	selectionStore "github.com/m04kA/SMC-CabinReservationService/internal/infra/storage/selection"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/checkout"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/razorpay"
	"github.com/m04kA/SMC-CabinReservationService/internal/integrations/stripepay"
	bookingsService "github.com/m04kA/SMC-CabinReservationService/internal/service/bookings"
	noticesService "github.com/m04kA/SMC-CabinReservationService/internal/service/notices"
	selectionService "github.com/m04kA/SMC-CabinReservationService/internal/service/selection"
	getReservationFormUC "github.com/m04kA/SMC-CabinReservationService/internal/usecase/get_reservation_form"
	submitReservationUC "github.com/m04kA/SMC-CabinReservationService/internal/usecase/submit_reservation"
	"github.com/m04kA/SMC-CabinReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CabinReservationService/pkg/logger"
	"github.com/m04kA/SMC-CabinReservationService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CabinReservationService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики собираются всегда; наружу отдаются только при metrics.enabled
	var registerer prometheus.Registerer = prometheus.NewRegistry()
	if cfg.Metrics.Enabled {
		registerer = prometheus.DefaultRegisterer
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}
	metricsCollector := metrics.NewWithRegistry(cfg.Metrics.ServiceName, registerer)

	// Подключаемся к базе данных
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, metricsCollector, cfg.Database.DBName, registerer)
		log.Info("Database metrics collection started")
	}

	// Хранилище выбранных дат
	var rangeStore selectionService.RangeStore
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			cancelPing()
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancelPing()

		rangeStore = selectionStore.NewRedisStore(redisClient)
		log.Info("Date ranges stored in redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	} else {
		rangeStore = selectionStore.NewMemoryStore()
		log.Warn("Redis disabled, date ranges kept in process memory")
	}

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(executor)
	cabinRepository := cabinRepo.NewRepository(executor)

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	selectionSvc := selectionService.NewService(rangeStore, cfg.Redis.RangeTTLDuration(), log)
	noticeSvc := noticesService.NewService(noticesService.DefaultLimit, log)

	// Платежный провайдер
	var provider checkout.Provider
	switch cfg.Payment.Provider {
	case config.ProviderStripe:
		provider = stripepay.NewClient(cfg.Payment.Stripe.SecretKey, log)
	default:
		provider = razorpay.NewClient(
			cfg.Payment.Razorpay.BaseURL,
			cfg.Payment.Razorpay.KeyID,
			cfg.Payment.Razorpay.KeySecret,
			time.Duration(cfg.Payment.Razorpay.Timeout)*time.Second,
			log,
		)
	}
	checkoutHub := checkout.NewHub(
		provider,
		noticeSvc,
		metricsCollector.CheckoutsPending,
		cfg.Payment.CheckoutTimeoutDuration(),
		log,
	)
	log.Info("Payment provider %s initialized (checkout timeout=%s)",
		provider.Name(), cfg.Payment.CheckoutTimeoutDuration())

	// Use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		cabinRepository,
		selectionSvc,
		bookingSvc,
		checkoutHub,
		noticeSvc,
		metricsCollector,
		submitReservationUC.Settings{
			MerchantKey:      cfg.Payment.MerchantKey(),
			Currency:         cfg.Payment.Currency,
			DisplayName:      cfg.Payment.DisplayName,
			ConfirmationPath: cfg.Payment.ConfirmationPath,
		},
		log,
	)
	getReservationFormUseCase := getReservationFormUC.NewUseCase(cabinRepository, selectionSvc, log)

	// Фоновые онлайн-оплаты отменяются при остановке сервера
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Handlers
	submitReservation := submitReservationHandler.NewHandler(submitReservationUseCase, appCtx, log)
	getReservationForm := getReservationFormHandler.NewHandler(getReservationFormUseCase, log)
	setRange := setRangeHandler.NewHandler(selectionSvc, log)
	resetRange := resetRangeHandler.NewHandler(selectionSvc, log)
	checkoutResult := checkoutResultHandler.NewHandler(checkoutHub, log)
	getNotices := getNoticesHandler.NewHandler(noticeSvc)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Форма бронирования ---
	api.HandleFunc("/cabins/{cabinId}/reservation-form", getReservationForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservation/range", setRange.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservation/range", resetRange.Handle).Methods(http.MethodDelete)

	// --- Отправка формы и оплата (с ограничением частоты) ---
	submit := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		submit.Use(limiter.Middleware)
		log.Info("Rate limit enabled: %d req/min, burst %d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}
	submit.HandleFunc("/cabins/{cabinId}/reservations", submitReservation.Handle).Methods(http.MethodPost)
	submit.HandleFunc("/checkouts/{orderId}/result", checkoutResult.Handle).Methods(http.MethodPost)

	// --- Уведомления и подтверждение ---
	api.HandleFunc("/notices", getNotices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderUserID, middleware.HeaderUserName, middleware.HeaderUserEmail, middleware.HeaderUserImage}),
		)(r)
		log.Info("CORS enabled for %v", cfg.CORS.AllowedOrigins)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Незавершенные оплаты прерываются, пользователи получают уведомление об ошибке
	if pending := checkoutHub.Pending(); pending > 0 {
		log.Warn("Aborting %d pending checkouts", pending)
	}
	stopApp()
	submitReservation.Wait()

	log.Info("Server stopped gracefully")
}
