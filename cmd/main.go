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

	bookAppointmentsHandler "github.com/civicreg/booking-service/internal/api/handlers/book_appointments"
	cancelAppointmentHandler "github.com/civicreg/booking-service/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/civicreg/booking-service/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/civicreg/booking-service/internal/api/handlers/get_availability"
	getBookedIDsHandler "github.com/civicreg/booking-service/internal/api/handlers/get_booked_ids"
	syncAvailabilityHandler "github.com/civicreg/booking-service/internal/api/handlers/sync_availability"
	"github.com/civicreg/booking-service/internal/api/middleware"
	"github.com/civicreg/booking-service/internal/config"
	availabilityRepo "github.com/civicreg/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/civicreg/booking-service/internal/infra/storage/booking"
	masterdataClient "github.com/civicreg/booking-service/internal/integrations/masterdata"
	statusServiceClient "github.com/civicreg/booking-service/internal/integrations/statusservice"
	appointmentsService "github.com/civicreg/booking-service/internal/service/appointments"
	bookAppointmentUC "github.com/civicreg/booking-service/internal/usecase/book_appointment"
	cancelAppointmentUC "github.com/civicreg/booking-service/internal/usecase/cancel_appointment"
	getAvailabilityUC "github.com/civicreg/booking-service/internal/usecase/get_availability"
	syncAvailabilityUC "github.com/civicreg/booking-service/internal/usecase/sync_availability"
	"github.com/civicreg/booking-service/pkg/dbmetrics"
	"github.com/civicreg/booking-service/pkg/idgen"
	"github.com/civicreg/booking-service/pkg/logger"
	"github.com/civicreg/booking-service/pkg/metrics"
	"github.com/civicreg/booking-service/pkg/simpletxmanager"
	"github.com/civicreg/booking-service/pkg/slotlock"
	"github.com/civicreg/booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting appointment booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	statusClient := statusServiceClient.NewClient(
		cfg.StatusService.URL,
		time.Duration(cfg.StatusService.Timeout)*time.Second,
		log,
	)
	masterdata := masterdataClient.NewClient(
		cfg.MasterdataService.URL,
		time.Duration(cfg.MasterdataService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StatusService=%s timeout=%ds, MasterdataService=%s timeout=%ds)",
		cfg.StatusService.URL, cfg.StatusService.Timeout, cfg.MasterdataService.URL, cfg.MasterdataService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Взаимное исключение по слотам внутри процесса
	slotGuard := slotlock.NewGuard()
	idGenerator := idgen.New()

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		statusClient,
		slotGuard,
		txMgr,
		idGenerator,
		log,
	)

	// Отмена старого бронирования при перебронировании переиспользует
	// use case отмены
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		statusClient,
		slotGuard,
		txMgr,
		cancelAppointmentUseCase,
		log,
	)

	syncAvailabilityUseCase := syncAvailabilityUC.NewUseCase(
		availabilityRepository,
		masterdata,
		cfg.Calendar.NoOfDays,
		cfg.Calendar.SyncWorkers,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		availabilityRepository,
		cfg.Calendar.NoOfDays,
		log,
	)

	// Инициализируем handlers
	bookAppointments := bookAppointmentsHandler.NewHandler(bookAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	syncAvailability := syncAvailabilityHandler.NewHandler(syncAvailabilityUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getBookedIDs := getBookedIDsHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Синхронизация календаря доступности со справочником центров
	api.HandleFunc("/appointments/sync", syncAvailability.Handle).Methods(http.MethodPost)

	// Календарь доступности центра
	api.HandleFunc("/appointments/availability/{centerId}", getAvailability.Handle).Methods(http.MethodGet)

	// Батч бронирования (включая перебронирование)
	api.HandleFunc("/appointments/book", bookAppointments.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	api.HandleFunc("/appointments/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// Пересечение кандидатов с активными бронированиями центра
	api.HandleFunc("/appointments/booked-ids", getBookedIDs.Handle).Methods(http.MethodPost)

	// Активное бронирование заявителя
	api.HandleFunc("/appointments/{preRegistrationId}", getAppointment.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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
