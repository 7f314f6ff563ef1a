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

	checkConflictsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/check_counselor_conflicts"
	checkGroupSlotsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/check_group_slots"
	createAppointmentHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/create_appointment"
	deleteAvailabilityHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/delete_availability"
	getAvailabilityHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_available_slots"
	getBookedTimesHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_booked_times"
	getCounselorsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_counselors_by_availability"
	getMonthStatsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_month_stats"
	getStudentAppointmentsHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/get_student_appointments"
	updateAvailabilityHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/update_availability"
	updateStatusHandler "github.com/m04kA/SMC-CounselingService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-CounselingService/internal/api/middleware"
	"github.com/m04kA/SMC-CounselingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-CounselingService/internal/infra/storage/availability"
	accountServiceClient "github.com/m04kA/SMC-CounselingService/internal/integrations/accountservice"
	appointmentsService "github.com/m04kA/SMC-CounselingService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-CounselingService/internal/service/availability"
	checkConflictsUC "github.com/m04kA/SMC-CounselingService/internal/usecase/check_counselor_conflicts"
	checkGroupSlotsUC "github.com/m04kA/SMC-CounselingService/internal/usecase/check_group_slots"
	createAppointmentUC "github.com/m04kA/SMC-CounselingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-CounselingService/internal/usecase/get_available_slots"
	getCounselorsUC "github.com/m04kA/SMC-CounselingService/internal/usecase/get_counselors_by_availability"
	updateAvailabilityUC "github.com/m04kA/SMC-CounselingService/internal/usecase/update_availability"
	"github.com/m04kA/SMC-CounselingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CounselingService/pkg/logger"
	"github.com/m04kA/SMC-CounselingService/pkg/metrics"
	"github.com/m04kA/SMC-CounselingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CounselingService/pkg/txmanager"
)

// statsCacheTTL время жизни кэша месячной статистики календаря
const statsCacheTTL = 5 * time.Minute

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

	log.Info("Starting SMC-CounselingService...")
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

	// Инициализируем клиент сервиса аккаунтов
	accountClient := accountServiceClient.NewClient(
		cfg.AccountService.URL,
		time.Duration(cfg.AccountService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AccountService=%s timeout=%ds)",
		cfg.AccountService.URL, cfg.AccountService.Timeout)

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		appointmentRepository  *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(availabilityRepository, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		appointmentsService.NewStatsCache(statsCacheTTL),
		txMgr,
		log,
	)

	// Инициализируем use cases
	updateAvailabilityUseCase := updateAvailabilityUC.NewUseCase(availabilityRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(availabilityRepository, appointmentRepository, log)
	getCounselorsUseCase := getCounselorsUC.NewUseCase(availabilityRepository, accountClient, log)
	checkGroupSlotsUseCase := checkGroupSlotsUC.NewUseCase(appointmentRepository, log)
	checkConflictsUseCase := checkConflictsUC.NewUseCase(appointmentRepository, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		availabilityRepository,
		accountClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(updateAvailabilityUseCase, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	getCounselors := getCounselorsHandler.NewHandler(getCounselorsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookedTimes := getBookedTimesHandler.NewHandler(appointmentsSvc, log)
	checkGroupSlots := checkGroupSlotsHandler.NewHandler(checkGroupSlotsUseCase, log)
	checkConflicts := checkConflictsHandler.NewHandler(checkConflictsUseCase, log)
	getMonthStats := getMonthStatsHandler.NewHandler(appointmentsSvc, log)
	getStudentAppointments := getStudentAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность консультанта по дням недели
	api.HandleFunc("/counselors/{counselorId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Поиск консультантов по доступности
	api.HandleFunc("/counselors/by-availability", getCounselors.Handle).Methods(http.MethodGet)

	// Доступные получасовые слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Занятые слоты на дату
	api.HandleFunc("/appointments/booked-times", getBookedTimes.Handle).Methods(http.MethodGet)

	// Емкость группового слота
	api.HandleFunc("/appointments/check-group-slots", checkGroupSlots.Handle).Methods(http.MethodGet)

	// Конфликты расписания консультанта
	api.HandleFunc("/appointments/check-conflicts", checkConflicts.Handle).Methods(http.MethodGet)

	// Месячная статистика для календаря
	api.HandleFunc("/appointments/month-stats", getMonthStats.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Доступность (для консультантов) ---
	protected.HandleFunc("/counselors/{counselorId}/availability", updateAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/counselors/{counselorId}/availability", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Записи на консультации ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/my", getStudentAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
