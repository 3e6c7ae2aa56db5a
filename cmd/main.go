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

	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	createClosureHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_closure"
	createSalonConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_salon_config"
	createServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_service"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_appointment"
	deleteClosureHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_closure"
	deleteServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/delete_service"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_available_slots"
	getClosuresHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_closures"
	getDailyStatsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_daily_stats"
	getSalonConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_salon_config"
	getServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_service"
	getServicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_services"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_appointment_status"
	updateSalonConfigHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_salon_config"
	updateServiceHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	closureRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/closure"
	salonConfigRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salonconfig"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	closuresService "github.com/m04kA/SMC-SalonService/internal/service/closures"
	salonConfigService "github.com/m04kA/SMC-SalonService/internal/service/salonconfig"
	servicesService "github.com/m04kA/SMC-SalonService/internal/service/services"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		salonConfigRepository *salonConfigRepo.Repository
		closureRepository     *closureRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecase создания записи)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		salonConfigRepository = salonConfigRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		salonConfigRepository = salonConfigRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	serviceSvc := servicesService.NewService(serviceRepository, log)
	salonConfigSvc := salonConfigService.NewService(salonConfigRepository, log)
	closureSvc := closuresService.NewService(closureRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		salonConfigRepository,
		closureRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		salonConfigRepository,
		closureRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, cfg.Auth, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	getDailyStats := getDailyStatsHandler.NewHandler(appointmentSvc, log)
	createService := createServiceHandler.NewHandler(serviceSvc, log)
	getServices := getServicesHandler.NewHandler(serviceSvc, log)
	getService := getServiceHandler.NewHandler(serviceSvc, log)
	updateService := updateServiceHandler.NewHandler(serviceSvc, log)
	deleteService := deleteServiceHandler.NewHandler(serviceSvc, log)
	getSalonConfig := getSalonConfigHandler.NewHandler(salonConfigSvc, log)
	createSalonConfig := createSalonConfigHandler.NewHandler(salonConfigSvc, log)
	updateSalonConfig := updateSalonConfigHandler.NewHandler(salonConfigSvc, log)
	createClosure := createClosureHandler.NewHandler(closureSvc, log)
	getClosures := getClosuresHandler.NewHandler(closureSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(closureSvc, log)

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

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов
	api.HandleFunc("/appointments/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи (переопределение статуса доступно только администраторам)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", getService.Handle).Methods(http.MethodGet)

	// Конфигурация салона
	api.HandleFunc("/config", getSalonConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-ID из списка admin_ids)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth))

	// --- Записи ---
	// Список записей на дату
	admin.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Статистика записей за день
	admin.HandleFunc("/appointments/stats/daily", getDailyStats.Handle).Methods(http.MethodGet)

	// Обновление статуса записи
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

	// Удаление записи (снятие блокировки)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Услуги ---
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Конфигурация салона ---
	admin.HandleFunc("/config", createSalonConfig.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/config", updateSalonConfig.Handle).Methods(http.MethodPut)

	// --- Закрытия ---
	admin.HandleFunc("/closures", getClosures.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/closures", createClosure.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/closures/{closureId}", deleteClosure.Handle).Methods(http.MethodDelete)

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
