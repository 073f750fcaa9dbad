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
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getCustomerAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_customer_appointments"
	getEmployeeAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_employee_appointments"
	getGarageAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_garage_appointments"
	getGarageScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_garage_schedule"
	healthHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/health"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/locker"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	garageRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notification"
	userServiceClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/userservice"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/service/employees"
	garagesService "github.com/m04kA/SMC-AppointmentService/internal/service/garages"
	"github.com/m04kA/SMC-AppointmentService/internal/service/loadbalancer"
	"github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	updateAppointmentStatusUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment_status"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// selectionLocker блокировка выбора сотрудника (Redis или Noop)
type selectionLocker interface {
	Acquire(ctx context.Context, key string) (locker.ReleaseFunc, error)
	Ping(ctx context.Context) error
}

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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// Методы *metrics.Metrics безопасны для nil, поэтому коллектор передаётся как есть
	var metricsCollector *metrics.Metrics
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

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Репозитории и менеджер транзакций
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	garageRepository := garageRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Блокировка выбора сотрудника
	var (
		selectLocker selectionLocker = locker.Noop{}
		redisClient  *redis.Client
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		selectLocker = locker.NewRedisLocker(
			redisClient,
			time.Duration(cfg.Redis.LockTTL)*time.Millisecond,
			time.Duration(cfg.Redis.RetryInterval)*time.Millisecond,
		)
		log.Info("Redis selection lock enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		log.Warn("Redis disabled: selection lock relies on serializable transactions only")
	}

	// Транспорт уведомлений
	var (
		gateway     notifications.Gateway
		kafkaWriter *notification.KafkaGateway
	)
	switch cfg.Notifications.Transport {
	case config.TransportKafka:
		kafkaWriter = notification.NewKafkaGateway(notification.NewKafkaWriter(
			notification.SplitBrokers(cfg.Notifications.Kafka.Brokers),
			cfg.Notifications.Kafka.Topic,
		))
		gateway = kafkaWriter
	case config.TransportSMTP:
		smtp := cfg.Notifications.SMTP
		gateway = notification.NewSMTPGateway(
			notification.NewSMTPSender(smtp.Host, smtp.Port, smtp.Username, smtp.Password, smtp.From),
		)
	default:
		gateway = notification.NewLogGateway(log)
	}
	log.Info("Notifications transport: %s", cfg.Notifications.Transport)

	dispatcher := notifications.NewDispatcher(
		gateway,
		metricsCollector,
		log,
		time.Duration(cfg.Notifications.SendTimeout)*time.Second,
	)

	// Доменные сервисы
	cal := calendar.New()
	finder := employees.NewFinder(employeeRepository, log)
	balancer := loadbalancer.NewBalancer(appointmentRepository, log)

	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		employeeRepository,
		garageRepository,
		log,
	)
	garageSvc := garagesService.NewService(garageRepository, cal, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		garageRepository,
		userClient,
		cal,
		finder,
		balancer,
		selectLocker,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	updateAppointmentStatusUseCase := updateAppointmentStatusUC.NewUseCase(
		appointmentRepository,
		employeeRepository,
		garageRepository,
		finder,
		balancer,
		selectLocker,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(updateAppointmentStatusUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getEmployeeAppointments := getEmployeeAppointmentsHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getGarageAppointments := getGarageAppointmentsHandler.NewHandler(appointmentSvc, log)
	getGarageSchedule := getGarageScheduleHandler.NewHandler(garageSvc, log)
	health := healthHandler.NewHandler(log,
		healthHandler.Check{Name: "postgres", Check: wrappedDB.PingContext},
		healthHandler.Check{Name: "redis", Check: selectLocker.Ping},
	)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверки живости и готовности
	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельное расписание гаража
	api.HandleFunc("/garages/{garageId}/schedule", getGarageSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-Email header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи с автоматическим назначением сотрудника
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Смена статуса (CANCELLED запускает переназначение)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Списки ---
	protected.HandleFunc("/employees/me/appointments", getEmployeeAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/me/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/garages/{garageId}/appointments", getGarageAppointments.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уведомлений, поставленных до остановки сервера
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Warn("Notifications were not flushed: %v", err)
	}

	if kafkaWriter != nil {
		if err := kafkaWriter.Close(); err != nil {
			log.Error("Failed to close kafka writer: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
