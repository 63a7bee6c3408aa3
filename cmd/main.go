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

	createAppointmentHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/create_appointment"
	createWebhookHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/create_webhook"
	deleteAppointmentHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/delete_appointment"
	deleteWebhookHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/delete_webhook"
	getAppointmentHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/get_available_slots"
	getBusinessHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/get_business"
	listAppointmentsHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/list_appointments"
	listCustomersHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/list_customers"
	listNotificationsHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/list_notifications"
	listWebhooksHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/list_webhooks"
	markAllNotificationsReadHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/mark_notification_read"
	resetSetupHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/reset_setup"
	setupBusinessHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/setup_business"
	updateAppointmentStatusHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/update_appointment_status"
	updateBusinessHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/update_business"
	updateWebhookHandler "github.com/randevuhub/RH-AppointmentService/internal/api/handlers/update_webhook"
	"github.com/randevuhub/RH-AppointmentService/internal/api/middleware"
	"github.com/randevuhub/RH-AppointmentService/internal/config"
	"github.com/randevuhub/RH-AppointmentService/internal/dispatch"
	appointmentRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/appointment"
	businessRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/business"
	customerRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/customer"
	notificationRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/notification"
	serviceRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/service"
	webhookRepo "github.com/randevuhub/RH-AppointmentService/internal/infra/storage/webhook"
	appointmentsService "github.com/randevuhub/RH-AppointmentService/internal/service/appointments"
	businessService "github.com/randevuhub/RH-AppointmentService/internal/service/business"
	notificationsService "github.com/randevuhub/RH-AppointmentService/internal/service/notifications"
	webhooksService "github.com/randevuhub/RH-AppointmentService/internal/service/webhooks"
	createAppointmentUC "github.com/randevuhub/RH-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/randevuhub/RH-AppointmentService/internal/usecase/get_available_slots"
	updateAppointmentStatusUC "github.com/randevuhub/RH-AppointmentService/internal/usecase/update_appointment_status"
	"github.com/randevuhub/RH-AppointmentService/pkg/dbmetrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/logger"
	"github.com/randevuhub/RH-AppointmentService/pkg/metrics"
	"github.com/randevuhub/RH-AppointmentService/pkg/simpletxmanager"
	"github.com/randevuhub/RH-AppointmentService/pkg/txmanager"
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

	log.Info("Starting RH-AppointmentService...")
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
		appointmentRepository  *appointmentRepo.Repository
		businessRepository     *businessRepo.Repository
		serviceRepository      *serviceRepo.Repository
		customerRepository     *customerRepo.Repository
		notificationRepository *notificationRepo.Repository
		webhookRepository      *webhookRepo.Repository
	)

	// Интерфейс transaction manager (используется в сервисах и use cases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		businessRepository = businessRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		webhookRepository = webhookRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		businessRepository = businessRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		webhookRepository = webhookRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем диспетчер вебхуков
	dispatcher := dispatch.NewDispatcher(
		webhookRepository,
		cfg.Webhooks.Workers,
		cfg.Webhooks.QueueSize,
		time.Duration(cfg.Webhooks.TimeoutSeconds)*time.Second,
		log,
	)
	log.Info("Webhook dispatcher started (workers=%d, queue=%d, timeout=%ds)",
		cfg.Webhooks.Workers, cfg.Webhooks.QueueSize, cfg.Webhooks.TimeoutSeconds)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		businessRepository,
		serviceRepository,
		log,
	)
	businessSvc := businessService.NewService(
		businessRepository,
		serviceRepository,
		customerRepository,
		appointmentRepository,
		notificationRepository,
		webhookRepository,
		txMgr,
		log,
	)
	notificationsSvc := notificationsService.NewService(
		notificationRepository,
		businessRepository,
		log,
	)
	webhooksSvc := webhooksService.NewService(
		webhookRepository,
		businessRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		businessRepository,
		serviceRepository,
		appointmentRepository,
		customerRepository,
		notificationRepository,
		dispatcher,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		businessRepository,
		appointmentRepository,
		log,
	)

	updateAppointmentStatusUseCase := updateAppointmentStatusUC.NewUseCase(
		appointmentRepository,
		businessRepository,
		serviceRepository,
		notificationRepository,
		dispatcher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	setupBusiness := setupBusinessHandler.NewHandler(businessSvc, log)
	resetSetup := resetSetupHandler.NewHandler(businessSvc, log)
	getBusiness := getBusinessHandler.NewHandler(businessSvc, log)
	updateBusiness := updateBusinessHandler.NewHandler(businessSvc, log)
	listCustomers := listCustomersHandler.NewHandler(businessSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(updateAppointmentStatusUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	listNotifications := listNotificationsHandler.NewHandler(notificationsSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationsSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationsSvc, log)
	createWebhook := createWebhookHandler.NewHandler(webhooksSvc, log)
	listWebhooks := listWebhooksHandler.NewHandler(webhooksSvc, log)
	updateWebhook := updateWebhookHandler.NewHandler(webhooksSvc, log)
	deleteWebhook := deleteWebhookHandler.NewHandler(webhooksSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Первичная настройка бизнеса (одноразовая) и полный сброс
	api.HandleFunc("/setup", setupBusiness.Handle).Methods(http.MethodPost)
	api.HandleFunc("/setup/reset", resetSetup.Handle).Methods(http.MethodDelete)

	// Публичная карточка бизнеса
	api.HandleFunc("/businesses/{slug}", getBusiness.Handle).Methods(http.MethodGet)

	// Сетка слотов на день
	api.HandleFunc("/businesses/{slug}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи клиентом
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	// --- Бизнес ---
	// Обновление настроек бизнеса
	api.HandleFunc("/businesses/{slug}", updateBusiness.Handle).Methods(http.MethodPut)

	// Список клиентов бизнеса
	api.HandleFunc("/businesses/{slug}/customers", listCustomers.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Список записей бизнеса с фильтрами
	api.HandleFunc("/businesses/{slug}/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Смена статуса записи
	api.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

	// Удаление записи
	api.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Уведомления ---
	// Входящие уведомления бизнеса
	api.HandleFunc("/businesses/{businessId}/notifications", listNotifications.Handle).Methods(http.MethodGet)

	// Пометить все уведомления прочитанными
	api.HandleFunc("/businesses/{businessId}/notifications/read-all",
		markAllNotificationsRead.Handle).Methods(http.MethodPut)

	// Пометить уведомление прочитанным
	api.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPut)

	// --- Вебхуки ---
	api.HandleFunc("/webhooks", createWebhook.Handle).Methods(http.MethodPost)
	api.HandleFunc("/webhooks", listWebhooks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/webhooks/{webhookId}", updateWebhook.Handle).Methods(http.MethodPut)
	api.HandleFunc("/webhooks/{webhookId}", deleteWebhook.Handle).Methods(http.MethodDelete)

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

	// Дожидаемся доставки уже поставленных в очередь вебхуков
	dispatcher.Close()
	log.Info("Webhook dispatcher stopped")

	log.Info("Server stopped gracefully")
}
