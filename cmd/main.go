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
	consulapi "github.com/hashicorp/consul/api"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelMeetingRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_meeting_request"
	confirmMeetingRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/confirm_meeting_request"
	createBlockedSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_blocked_slot"
	createMeetingRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_meeting_request"
	deleteBlockedSlotHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_blocked_slot"
	getAvailabilityRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability_request"
	getAvailabilityRulesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability_rules"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_calendar"
	getMeetingRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_meeting_request"
	healthHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/health"
	listBlockedSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_blocked_slots"
	listMeetingRequestsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_meeting_requests"
	resolveAvailabilityRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/resolve_availability_request"
	submitAvailabilityRequestHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/submit_availability_request"
	updateAvailabilityRulesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_availability_rules"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/auth"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/policy"
	availabilityRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability_request"
	availabilityRuleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability_rule"
	blockedSlotRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blocked_slot"
	meetingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting"
	meetingRequestRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/meeting_request"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/notifications"
	availabilityChecksService "github.com/m04kA/SMC-SchedulingService/internal/service/availability_checks"
	availabilityRulesService "github.com/m04kA/SMC-SchedulingService/internal/service/availability_rules"
	blockedSlotsService "github.com/m04kA/SMC-SchedulingService/internal/service/blocked_slots"
	meetingRequestsService "github.com/m04kA/SMC-SchedulingService/internal/service/meeting_requests"
	confirmMeetingRequestUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/confirm_meeting_request"
	createMeetingRequestUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_meeting_request"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	getCalendarUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Availability.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Availability.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	// nil коллектор безопасен: все методы metrics.Metrics проверяют получателя
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
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
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Политика рабочих часов: файл политики или встроенное расписание
	fallbackRules := domain.DefaultAvailabilityRuleSet()
	if cfg.Availability.RulesFile != "" {
		rules, err := policy.LoadFile(cfg.Availability.RulesFile)
		if err != nil {
			log.Fatal("Failed to load availability policy %s: %v", cfg.Availability.RulesFile, err)
		}
		fallbackRules = rules
		log.Info("Availability policy loaded from %s", cfg.Availability.RulesFile)
	}

	// Уведомления: без NATS события только логируются
	publisher := notifications.NewPublisher(nil, cfg.NATS.SubjectPrefix, log)
	if cfg.NATS.URL != "" {
		connected, err := notifications.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			log.Warn("Failed to connect to NATS, notifications will only be logged: %v", err)
		} else {
			publisher = connected
		}
	}
	defer publisher.Close()

	// Инициализируем репозитории
	blockedSlotRepository := blockedSlotRepo.NewRepository(wrappedDB)
	meetingRepository := meetingRepo.NewRepository(wrappedDB)
	meetingRequestRepository := meetingRequestRepo.NewRepository(wrappedDB)
	availabilityRuleRepository := availabilityRuleRepo.NewRepository(wrappedDB)
	availabilityRequestRepository := availabilityRequestRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	rulesSvc := availabilityRulesService.NewService(
		availabilityRuleRepository,
		txMgr,
		fallbackRules,
		location,
		log,
	)
	blockedSlotsSvc := blockedSlotsService.NewService(blockedSlotRepository, log)
	meetingRequestsSvc := meetingRequestsService.NewService(
		meetingRequestRepository,
		publisher,
		metricsCollector,
		log,
	)
	availabilityChecksSvc := availabilityChecksService.NewService(
		availabilityRequestRepository,
		auth.NewLinkSigner(cfg.Auth.ResolveLinkSecret, time.Duration(cfg.Auth.ResolveLinkTTLMins)*time.Minute),
		publisher,
		metricsCollector,
		availabilityChecksService.Settings{
			PublicBaseURL: cfg.Auth.PublicBaseURL,
			PollInterval:  cfg.AvailabilityPoll.PollInterval(),
			Timeout:       cfg.AvailabilityPoll.Timeout(),
			Retention:     cfg.AvailabilityPoll.Retention(),
		},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		blockedSlotRepository,
		meetingRepository,
		rulesSvc,
		metricsCollector,
		location,
		cfg.Availability.MaxRangeDays,
		log,
	)
	createMeetingRequestUseCase := createMeetingRequestUC.NewUseCase(
		meetingRequestRepository,
		rulesSvc,
		publisher,
		metricsCollector,
		location,
		log,
	)
	confirmMeetingRequestUseCase := confirmMeetingRequestUC.NewUseCase(
		meetingRequestRepository,
		meetingRepository,
		blockedSlotRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		blockedSlotRepository,
		meetingRepository,
		meetingRequestRepository,
		rulesSvc,
		location,
		cfg.Availability.MaxRangeDays,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createMeetingRequest := createMeetingRequestHandler.NewHandler(createMeetingRequestUseCase, log)
	getAvailabilityRules := getAvailabilityRulesHandler.NewHandler(rulesSvc, log)
	submitAvailabilityRequest := submitAvailabilityRequestHandler.NewHandler(availabilityChecksSvc, log)
	getAvailabilityRequest := getAvailabilityRequestHandler.NewHandler(availabilityChecksSvc, log)
	resolveAvailabilityRequest := resolveAvailabilityRequestHandler.NewHandler(availabilityChecksSvc, log)

	listMeetingRequests := listMeetingRequestsHandler.NewHandler(meetingRequestsSvc, log)
	getMeetingRequest := getMeetingRequestHandler.NewHandler(meetingRequestsSvc, log)
	confirmMeetingRequest := confirmMeetingRequestHandler.NewHandler(confirmMeetingRequestUseCase, log)
	cancelMeetingRequest := cancelMeetingRequestHandler.NewHandler(meetingRequestsSvc, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blockedSlotsSvc, log)
	createBlockedSlot := createBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blockedSlotsSvc, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	updateAvailabilityRules := updateAvailabilityRulesHandler.NewHandler(rulesSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	public := api.PathPrefix("").Subrouter()

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		public.Use(rateLimiter.Limit)
		log.Info("Rate limit enabled for public POST routes: %.2f rps, burst=%d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Слоты и заявки ---
	public.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/meeting-requests", createMeetingRequest.Handle).Methods(http.MethodPost)
	public.HandleFunc("/availability-rules", getAvailabilityRules.Handle).Methods(http.MethodGet)

	// --- "Есть ли кто-то свободный прямо сейчас" ---
	public.HandleFunc("/availability-requests", submitAvailabilityRequest.Handle).Methods(http.MethodPost)
	public.HandleFunc("/availability-requests/{id}", getAvailabilityRequest.Handle).Methods(http.MethodGet)
	// Ссылка из уведомления сотруднику, авторизуется подписанным токеном
	public.HandleFunc("/availability-requests/{id}/resolve", resolveAvailabilityRequest.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (Bearer JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(cfg.Auth.JWTSecret), middleware.AdminOnly)

	// --- Заявки на встречи ---
	admin.HandleFunc("/meeting-requests", listMeetingRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/meeting-requests/{id}", getMeetingRequest.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/meeting-requests/{id}/confirm", confirmMeetingRequest.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/meeting-requests/{id}/cancel", cancelMeetingRequest.Handle).Methods(http.MethodPatch)

	// --- Блокировки ---
	admin.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-slots", createBlockedSlot.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-slots/{id}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// --- Календарь и расписание ---
	admin.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability-rules", updateAvailabilityRules.Handle).Methods(http.MethodPut)

	// Фоновая очистка неразрешенных запросов
	bgCtx, cancelBackground := context.WithCancel(context.Background())
	defer cancelBackground()

	var janitor *availabilityChecksService.Janitor
	if cfg.AvailabilityPoll.JanitorEnabled {
		janitor = availabilityChecksService.NewJanitor(availabilityChecksSvc, cfg.AvailabilityPoll.JanitorInterval(), log)
		go janitor.Start(bgCtx)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
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

	// Регистрируемся в Consul (если включено)
	var consulClient *consulapi.Client
	if cfg.Consul.Enabled {
		consulClient, err = registerWithConsul(cfg, log)
		if err != nil {
			log.Warn("Failed to register with Consul: %v", err)
		}
	}

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if consulClient != nil {
		if err := consulClient.Agent().ServiceDeregister(cfg.Consul.ServiceID); err != nil {
			log.Warn("Failed to deregister from Consul: %v", err)
		}
	}

	if janitor != nil {
		janitor.Stop()
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

func registerWithConsul(cfg *config.Config, log *logger.Logger) (*consulapi.Client, error) {
	consulConfig := consulapi.DefaultConfig()
	consulConfig.Address = cfg.Consul.Address

	client, err := consulapi.NewClient(consulConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %w", err)
	}

	registration := &consulapi.AgentServiceRegistration{
		ID:      cfg.Consul.ServiceID,
		Name:    cfg.Consul.ServiceName,
		Address: cfg.Consul.ServiceAddress,
		Port:    cfg.Server.HTTPPort,
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/health", cfg.Consul.ServiceAddress, cfg.Server.HTTPPort),
			Interval:                       cfg.Consul.CheckInterval,
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: cfg.Consul.DeregisterCriticalServiceAfter,
		},
		Tags: []string{"scheduling", "v1"},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		return nil, fmt.Errorf("failed to register service: %w", err)
	}

	log.Info("Registered with Consul: service_id=%s, address=%s", cfg.Consul.ServiceID, cfg.Consul.Address)
	return client, nil
}
