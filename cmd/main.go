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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chooseBookingSlotHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/choose_booking_slot"
	createDefenceSessionHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/create_defence_session"
	deleteBookingSlotsHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/delete_booking_slots"
	deleteDefenceSessionHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/delete_defence_session"
	generateBookingSlotsHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/generate_booking_slots"
	getBookingSlotsHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/get_booking_slots"
	getDefenceSessionHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/get_defence_session"
	getDefenceSessionsHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/get_defence_sessions"
	updateDefenceSessionHandler "github.com/m04kA/SMC-DefenceBookingService/internal/api/handlers/update_defence_session"
	"github.com/m04kA/SMC-DefenceBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-DefenceBookingService/internal/config"
	"github.com/m04kA/SMC-DefenceBookingService/internal/domain"
	"github.com/m04kA/SMC-DefenceBookingService/internal/events"
	bookingSlotRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/booking_slot"
	defenceSessionRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/defence_session"
	taskCategoryRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/task_category"
	userRepo "github.com/m04kA/SMC-DefenceBookingService/internal/infra/storage/user"
	bookingSlotsService "github.com/m04kA/SMC-DefenceBookingService/internal/service/booking_slots"
	defenceSessionsService "github.com/m04kA/SMC-DefenceBookingService/internal/service/defence_sessions"
	chooseBookingSlotUC "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/choose_booking_slot"
	generateBookingSlotsUC "github.com/m04kA/SMC-DefenceBookingService/internal/usecase/generate_booking_slots"
	_ "github.com/m04kA/SMC-DefenceBookingService/migrations"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/jwt"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/logger"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/metrics"
	"github.com/m04kA/SMC-DefenceBookingService/pkg/txmanager"
)

const migrationsDir = "migrations"

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

	log.Info("Starting SMC-DefenceBookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Режим миграций: `main migrate`
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigrations(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Migrations applied successfully")
		return
	}

	// Длительность слота округляется вниз до этого шага
	resolution, err := cfg.Booking.Resolution()
	if err != nil {
		log.Fatal("Invalid booking slot resolution: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Репозитории и менеджер транзакций работают через обёртку с метриками, если они включены
	var (
		executor   dbmetrics.DBExecutor
		txBeginner txmanager.TxBeginner
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txBeginner = wrappedDB
	} else {
		executor = db
		txBeginner = txmanager.FromDB(db)
	}

	txManager := txmanager.NewTransactionManager(txBeginner)

	// Инициализируем репозитории
	sessionRepository := defenceSessionRepo.NewRepository(executor)
	slotRepository := bookingSlotRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	categoryRepository := taskCategoryRepo.NewRepository(executor)

	// Публикация событий в NATS (если включена)
	var publisher events.EventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		natsPublisher, err := events.NewNatsPublisher(cfg.Events.NatsURL, cfg.Events.SubjectPrefix, log)
		if err != nil {
			log.Fatal("Failed to connect to NATS: %v", err)
		}
		publisher = natsPublisher
		log.Info("Events publishing enabled (nats=%s, prefix=%s)", cfg.Events.NatsURL, cfg.Events.SubjectPrefix)
	}
	defer publisher.Close()

	// Инициализируем сервисы
	slotSvc := bookingSlotsService.NewService(slotRepository, log)
	sessionSvc := defenceSessionsService.NewService(
		sessionRepository,
		slotRepository,
		categoryRepository,
		txManager,
		log,
	)

	// Инициализируем use cases
	generateBookingSlotsUseCase := generateBookingSlotsUC.NewUseCase(
		sessionRepository,
		slotRepository,
		txManager,
		publisher,
		metricsCollector,
		resolution,
		log,
	)

	chooseBookingSlotUseCase := chooseBookingSlotUC.NewUseCase(
		userRepository,
		slotRepository,
		txManager,
		publisher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	generateBookingSlots := generateBookingSlotsHandler.NewHandler(generateBookingSlotsUseCase, log)
	chooseBookingSlot := chooseBookingSlotHandler.NewHandler(chooseBookingSlotUseCase, log)
	deleteBookingSlots := deleteBookingSlotsHandler.NewHandler(slotSvc, log)
	getBookingSlots := getBookingSlotsHandler.NewHandler(slotSvc, log)
	createDefenceSession := createDefenceSessionHandler.NewHandler(sessionSvc, log)
	updateDefenceSession := updateDefenceSessionHandler.NewHandler(sessionSvc, log)
	getDefenceSession := getDefenceSessionHandler.NewHandler(sessionSvc, log)
	getDefenceSessions := getDefenceSessionsHandler.NewHandler(sessionSvc, log)
	deleteDefenceSession := deleteDefenceSessionHandler.NewHandler(sessionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все маршруты требуют Bearer токен
	tokens := jwt.NewManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.AccessTokenTTL)*time.Minute,
		cfg.Auth.Issuer,
	)
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(tokens))

	teachers := middleware.RequireRoles(domain.TeacherRoles...)
	students := middleware.RequireRoles(domain.StudentRoles...)
	everyone := middleware.RequireRoles(append(append([]domain.Role{}, domain.TeacherRoles...), domain.StudentRoles...)...)

	// ============================================================
	// BOOKING SLOTS
	// ============================================================

	// Генерация слотов для сессии
	api.Handle("/booking-slots/generate-booking-slots",
		teachers(http.HandlerFunc(generateBookingSlots.Handle))).Methods(http.MethodPost)

	// Выбор слота студентом
	api.Handle("/booking-slots/choose-booking-slot",
		students(http.HandlerFunc(chooseBookingSlot.Handle))).Methods(http.MethodPut)

	// Удаление всех слотов сессии
	api.Handle("/booking-slots/delete",
		teachers(http.HandlerFunc(deleteBookingSlots.Handle))).Methods(http.MethodDelete)

	// Слоты сессии
	api.Handle("/booking-slots",
		everyone(http.HandlerFunc(getBookingSlots.Handle))).Methods(http.MethodGet)

	// ============================================================
	// DEFENCE SESSIONS
	// ============================================================

	api.Handle("/defence-sessions",
		teachers(http.HandlerFunc(createDefenceSession.Handle))).Methods(http.MethodPost)

	api.Handle("/defence-sessions",
		everyone(http.HandlerFunc(getDefenceSessions.Handle))).Methods(http.MethodGet)

	api.Handle("/defence-sessions/{id}",
		everyone(http.HandlerFunc(getDefenceSession.Handle))).Methods(http.MethodGet)

	api.Handle("/defence-sessions/{id}",
		teachers(http.HandlerFunc(updateDefenceSession.Handle))).Methods(http.MethodPut)

	// Удаление сессии вместе со слотами
	api.Handle("/defence-sessions/{id}",
		teachers(http.HandlerFunc(deleteDefenceSession.Handle))).Methods(http.MethodDelete)

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

// runMigrations применяет Go миграции из пакета migrations
func runMigrations(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
