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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api"
	"github.com/m04kA/SMC-ClubSpacesService/internal/config"
	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/cache/spacecache"
	courseRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/course"
	eventRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/event"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/schema"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	coursesService "github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
	eventsService "github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
	reservationsService "github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
	spacesService "github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
	getSpaceScheduleUC "github.com/m04kA/SMC-ClubSpacesService/internal/usecase/get_space_schedule"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/metrics"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/mq"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/txmanager"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
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

	log.Info("Starting SMC-ClubSpacesService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if cfg.Database.Driver == config.DriverSQLite {
		// SQLite допускает одного писателя
		db.SetMaxOpenConns(1)
	}

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	if cfg.Database.Driver == config.DriverSQLite {
		log.Info("Successfully connected to database (driver=sqlite, path=%s)", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	dbName := cfg.Database.DBName
	if cfg.Database.Driver == config.DriverSQLite {
		dbName = "sqlite"
	}
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, dbName, stopMetricsCh)

	if cfg.Database.Migrate {
		if err := schema.Migrate(context.Background(), wrappedDB, cfg.Database.Driver); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied (driver=%s)", cfg.Database.Driver)
	}

	// Менеджер транзакций: в PostgreSQL бронирование идет на SERIALIZABLE с повтором при конфликте сериализации
	txOpts := []txmanager.Option{txmanager.WithRetries(3, 20*time.Millisecond)}
	if cfg.Database.Driver == config.DriverPostgres {
		txOpts = append(txOpts, txmanager.WithIsolation(sql.LevelSerializable))
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB, txOpts...)

	// Инициализируем репозитории
	spaceRepository := spaceRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	reservationInscriptionRepository := reservationRepo.NewInscriptionRepository(wrappedDB)
	eventRepository := eventRepo.NewRepository(wrappedDB)
	eventInscriptionRepository := eventRepo.NewInscriptionRepository(wrappedDB)
	courseRepository := courseRepo.NewRepository(wrappedDB)
	courseInscriptionRepository := courseRepo.NewInscriptionRepository(wrappedDB)

	// Кэш реестра площадок (необязателен)
	var spaceCache spacesService.Cache
	if cfg.Cache.Enabled {
		redisClient := spacecache.NewClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, cache misses until it is: %v", cfg.Cache.Addr, err)
		}
		cancel()

		spaceCache = spacecache.New(redisClient, time.Duration(cfg.Cache.TTL)*time.Second, log)
		log.Info("Space cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTL)
	}

	// Уведомления участникам: RabbitMQ или только лог
	var notifier reservationsService.Notifier
	if cfg.Notifications.Enabled {
		publisher, err := mq.NewPublisher(cfg.Notifications.URL, cfg.Notifications.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()

		notifier = notifications.NewAMQPNotifier(
			publisher,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("Notifications enabled (exchange=%s, timeout=%ds)", cfg.Notifications.Exchange, cfg.Notifications.Timeout)
	} else {
		notifier = notifications.NewLogNotifier(log)
	}

	// Координатор бронирований: единственная точка занятия и освобождения площадок
	coordinator := booking.NewCoordinator(
		spaceRepository,
		slotRepository,
		reservationRepository,
		reservationInscriptionRepository,
		txMgr,
		metricsCollector,
		log,
	)

	// Сотрудники клуба: особые бронирования и управление чужими бронированиями
	staff := domain.NewStaff(cfg.Club.StaffIDs...)
	log.Info("Club staff configured: %d user(s)", len(staff))

	// Инициализируем сервисы
	spaceSvc := spacesService.NewService(spaceRepository, spaceCache, log)
	reservationSvc := reservationsService.NewService(
		coordinator,
		reservationRepository,
		reservationInscriptionRepository,
		eventRepository,
		txMgr,
		notifier,
		staff,
		log,
	)
	eventSvc := eventsService.NewService(
		coordinator,
		eventRepository,
		eventInscriptionRepository,
		reservationRepository,
		spaceRepository,
		txMgr,
		notifier,
		staff,
		log,
	)
	courseSvc := coursesService.NewService(
		coordinator,
		courseRepository,
		courseInscriptionRepository,
		spaceRepository,
		slotRepository,
		txMgr,
		notifier,
		log,
	)

	// Инициализируем use cases
	getSpaceScheduleUseCase, err := getSpaceScheduleUC.NewUseCase(
		spaceRepository,
		slotRepository,
		getSpaceScheduleUC.Hours{
			Open:  types.MustTimeString(cfg.Club.OpenTime),
			Close: types.MustTimeString(cfg.Club.CloseTime),
		},
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize schedule use case: %v", err)
	}

	// Инициализируем handlers и роутер
	handlers := api.NewHandlers(api.Services{
		Spaces:       spaceSvc,
		Schedule:     getSpaceScheduleUseCase,
		Reservations: reservationSvc,
		Events:       eventSvc,
		Courses:      courseSvc,
	}, log)

	r := api.NewRouter(handlers, api.Options{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
	}, log)

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
