package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-CruiseBookingService/internal/api"
	"github.com/m04kA/SMC-CruiseBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-CruiseBookingService/internal/config"
	"github.com/m04kA/SMC-CruiseBookingService/internal/events"
	bookingRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/booking"
	cruiseRepo "github.com/m04kA/SMC-CruiseBookingService/internal/infra/storage/cruise"
	bookingsService "github.com/m04kA/SMC-CruiseBookingService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CruiseBookingService/internal/service/catalog"
	createBookingUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/create_booking"
	getCruiseAvailabilityUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/get_cruise_availability"
	processPaymentUC "github.com/m04kA/SMC-CruiseBookingService/internal/usecase/process_payment"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/logger"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CruiseBookingService/pkg/reference"
)

type options struct {
	Config string `short:"c" long:"config" default:"config.toml" description:"path to TOML config"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(opts.Config)
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

	log.Info("Starting SMC-CruiseBookingService...")
	log.Info("Configuration loaded from %s (environment=%s)", opts.Config, cfg.Server.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("Service stopped with error: %v", err)
		_ = log.Close()
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
	_ = log.Close()
}

// run собирает зависимости и работает до отмены ctx.
// Ошибки возвращаются наверх, чтобы отложенные Close успели выполниться.
func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	handlers.SetExposeErrors(cfg.Server.IsDevelopment())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище бронирований
	store, closeStore, err := newBookingStore(ctx, cfg, metricsCollector, log)
	if err != nil {
		return fmt.Errorf("failed to initialize booking storage: %w", err)
	}
	defer closeStore()

	// Шина событий
	var rdb *redis.Client
	if cfg.Events.Driver == config.EventsRedis {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Events.RedisAddr})
		defer rdb.Close()
		log.Info("Events are published to Redis streams at %s", cfg.Events.RedisAddr)
	}

	pubSub, err := events.NewPubSub(events.Config{
		Driver:        cfg.Events.Driver,
		ConsumerGroup: cfg.Events.ConsumerGroup,
		BufferSize:    cfg.Events.BufferSize,
	}, redisClient(rdb), log.Watermill())
	if err != nil {
		return fmt.Errorf("failed to initialize event transport: %w", err)
	}
	defer pubSub.Close()

	var recorder events.TransitionRecorder = noopRecorder{}
	if metricsCollector != nil {
		recorder = metricsCollector
	}

	eventRouter, err := events.NewRouter(pubSub.Subscriber, recorder, log, log.Watermill())
	if err != nil {
		return fmt.Errorf("failed to initialize event router: %w", err)
	}

	publisher := events.NewPublisher(pubSub.Publisher)

	// Репозитории, сервисы и use cases
	cruises := cruiseRepo.NewRepository()

	router := api.NewRouter(api.Deps{
		Bookings: bookingsService.NewService(store, cruises, publisher, log),
		Catalog:  catalogService.NewService(cruises, log),
		CreateBooking: createBookingUC.NewUseCase(
			store,
			cruises,
			reference.NewGenerator(cfg.Booking.ReferencePrefix),
			publisher,
			log,
		),
		ProcessPayment:        processPaymentUC.NewUseCase(store, publisher, log),
		GetCruiseAvailability: getCruiseAvailabilityUC.NewUseCase(cruises, log),
		Logger:                log,
		Metrics:               metricsCollector,
		MetricsPath:           cfg.Metrics.Path,
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eventRouter.Run(ctx)
	})

	g.Go(func() error {
		// HTTP сервер стартует только после подписки аудита на события
		select {
		case <-eventRouter.Running():
		case <-ctx.Done():
			return nil
		}

		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newBookingStore выбирает хранилище по storage.driver
func newBookingStore(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (bookingRepo.Store, func(), error) {
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Info("Using in-memory booking storage")
		return bookingRepo.NewMemoryRepository(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	repo := bookingRepo.NewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	if m != nil {
		m.RegisterDB(db, cfg.Database.DBName)
		log.Info("Database metrics collection started")
	}

	return repo, func() { _ = db.Close() }, nil
}

// redisClient не даёт typed nil попасть в интерфейс
func redisClient(rdb *redis.Client) redis.UniversalClient {
	if rdb == nil {
		return nil
	}
	return rdb
}

type noopRecorder struct{}

func (noopRecorder) RecordTransition(string) {}
