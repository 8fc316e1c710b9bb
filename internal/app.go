package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	token_adapter "househunt-service/internal/adapters/jwt"
	logger_adapter "househunt-service/internal/adapters/logger"
	"househunt-service/internal/adapters/memory"
	postgres_adapter "househunt-service/internal/adapters/postgres"
	rabbitmq_adapter "househunt-service/internal/adapters/rabbitmq"
	"househunt-service/internal/adapters/rest"
	"househunt-service/internal/configs"
	"househunt-service/internal/constants"
	"househunt-service/internal/contextkeys"
	"househunt-service/internal/contracts"
	"househunt-service/internal/core/domain"
	"househunt-service/internal/core/port"
	"househunt-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 15 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	publisher    *rabbitmq_adapter.Publisher
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// storage - набор репозиториев выбранного драйвера
type storage struct {
	properties port.PropertyStoragePort
	inquiries  port.InquiryStoragePort
	profiles   port.ProfileStoragePort
	pool       *pgxpool.Pool
}

// NewApp – composition root: здесь создаются и связываются все зависимости.
func NewApp(appConfig *configs.AppConfig) (*App, error) {
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := contracts.Load(); err != nil {
		return nil, fmt.Errorf("failed to load contract schemas: %w", err)
	}

	baseLogger, fluentClient, err := newLoggers(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	app := &App{config: appConfig, fluentClient: fluentClient, logger: appLogger}
	ctx := contextkeys.ContextWithLogger(context.Background(), baseLogger)

	store, err := openStorage(ctx, appConfig)
	if err != nil {
		appLogger.Error("Failed to initialize storage", err, port.Fields{"driver": appConfig.Storage.Driver})
		app.closeResources()
		return nil, err
	}
	app.dbPool = store.pool
	appLogger.Info("Storage initialized", port.Fields{"driver": appConfig.Storage.Driver})

	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSigningKey, appConfig.Auth.JWTIssuer)
	if err != nil {
		appLogger.Error("Failed to create token service", err, nil)
		app.closeResources()
		return nil, err
	}

	var events port.InquiryEventsPort = rabbitmq_adapter.NoopInquiryEvents{}
	if appConfig.RabbitMQ.Enabled {
		publisher, err := rabbitmq_adapter.NewPublisher(rabbitmq_adapter.PublisherConfig{
			URL:          appConfig.RabbitMQ.URL,
			ExchangeName: appConfig.RabbitMQ.Exchange,
			ExchangeType: constants.ExchangeKindDirect,
			Durable:      true,
		})
		if err != nil {
			appLogger.Error("Failed to create RabbitMQ publisher", err, nil)
			app.closeResources()
			return nil, fmt.Errorf("failed to create RabbitMQ publisher: %w", err)
		}
		app.publisher = publisher

		eventsAdapter, err := rabbitmq_adapter.NewInquiryEventsAdapter(publisher)
		if err != nil {
			app.closeResources()
			return nil, err
		}
		events = eventsAdapter
		appLogger.Info("RabbitMQ inquiry events publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	} else {
		appLogger.Info("RabbitMQ is disabled, inquiry events will be dropped", nil)
	}

	propertyHandlers := rest.NewPropertyHandler(
		usecase.NewFetchPropertiesUseCase(store.properties),
		usecase.NewGetPropertyUseCase(store.properties),
		usecase.NewFetchOwnerPropertiesUseCase(store.properties),
		usecase.NewCreatePropertyUseCase(store.properties, store.profiles),
		usecase.NewUpdatePropertyUseCase(store.properties),
		usecase.NewDeletePropertyUseCase(store.properties),
	)
	inquiryHandlers := rest.NewInquiryHandler(
		usecase.NewCreateInquiryUseCase(store.properties, store.inquiries, store.profiles, events),
		usecase.NewUpdateInquiryStatusUseCase(store.properties, store.inquiries, events),
		usecase.NewFetchInquiriesUseCase(store.properties, store.inquiries),
	)
	profileHandlers := rest.NewProfileHandler(
		usecase.NewGetProfileUseCase(store.profiles),
		usecase.NewUpdateProfileUseCase(store.profiles),
	)
	dictionariesHandlers := rest.NewDictionariesHandler(usecase.NewGetDictionariesUseCase())
	appLogger.Info("All use cases initialized", nil)

	if appConfig.Storage.SeedDemoData {
		created, err := usecase.NewSeedDemoDataUseCase(store.properties, store.profiles).Execute(ctx)
		if err != nil {
			appLogger.Error("Failed to seed demo data", err, nil)
			app.closeResources()
			return nil, err
		}
		appLogger.Info("Demo data seeded", port.Fields{"created": created})
	}

	app.apiServer = rest.NewServer(
		rest.ServerConfig{Port: appConfig.Rest.Port, CORSAllowedOrigins: appConfig.Rest.CORSAllowedOrigins},
		propertyHandlers,
		inquiryHandlers,
		profileHandlers,
		dictionariesHandlers,
		rest.NewAuthMiddleware(tokenService, appConfig.Auth.TrustGatewayHeaders),
		baseLogger,
	)
	appLogger.Info("REST API server configured", port.Fields{"trust_gateway_headers": appConfig.Auth.TrustGatewayHeaders})

	return app, nil
}

// Run запускает HTTP-сервер и ждет сигнала на завершение
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if a.apiServer != nil {
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}
	}

	a.closeResources()
}

// closeResources закрывает все, что успели открыть. fluent закрывается последним.
func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
		a.publisher = nil
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed", nil)
		a.dbPool = nil
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
		a.fluentClient = nil
	}
}

// SeedDemoData загружает демо-профили и объявления в настроенное хранилище
func SeedDemoData(ctx context.Context, appConfig *configs.AppConfig) (int, error) {
	baseLogger, fluentClient, err := newLoggers(appConfig)
	if err != nil {
		return 0, err
	}
	if fluentClient != nil {
		defer fluentClient.Close()
	}
	ctx = contextkeys.ContextWithLogger(ctx, baseLogger)

	store, err := openStorage(ctx, appConfig)
	if err != nil {
		return 0, err
	}
	if store.pool != nil {
		defer store.pool.Close()
	}
	return usecase.NewSeedDemoDataUseCase(store.properties, store.profiles).Execute(ctx)
}

// Migrate применяет встроенные миграции к DATABASE_URL и сразу закрывает пул
func Migrate(ctx context.Context, appConfig *configs.AppConfig) ([]string, error) {
	if appConfig.Storage.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required to run migrations")
	}
	baseLogger, fluentClient, err := newLoggers(appConfig)
	if err != nil {
		return nil, err
	}
	if fluentClient != nil {
		defer fluentClient.Close()
	}

	pool, err := postgres_adapter.NewClient(ctx, postgres_adapter.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	return postgres_adapter.Migrate(contextkeys.ContextWithLogger(ctx, baseLogger), pool)
}

// IssueToken выпускает токен для разработки, подписанный JWT_SIGNING_KEY
func IssueToken(ctx context.Context, appConfig *configs.AppConfig, identity domain.Identity, ttl time.Duration) (string, error) {
	tokenService, err := token_adapter.NewTokenService(appConfig.Auth.JWTSigningKey, appConfig.Auth.JWTIssuer)
	if err != nil {
		return "", err
	}
	return tokenService.GenerateToken(ctx, identity, ttl)
}

// openStorage для postgres сразу применяет миграции
func openStorage(ctx context.Context, appConfig *configs.AppConfig) (*storage, error) {
	switch appConfig.Storage.Driver {
	case configs.StorageDriverMemory:
		store := memory.NewStore()
		return &storage{
			properties: memory.NewPropertyRepository(store),
			inquiries:  memory.NewInquiryRepository(store),
			profiles:   memory.NewProfileRepository(store),
		}, nil
	case configs.StorageDriverPostgres:
		pool, err := postgres_adapter.NewClient(ctx, postgres_adapter.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		if _, err := postgres_adapter.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		return &storage{
			properties: postgres_adapter.NewPropertyRepository(pool),
			inquiries:  postgres_adapter.NewInquiryRepository(pool),
			profiles:   postgres_adapter.NewProfileRepository(pool),
			pool:       pool,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", appConfig.Storage.Driver)
	}
}

func newLoggers(appConfig *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		var err error
		fluentClient, err = logger_adapter.NewFluentClient(logger_adapter.FluentConfig{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	baseLogger.WithFields(port.Fields{"component": "app"}).Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
