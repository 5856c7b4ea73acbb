// Package main реализует точку входа сервиса учетных записей.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"gogetaccount/internal/account/adapters/cache"
	accounthttp "gogetaccount/internal/account/adapters/http"
	"gogetaccount/internal/account/adapters/postgres"
	"gogetaccount/internal/account/adapters/services"
	"gogetaccount/internal/account/app"
	"gogetaccount/internal/account/app/controllers"
	"gogetaccount/internal/account/app/decorators"
	"gogetaccount/internal/account/app/validation"
	"gogetaccount/internal/account/config"
	"gogetaccount/internal/account/db"
	"gogetaccount/pkg/db/redis"
	"gogetaccount/pkg/logger"
	"gogetaccount/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "ACCOUNT_LOGGER_MODE"
	EnvLoggerLevel = "ACCOUNT_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to connect to redis"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "account service started"
	LogServiceShutdownDone = "account service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitControllers     = "initializing controllers"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redis.NewClient(ctx, cfg.Redis.ToRedis())
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		accountRepo := repoFactory.AccountRepository()
		logRepo := repoFactory.LogRepository()
		tokenRepo := cache.NewAccessTokenRepository(redisClient.RawClient(), cfg.JWT.AccessTokenTTL)

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.TokenConfig(), cfg.JWT.BCryptCost)
		emailValidator := serviceFactory.EmailValidator()

		log.Info(ctx, LogInitUseCases)
		addAccount := app.NewAddAccount(serviceFactory.Encrypter(), accountRepo)
		authenticator := app.NewAuthenticator(accountRepo, serviceFactory.HashComparer(), serviceFactory.TokenGenerator(), tokenRepo)
		authentication := app.NewAuthentication(authenticator)

		log.Info(ctx, LogInitControllers)
		signUp := decorators.NewLogControllerDecorator(
			controllers.NewSignUpController(validation.NewSignUpValidation(emailValidator), addAccount),
			logRepo,
		)
		login := decorators.NewLogControllerDecorator(
			controllers.NewLoginController(validation.NewLoginValidation(emailValidator), authentication),
			logRepo,
		)

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		accounthttp.SetupRouter(server, accounthttp.Routes{
			SignUp:   signUp,
			Login:    login,
			Registry: registry,
			Health: map[string]accounthttp.HealthCheck{
				"postgres": database.Ping,
				"redis": func(ctx context.Context) error {
					return redisClient.RawClient().Ping(ctx).Err()
				},
			},
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		// Сначала дожидаемся завершения запросов, затем освобождаем хранилища.
		// Хранилища закрываются даже при ошибке остановки сервера.
		shutdown.Wait(ctx, cfg.Shutdown.Timeout,
			shutdown.Sequence(
				func(ctx context.Context) error {
					log.Info(ctx, LogStoppingHTTP)
					return server.ShutdownWithContext(ctx)
				},
				func(ctx context.Context) error {
					log.Info(ctx, LogClosingRedis)
					return redisClient.Close(ctx)
				},
				func(ctx context.Context) error {
					log.Info(ctx, LogClosingDB)
					database.Close(ctx)
					return nil
				},
			),
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
