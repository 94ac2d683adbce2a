package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pedidos/cmd"
	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/adapters/out/postgres/outboxrepo"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB := mustOpenDatabase(configs)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatalf("Error loading AWS configuration: %v", err)
	}
	sqsClient := sqs.NewFromConfig(awsCfg)

	app := cmd.NewCompositionRoot(configs, gormDB, sqsClient, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	paymentConsumer := app.CreatePaymentConfirmationConsumer()
	erasureConsumer := app.CreateCustomerErasureConsumer()
	paymentConsumer.Start(workerCtx)
	erasureConsumer.Start(workerCtx)

	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			logger.Info("http server stopped", "reason", startErr.Error())
		}
	}()

	waitForShutdownSignal(logger)

	stopWorkers()
	paymentConsumer.Stop()
	erasureConsumer.Stop()
	jobManager.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}

func waitForShutdownSignal(logger *slog.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	received := <-signals
	logger.Info("shutting down", "signal", received.String())
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &outboxrepo.MessageDTO{}); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	return gormDB
}

func getConfigs() cmd.Config {
	// Best effort: a missing .env means settings come from the process
	// environment, as in containerized deployments.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "pedidos"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		PaymentConfirmationQueueURL: os.Getenv("PAYMENT_CONFIRMATION_QUEUE_URL"),
		CustomerErasureQueueURL:     os.Getenv("CUSTOMER_ERASURE_QUEUE_URL"),
		NotificationQueueURL:        os.Getenv("NOTIFICATION_QUEUE_URL"),

		CatalogBaseURL:   envOr("CATALOG_BASE_URL", "http://localhost:8081"),
		DirectoryBaseURL: envOr("DIRECTORY_BASE_URL", "http://localhost:8082"),

		ClientTimeout:    durationOr("CLIENT_TIMEOUT", 5*time.Second),
		ClientMaxElapsed: durationOr("CLIENT_MAX_ELAPSED", 30*time.Second),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return parsed
}
