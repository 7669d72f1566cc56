package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"orders/cmd"
	"orders/docs"
	httpadapter "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Orders Service API
// @version 1.0
// @description Order lifecycle management for the retail back office.
// @BasePath /api/v1
func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:   envOr("HTTP_PORT", "8080"),
		DBHost:     envOr("DB_HOST", "localhost"),
		DBPort:     envOr("DB_PORT", "5432"),
		DBUser:     envOr("DB_USER", "postgres"),
		DBPassword: envOr("DB_PASSWORD", "postgres"),
		DBName:     envOr("DB_NAME", "orders"),
		DBSslMode:  envOr("DB_SSLMODE", "disable"),

		CustomerServiceURL:                  envOr("CUSTOMER_SERVICE_URL", "http://localhost:8081"),
		CustomerServiceTimeout:              envDuration("CUSTOMER_SERVICE_TIMEOUT"),
		CustomerServiceMaxRetries:           uint64(envInt("CUSTOMER_SERVICE_MAX_RETRIES")),
		CustomerServiceRetryInitialInterval: envDuration("CUSTOMER_SERVICE_RETRY_INITIAL_INTERVAL"),
		CustomerServiceRetryMaxInterval:     envDuration("CUSTOMER_SERVICE_RETRY_MAX_INTERVAL"),
		CustomerServiceBreakerFailureRatio:  envFloat("CUSTOMER_SERVICE_BREAKER_FAILURE_RATIO"),
		CustomerServiceBreakerMinRequests:   uint32(envInt("CUSTOMER_SERVICE_BREAKER_MIN_REQUESTS")),
		CustomerServiceBreakerInterval:      envDuration("CUSTOMER_SERVICE_BREAKER_INTERVAL"),
		CustomerServiceBreakerOpenTimeout:   envDuration("CUSTOMER_SERVICE_BREAKER_OPEN_TIMEOUT"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// envDuration returns zero when unset; zero means "use the built-in default".
func envDuration(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration in %s: %v", key, err)
	}
	return parsed
}

func envInt(key string) int {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer in %s: %v", key, err)
	}
	return parsed
}

func envFloat(key string) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid float in %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", port)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrdersByCustomerQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
