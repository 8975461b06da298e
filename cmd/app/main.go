package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch/cmd"
	"dispatch/internal/adapters/out/postgres/deliveryrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultPurgeSchedule  = "0 * * * *"
	defaultPurgeRetention = 30 * 24 * time.Hour
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// Missing .env is fine in containerized deployments where configuration
	// arrives through the environment.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:       envOr("HTTP_PORT", "8080"),
		DBHost:         envOr("DB_HOST", "localhost"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         envOr("DB_USER", "postgres"),
		DBPassword:     envOr("DB_PASSWORD", "postgres"),
		DBName:         envOr("DB_NAME", "dispatch"),
		DBSslMode:      envOr("DB_SSLMODE", "disable"),
		PurgeSchedule:  envOr("PURGE_SCHEDULE", defaultPurgeSchedule),
		PurgeRetention: retentionFromEnv(),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func retentionFromEnv() time.Duration {
	raw := os.Getenv("PURGE_RETENTION")
	if raw == "" {
		return defaultPurgeRetention
	}

	retention, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid PURGE_RETENTION %q: %v", raw, err)
	}
	return retention
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	// Pin GORM to the lib/pq driver so constraint violations surface as
	// *pq.Error, which the repository layer maps onto the error taxonomy.
	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		DriverName: "postgres",
		DSN:        dsn,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := gormDB.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			e.Logger.Info("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
