package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"medcourier/cmd"
	httpin "medcourier/internal/adapters/in/http"
	"medcourier/internal/adapters/out/postgres/approvaldto"
	"medcourier/internal/adapters/out/postgres/centerrepo"
	"medcourier/internal/adapters/out/postgres/handoverrepo"
	"medcourier/internal/adapters/out/postgres/hospitalrepo"
	"medcourier/internal/adapters/out/postgres/orderrepo"
	"medcourier/internal/adapters/out/postgres/qrrepo"
	"medcourier/internal/adapters/out/postgres/riderrepo"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db := mustOpenDatabase(configs)
	app := cmd.NewCompositionRoot(configs, db, logger)
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close composition root", "error", err)
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:               goDotEnvVariable("HTTP_PORT"),
		DBHost:                 goDotEnvVariable("DB_HOST"),
		DBPort:                 goDotEnvVariable("DB_PORT"),
		DBUser:                 goDotEnvVariable("DB_USER"),
		DBPassword:             goDotEnvVariable("DB_PASSWORD"),
		DBName:                 goDotEnvVariable("DB_NAME"),
		DBSslMode:              goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:              goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderChangedTopic: goDotEnvVariable("KAFKA_ORDER_CHANGED_TOPIC"),
		KafkaScanRecordedTopic: goDotEnvVariable("KAFKA_SCAN_RECORDED_TOPIC"),
		QRCodeTTL:              qrCodeTTL(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func qrCodeTTL() time.Duration {
	raw := goDotEnvVariable("QR_CODE_TTL")
	if raw == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid QR_CODE_TTL %q: %v", raw, err)
	}
	return ttl
}

// mustOpenDatabase connects to postgres and migrates the schema.
// TranslateError is required: duplicate scan detection relies on
// gorm.ErrDuplicatedKey surfacing from the scan ledger's unique index.
func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&riderrepo.RiderDTO{},
		&centerrepo.CenterDTO{},
		&hospitalrepo.HospitalDTO{},
		&approvaldto.ScopeDTO{},
		&approvaldto.DecisionDTO{},
		&qrrepo.CodeDTO{},
		&qrrepo.ScanEventDTO{},
		&qrrepo.DuplicateScanDTO{},
		&handoverrepo.HandoverDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	httpin.RegisterMetrics(e)
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
