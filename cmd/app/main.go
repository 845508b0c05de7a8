package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderdesk/cmd"
	httpin "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/jobs"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateExpireStaleDispatchRequestsCommandHandler(),
		configs.DispatchConfirmTTL,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		ExtAPIBaseURL:      goDotEnvVariable("EXT_API_BASE_URL"),
		ExtAPITimeout:      goDotEnvDuration("EXT_API_TIMEOUT", 30*time.Second),
		DispatchConfirmTTL: goDotEnvDuration("DISPATCH_CONFIRM_TTL", 24*time.Hour),
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

func goDotEnvDuration(key string, fallback time.Duration) time.Duration {
	value := goDotEnvVariable(key)
	if value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return d
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderFieldCommandHandler(),
		app.CreateAddOrderLineCommandHandler(),
		app.CreateRemoveOrderLineCommandHandler(),
		app.CreateChangeDispatchStatusCommandHandler(),
		app.CreateConfirmDispatchChangeCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetUndeliveredOrdersQueryHandler(),
	)
	httpin.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
