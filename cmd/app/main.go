package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"shiplabel/cmd"
	httpadapter "shiplabel/internal/adapters/in/http"
	"shiplabel/internal/adapters/out/postgres/auditrepo"
	"shiplabel/internal/adapters/out/postgres/orderrepo"
	"shiplabel/internal/adapters/out/postgres/orgrepo"
	"shiplabel/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	location := mustLoadTimezone(configs.ScheduleTimezone)
	jobManager := app.CreateJobManager(location)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		CarrierBaseURL:   goDotEnvVariable("CARRIER_BASE_URL"),
		ScheduleTimezone: goDotEnvVariable("SCHEDULE_TIMEZONE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orgrepo.OrganizationDTO{},
		&auditrepo.AuditEntryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func mustLoadTimezone(name string) *time.Location {
	if name == "" {
		name = jobs.DefaultTimezone
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		log.Fatalf("Failed to load schedule timezone %q: %v", name, err)
	}
	return location
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateProcessOrderShippingCommandHandler(),
		app.CreateProcessBatchShippingCommandHandler(),
		app.CreateGetShippingResultQueryHandler(),
		app.OrganizationStore(),
		app.OrderStore(),
		app.CarrierService(),
		app.AuditLog(),
	)
	httpadapter.RegisterRoutes(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
