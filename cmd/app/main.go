package main

import (
	"fmt"
	nethttp "net/http"
	"os"

	"riderspool/cmd"
	httpadapter "riderspool/internal/adapters/in/http"
	"riderspool/internal/adapters/out/notify"
	"riderspool/internal/adapters/out/postgres/feedbackrepo"
	"riderspool/internal/adapters/out/postgres/interviewrepo"
	"riderspool/internal/adapters/out/postgres/officelocationrepo"
	"riderspool/internal/adapters/out/postgres/providerrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&interviewrepo.InterviewDTO{},
		&feedbackrepo.FeedbackDTO{},
		&officelocationrepo.OfficeLocationDTO{},
		&providerrepo.ProviderDTO{},
		&notify.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateInterviewCommandHandler(),
		app.CreateConfirmInterviewCommandHandler(),
		app.CreateCancelInterviewCommandHandler(),
		app.CreateRescheduleInterviewCommandHandler(),
		app.CreateCompleteInterviewCommandHandler(),
		app.CreateMarkHiredCommandHandler(),
		app.CreateSubmitFeedbackCommandHandler(),
		app.CreateGetInterviewsQueryHandler(),
		app.CreateGetOfficeLocationsQueryHandler(),
		app.CreateGetProviderFeedbackQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
