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

	"foodbank/cmd"
	"foodbank/internal/adapters/out/postgres/orderrepo"
	"foodbank/internal/adapters/out/postgres/settingsrepo"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	location := mustLoadLocation(configs.Timezone)

	app := cmd.NewCompositionRoot(configs, gormDB, location)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
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
		Timezone:           goDotEnvVariable("TIMEZONE"),
		SMTPHost:           goDotEnvVariable("SMTP_HOST"),
		SMTPPort:           goDotEnvVariable("SMTP_PORT"),
		SMTPUsername:       goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword:       goDotEnvVariable("SMTP_PASSWORD"),
		SMTPFrom:           goDotEnvVariable("SMTP_FROM"),
		StaffInbox:         goDotEnvVariable("STAFF_INBOX"),
		PartnerEmailDomain: goDotEnvVariable("PARTNER_EMAIL_DOMAIN"),
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
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError maps unique index violations to gorm.ErrDuplicatedKey,
	// which the order repository relies on for slot conflicts.
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &settingsrepo.SettingsDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func mustLoadLocation(timezone string) *time.Location {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", timezone, err)
	}
	return location
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
