package main

import (
	"fmt"
	"log/slog"
	"os"

	"laundryops/cmd"
	httpadapter "laundryops/internal/adapters/in/http"
	"laundryops/internal/adapters/out/postgres/batchrepo"
	"laundryops/internal/adapters/out/postgres/branchrepo"
	"laundryops/internal/adapters/out/postgres/driverrepo"
	"laundryops/internal/adapters/out/postgres/notificationrepo"
	"laundryops/internal/adapters/out/postgres/orderrepo"
	"laundryops/internal/adapters/out/postgres/reminderrepo"
	"laundryops/internal/adapters/out/postgres/transferrepo"
	"laundryops/internal/adapters/out/rabbitmq"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	publisher, err := rabbitmq.NewPublisher(configs.RabbitMqURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager(publisher, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:    goDotEnvVariable("HTTP_PORT"),
		DBHost:      goDotEnvVariable("DB_HOST"),
		DBPort:      goDotEnvVariable("DB_PORT"),
		DBUser:      goDotEnvVariable("DB_USER"),
		DBPassword:  goDotEnvVariable("DB_PASSWORD"),
		DBName:      goDotEnvVariable("DB_NAME"),
		DBSslMode:   goDotEnvVariable("DB_SSLMODE"),
		RabbitMqURL: goDotEnvVariable("RABBITMQ_URL"),
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

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PaymentDTO{},
		&orderrepo.ClassificationOverrideDTO{},
		&orderrepo.TagSequenceDTO{},
		&branchrepo.BranchDTO{},
		&batchrepo.ProcessingBatchDTO{},
		&batchrepo.ProcessingBatchMemberDTO{},
		&batchrepo.ProcessingBatchStaffDTO{},
		&transferrepo.TransferBatchDTO{},
		&transferrepo.TransferBatchMemberDTO{},
		&driverrepo.DriverDTO{},
		&reminderrepo.ReminderDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateRouteOrderCommandHandler(),
		app.CreateClassifyOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateRecordPaymentCommandHandler(),
		app.CreateCreateProcessingBatchCommandHandler(),
		app.CreateStartProcessingBatchCommandHandler(),
		app.CreateCompleteProcessingBatchCommandHandler(),
		app.CreateArriveTransferCommandHandler(),
		app.CreateGetOrderSummaryQueryHandler(),
		app.CreateGetBranchMetricsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
