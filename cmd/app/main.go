package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/queue/kafkaqueue"
	"fulfillment/internal/adapters/out/queue/redisqueue"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	queue := mustCreateQueue(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, queue)

	jobManager := jobs.NewJobManager(app.CreateProcessShipmentBatchCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		QueueDriver:         goDotEnvVariable("QUEUE_DRIVER"),
		RedisAddr:           goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:           goDotEnvVariable("KAFKA_HOST"),
		KafkaConsumerGroup:  goDotEnvVariable("KAFKA_CONSUMER_GROUP"),
		KafkaShipmentsTopic: goDotEnvVariable("KAFKA_SHIPMENTS_TOPIC"),
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
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&shipmentrepo.ShipmentDTO{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	return gormDB
}

func mustCreateQueue(configs cmd.Config) ports.ShipmentQueue {
	switch configs.QueueDriver {
	case "kafka":
		return kafkaqueue.NewQueue(
			strings.Split(configs.KafkaHost, ","),
			configs.KafkaShipmentsTopic,
			configs.KafkaConsumerGroup,
		)
	case "redis", "":
		return redisqueue.NewQueue(redis.NewClient(&redis.Options{Addr: configs.RedisAddr}))
	default:
		log.Fatalf("Unknown queue driver: %s", configs.QueueDriver)
		return nil
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCompleteShipmentCommandHandler(),
		app.CreateFailShipmentCommandHandler(),
		app.CreateGetShipmentStatusQueryHandler(),
		app.CreateListShippingTypesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
