package main

import (
	"fmt"
	"log/slog"
	"os"

	"orderservice/cmd"
	orderhttp "orderservice/internal/adapters/in/http"
	"orderservice/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
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
		CustomerServiceURL:     goDotEnvVariable("CUSTOMER_SERVICE_URL"),
		RestaurantServiceURL:   goDotEnvVariable("RESTAURANT_SERVICE_URL"),
		PaymentServiceURL:      goDotEnvVariable("PAYMENT_SERVICE_URL"),
		DeliveryServiceURL:     goDotEnvVariable("DELIVERY_SERVICE_URL"),
		NotificationServiceURL: goDotEnvVariable("NOTIFICATION_SERVICE_URL"),
		OutboundTimeout:        os.Getenv("OUTBOUND_TIMEOUT"),
		StalledOrderMaxAge:     os.Getenv("STALLED_ORDER_MAX_AGE"),
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

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)
	return gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	doc, err := orderhttp.LoadOpenAPIDocument()
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}

	validate, err := orderhttp.RequestValidationMiddleware(doc)
	if err != nil {
		log.Fatalf("Failed to build request validation middleware: %v", err)
	}

	e := echo.New()
	e.Use(orderhttp.CorrelationMiddleware(), validate)

	createOrderHandler := app.CreateCreateOrderCommandHandler()
	server := orderhttp.NewServer(&createOrderHandler, app.CreateGetOrderQueryHandler())

	e.POST("/v1/orders", server.CreateOrder)
	e.GET("/v1/orders/:order_id", server.GetOrder)
	e.GET("/health", server.Health)
	e.GET("/openapi.json", orderhttp.OpenAPIHandler(doc))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
