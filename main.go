// main.go
package main

import (
	"context"
	"net/http"

	"plantnet/config"
	"plantnet/controllers"
	"plantnet/logger"
	"plantnet/middleware"
	"plantnet/notify"
	"plantnet/routes"
	"plantnet/store"
	"plantnet/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	// Load environment configuration
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Connect to MongoDB
	client := utils.ConnectDB(cfg.MongoURI)
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	logger.Info("connected to MongoDB", zap.String("database", cfg.DBName))

	stores := store.New(client, cfg.DBName)

	// Outbound collaborators
	emailService := utils.NewEmailService(cfg.SendGridAPIKey, cfg.EmailSender)
	notifications := notify.NewQueue(emailService, 64, 2)
	defer notifications.Shutdown()

	paymentService := utils.NewPaymentService(cfg.StripeSecretKey)

	// Initialize controllers
	authController := controllers.NewAuthController(cfg.IsProduction())
	userController := controllers.NewUserController(stores.Users)
	plantController := controllers.NewPlantController(stores.Plants)
	orderController := controllers.NewOrderController(stores.Orders, notifications)
	adminController := controllers.NewAdminController(stores.Users, stores.Plants, stores.Orders)
	paymentController := controllers.NewPaymentController(stores.Plants, paymentService)

	// Set up the router
	router := mux.NewRouter()
	gate := &middleware.Gate{Users: stores.Users}
	routes.RegisterRoutes(router, gate,
		authController, userController, plantController,
		orderController, adminController, paymentController)

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RateLimitMiddleware)

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	logger.Info("plantNet server running", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, cors(router)); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
