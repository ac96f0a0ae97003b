// File: swiftmove/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swiftmove/config"
	"swiftmove/cron"
	"swiftmove/database"
	bookingRepoPkg "swiftmove/database/repository/booking"
	catalogRepoPkg "swiftmove/database/repository/catalog"
	promoRepoPkg "swiftmove/database/repository/promo"
	scheduleRepoPkg "swiftmove/database/repository/schedule"
	"swiftmove/handlers"
	"swiftmove/middleware"
	"swiftmove/routes"
	"swiftmove/services/catalog"
	"swiftmove/services/confirmation"
	"swiftmove/services/payment"
	"swiftmove/services/promo"
	"swiftmove/services/quote"
	"swiftmove/services/schedule"
	"swiftmove/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitDedupCache()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()

	// background queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:        scheduleRepo,
		BookingRepo: bookingRepo,
		Logger:      logger,
	}

	quoteService := &quote.DefaultQuoteService{
		BookingRepo: bookingRepo,
		CatalogRepo: catalogRepo,
		Schedule:    scheduleService,
		Sessions:    quote.NewRedisSessionStore(utils.GetSessionCacheClient()),
		Rates:       quote.DefaultRateCard(),
		Logger:      logger,
	}

	promoService := &promo.DefaultPromoService{
		Repo:        promoRepo,
		BookingRepo: bookingRepo,
		Limiter:     promo.NewRedisAttemptLimiter(utils.GetDedupCacheClient()),
		Logger:      logger,
	}

	paymentService := &payment.DefaultPaymentService{
		BookingRepo: bookingRepo,
		Checkout:    payment.StripeCheckoutClient{},
		Wizard:      quoteService,
		SuccessURL:  config.AppConfig.CheckoutSuccessURL,
		CancelURL:   config.AppConfig.CheckoutCancelURL,
		Logger:      logger,
	}

	confirmationService := &confirmation.DefaultConfirmationService{
		BookingRepo: bookingRepo,
		Dedup:       confirmation.NewRedisDedupStore(utils.GetDedupCacheClient()),
		Queue:       confirmation.NewAsynqQueue(queueClient),
		Logger:      logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo:   catalogRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}

	// Background confirmation worker.
	cron.InitConfirmationWorker(cron.LogNotifier{})

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(quoteService, confirmationService, bookingRepo, logger),
		Session:  handlers.NewQuoteSessionHandler(quoteService, logger),
		Promo:    handlers.NewPromoHandler(promoService, logger),
		Payment:  handlers.NewPaymentHandler(paymentService, logger),
		Catalog:  handlers.NewCatalogHandler(catalogService, logger),
		Schedule: handlers.NewScheduleHandler(scheduleService, logger),
		Admin:    handlers.NewAdminHandler(catalogService, scheduleRepo, bookingRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetDedupCacheClient(),
		utils.GetCacheClient(),
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
