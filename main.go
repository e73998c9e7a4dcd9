package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/pallala1989/beauty-plaza-online-hub-sub000/config"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/cron"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/database"
	appointmentRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/appointment"
	catalogRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/catalog"
	technicianRepo "github.com/pallala1989/beauty-plaza-online-hub-sub000/database/repository/technician"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/handlers"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/middleware"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/models"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/routes"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/booking"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/loyalty"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/services/notification"
	"github.com/pallala1989/beauty-plaza-online-hub-sub000/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// The slot grid is fixed for the whole process lifetime.
	grid, err := models.NewSlotGrid(
		config.AppConfig.SalonOpen,
		config.AppConfig.SalonClose,
		config.AppConfig.SlotIntervalMin,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid slot grid configuration: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}
	// Listing reads are served through the generic cache; id lookups on the
	// booking path always go to Mongo.
	listingCache := utils.RedisStringCache{Client: utils.GetCacheClient()}
	techRepo := technicianRepo.NewCachedTechnicianRepo(technicianRepo.NewMongoTechnicianRepo(), listingCache, 5*time.Minute)
	svcRepo := catalogRepo.NewCachedServiceRepo(catalogRepo.NewMongoServiceRepo(), listingCache, 5*time.Minute)

	// Collaborators.
	loyaltyLedger := loyalty.NewRedisLedger(utils.GetLoyaltyCacheClient())
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()
	notifier := notification.NewQueueSender(asynqClient)

	// Services.
	bookingService := &booking.DefaultBookingService{
		Repo:          apptRepo,
		Technicians:   techRepo,
		Catalog:       svcRepo,
		Loyalty:       loyaltyLedger,
		Notifier:      notifier,
		Grid:          grid,
		ClosedWeekday: time.Weekday(config.AppConfig.ClosedWeekday),
		InHomeFee:     config.AppConfig.InHomeFee,
		PointsPerUnit: config.AppConfig.LoyaltyPointsPerDollar,
	}

	// Handlers.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Catalog: handlers.NewCatalogHandler(svcRepo, techRepo),
		Loyalty: handlers.NewLoyaltyHandler(loyaltyLedger),
		Admin:   handlers.NewAdminHandler(bookingService, apptRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitNotificationWorker()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetLoyaltyCacheClient()},
		database.MongoClient,
	)

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
