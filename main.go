package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonapi/config"
	"salonapi/database"
	catalogRepo "salonapi/database/repository/catalog"
	partyRepo "salonapi/database/repository/party"
	scheduleRepo "salonapi/database/repository/schedule"
	"salonapi/handlers"
	"salonapi/middleware"
	"salonapi/routes"
	"salonapi/services/account"
	"salonapi/services/catalog"
	"salonapi/services/scheduling"
	"salonapi/utils"

	"github.com/gin-gonic/gin"

	schedcron "salonapi/cron"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	parties := partyRepo.NewMongoPartyRepo()
	bookings := scheduleRepo.NewMongoBookingRepo()
	leaves := scheduleRepo.NewMongoLeaveRepo()
	catalogStore := catalogRepo.NewMongoCatalogRepo()

	// services.
	ledger := &scheduling.AvailabilityLedger{Bookings: bookings, Leaves: leaves}
	staffLocks := scheduling.NewStaffLocks()

	bookingService := &scheduling.DefaultBookingService{
		Repo:    bookings,
		Parties: parties,
		Ledger:  ledger,
		Locks:   staffLocks,
		Logger:  logger,
	}
	leaveService := &scheduling.DefaultLeaveService{
		Repo:    leaves,
		Parties: parties,
		Ledger:  ledger,
		Locks:   staffLocks,
		Logger:  logger,
	}
	accountService := &account.DefaultAccountService{
		Identity: utils.AuthClient,
		Parties:  parties,
		Logger:   logger,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:     catalogStore,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.CatalogCacheTTL) * time.Second,
		Logger:   logger,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(accountService, logger),
		Staff:    handlers.NewStaffHandler(parties, logger),
		Services: handlers.NewServicesHandler(catalogService, logger),
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Leaves:   handlers.NewLeaveHandler(leaveService, logger),
		Verifier: utils.AuthClient,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background repair of booking mirrors.
	reconciler := schedcron.StartMirrorReconciler(bookings, parties, logger)
	defer reconciler.Stop()

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
