// File: coachdesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coachdesk/config"
	"coachdesk/database"
	availabilityRepo "coachdesk/database/repository/availability"
	eventRepo "coachdesk/database/repository/event"
	intakeRepo "coachdesk/database/repository/intake"
	orgRepoPkg "coachdesk/database/repository/organization"
	"coachdesk/handlers"
	"coachdesk/middleware"
	"coachdesk/routes"
	"coachdesk/services/availability"
	"coachdesk/services/calendar"
	"coachdesk/services/organization"
	"coachdesk/services/scheduling"
	"coachdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	evRepo := eventRepo.NewMongoEventRepo()
	inRepo := intakeRepo.NewMongoIntakeConfigRepo()
	orgRepo := orgRepoPkg.NewMongoOrgRepo()

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  availRepo,
		Cache: utils.GetCacheClient(),
	}

	organizationService := &organization.DefaultOrganizationService{
		Repo: orgRepo,
	}

	schedulingService := &scheduling.DefaultSchedulingService{
		AvailabilitySvc: availabilityService,
		EventRepo:       evRepo,
		IntakeRepo:      inRepo,
		BusyFetcher:     calendar.NewICSFetcher(),
	}

	// handlers.
	orgHandler := handlers.NewOrganizationHandler(organizationService)
	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	eventHandler := handlers.NewEventHandler(schedulingService)
	intakeHandler := handlers.NewIntakeConfigHandler(inRepo)
	funnelHandler := handlers.NewFunnelHandler(schedulingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OrgRepo: orgRepo,

		// Organization endpoints.
		RegisterOrganizationHandler:     orgHandler.RegisterOrganizationHandler,
		AuthenticateOrganizationHandler: orgHandler.AuthenticateOrganizationHandler,
		GetOrganizationHandler:          orgHandler.GetOrganizationHandler,

		// Scheduling endpoints.
		GetAvailableSlotsHandler: schedulingHandler.GetAvailableSlotsHandler,

		// Availability settings endpoints.
		GetAvailabilityHandler:    availabilityHandler.GetAvailabilityHandler,
		UpdateAvailabilityHandler: availabilityHandler.UpdateAvailabilityHandler,
		AddBlockedSlotHandler:     availabilityHandler.AddBlockedSlotHandler,
		RemoveBlockedSlotHandler:  availabilityHandler.RemoveBlockedSlotHandler,

		// Event endpoints.
		ListEventsHandler:  eventHandler.ListEventsHandler,
		CreateEventHandler: eventHandler.CreateEventHandler,
		CancelEventHandler: eventHandler.CancelEventHandler,

		// Intake config endpoints.
		ListIntakeConfigsHandler:  intakeHandler.ListIntakeConfigsHandler,
		CreateIntakeConfigHandler: intakeHandler.CreateIntakeConfigHandler,
		UpdateIntakeConfigHandler: intakeHandler.UpdateIntakeConfigHandler,
		DeleteIntakeConfigHandler: intakeHandler.DeleteIntakeConfigHandler,

		// Funnel endpoints.
		GetFunnelSlotsHandler: funnelHandler.GetFunnelSlotsHandler,
		BookFunnelSlotHandler: funnelHandler.BookFunnelSlotHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic health snapshot for the /health endpoint.
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

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
