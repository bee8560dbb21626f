// File: resmoke/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resmoke/config"
	"resmoke/database"
	bookingsRepo "resmoke/database/repository/bookings"
	"resmoke/handlers"
	"resmoke/middleware"
	"resmoke/routes"
	"resmoke/services/booking"
	"resmoke/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingsRepo.NewMongoBookingRepo()
	sessionRepo := booking.NewRedisSessionRepository(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	// services.
	gateway := booking.NewGateway(
		config.AppConfig.AvailabilityWebhookURL,
		config.AppConfig.ConfirmationWebhookURL,
		bookingRepo,
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(sessionRepo, gateway, logger)
	adminHandler := handlers.NewAdminHandler(bookingRepo, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking session endpoints.
		CreateSession:             bookingHandler.CreateSession,
		GetSession:                bookingHandler.GetSession,
		ResetSession:              bookingHandler.ResetSession,
		UpdateBookingFor:          bookingHandler.UpdateBookingFor,
		UpdatePersonalDetails:     bookingHandler.UpdatePersonalDetails,
		UpdateAddressDetails:      bookingHandler.UpdateAddressDetails,
		UpdateLandlordDetails:     bookingHandler.UpdateLandlordDetails,
		UpdateOwnerDetails:        bookingHandler.UpdateOwnerDetails,
		UpdateCompanyDetails:      bookingHandler.UpdateCompanyDetails,
		UpdateItemsToRepair:       bookingHandler.UpdateItemsToRepair,
		UpdateProblemDescriptions: bookingHandler.UpdateProblemDescriptions,
		UpdatePaymentMethods:      bookingHandler.UpdatePaymentMethods,
		UpdateBillingInformation:  bookingHandler.UpdateBillingInformation,
		UpdateTermsAgreement:      bookingHandler.UpdateTermsAgreement,
		UpdateSelectedDateTime:    bookingHandler.UpdateSelectedDateTime,
		UpdateServicePath:         bookingHandler.UpdateServicePath,
		UpdateServiceType:         bookingHandler.UpdateServiceType,

		// Gateway endpoints.
		FetchAvailability: bookingHandler.FetchAvailability,
		ConfirmBooking:    bookingHandler.ConfirmBooking,

		// Catalog endpoints.
		GetRepairItems:    handlers.GetRepairItemsHandler,
		GetPaymentMethods: handlers.GetPaymentMethodsHandler,
		GetAddressOptions: handlers.GetAddressOptionsHandler,

		// Admin endpoints.
		GetAllBookings: adminHandler.GetAllBookingsHandler,
		GetBookingByID: adminHandler.GetBookingByIDHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
