package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resmoke/handlers"
	"resmoke/middleware"
	"resmoke/utils"
)

// RegisterBookingRoutes sets up the wizard session endpoints. Every step of
// the flow reads and mutates its session through these.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.POST("/session", hb.CreateSession)
		api.GET("/session/:sessionID", hb.GetSession)
		api.DELETE("/session/:sessionID", hb.ResetSession)

		// One endpoint per field group; each performs a single atomic
		// replace of its group.
		api.PUT("/session/:sessionID/booking-for", hb.UpdateBookingFor)
		api.PUT("/session/:sessionID/personal", hb.UpdatePersonalDetails)
		api.PUT("/session/:sessionID/address", hb.UpdateAddressDetails)
		api.PUT("/session/:sessionID/landlord", hb.UpdateLandlordDetails)
		api.PUT("/session/:sessionID/owner", hb.UpdateOwnerDetails)
		api.PUT("/session/:sessionID/company", hb.UpdateCompanyDetails)
		api.PUT("/session/:sessionID/items", hb.UpdateItemsToRepair)
		api.PUT("/session/:sessionID/problems", hb.UpdateProblemDescriptions)
		api.PUT("/session/:sessionID/payment", hb.UpdatePaymentMethods)
		api.PUT("/session/:sessionID/billing", hb.UpdateBillingInformation)
		api.PUT("/session/:sessionID/terms", hb.UpdateTermsAgreement)
		api.PUT("/session/:sessionID/datetime", hb.UpdateSelectedDateTime)
		api.PUT("/session/:sessionID/service-path", hb.UpdateServicePath)
		api.PUT("/session/:sessionID/service-type", hb.UpdateServiceType)

		api.POST("/session/:sessionID/availability", hb.FetchAvailability)
		api.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
	}
}

// RegisterCatalogRoutes sets up the static option-list endpoints the wizard
// pages render from.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/repair-items", hb.GetRepairItems)
		api.GET("/payment-methods", hb.GetPaymentMethods)
		api.GET("/address-options", hb.GetAddressOptions)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/bookings", hb.GetAllBookings)
		adminGroup.GET("/bookings/:id", hb.GetBookingByID)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Resmoke",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
