package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all endpoint handlers for route registration.
type HandlerBundle struct {
	// Booking session endpoints.
	CreateSession             gin.HandlerFunc
	GetSession                gin.HandlerFunc
	ResetSession              gin.HandlerFunc
	UpdateBookingFor          gin.HandlerFunc
	UpdatePersonalDetails     gin.HandlerFunc
	UpdateAddressDetails      gin.HandlerFunc
	UpdateLandlordDetails     gin.HandlerFunc
	UpdateOwnerDetails        gin.HandlerFunc
	UpdateCompanyDetails      gin.HandlerFunc
	UpdateItemsToRepair       gin.HandlerFunc
	UpdateProblemDescriptions gin.HandlerFunc
	UpdatePaymentMethods      gin.HandlerFunc
	UpdateBillingInformation  gin.HandlerFunc
	UpdateTermsAgreement      gin.HandlerFunc
	UpdateSelectedDateTime    gin.HandlerFunc
	UpdateServicePath         gin.HandlerFunc
	UpdateServiceType         gin.HandlerFunc

	// Gateway endpoints.
	FetchAvailability gin.HandlerFunc
	ConfirmBooking    gin.HandlerFunc

	// Catalog endpoints.
	GetRepairItems    gin.HandlerFunc
	GetPaymentMethods gin.HandlerFunc
	GetAddressOptions gin.HandlerFunc

	// Admin endpoints.
	GetAllBookings gin.HandlerFunc
	GetBookingByID gin.HandlerFunc
}
