package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingsRepo "resmoke/database/repository/bookings"
	"resmoke/models"
	"resmoke/utils"
)

// AdminHandler exposes the operational read-only views over persisted
// bookings.
type AdminHandler struct {
	Bookings bookingsRepo.BookingRepository
	Logger   *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(bookings bookingsRepo.BookingRepository, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Logger: logger}
}

// GetAllBookingsHandler lists every persisted booking, newest first.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	docs, err := h.Bookings.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	if docs == nil {
		docs = []models.BookingDocument{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": docs})
}

// GetBookingByIDHandler fetches one persisted booking by its ID.
func (h *AdminHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookingsRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
			return
		}
		h.Logger.Error("failed to fetch booking", zap.String("bookingID", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": doc})
}
