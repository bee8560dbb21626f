package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resmoke/models"
	"resmoke/services/booking"
	"resmoke/utils"
)

// BookingHandler exposes the wizard session endpoints. Each handler opens the
// store for the session in the URL, applies exactly one field-group mutation,
// and returns the updated snapshot. Validation of group contents happens on
// the wizard pages before these endpoints are called; the store accepts what
// it is given.
type BookingHandler struct {
	Sessions booking.SessionRepository
	Gateway  *booking.Gateway
	Logger   *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(sessions booking.SessionRepository, gateway *booking.Gateway, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Gateway: gateway, Logger: logger}
}

func (h *BookingHandler) openStore(c *gin.Context, sessionID string) (*booking.Store, bool) {
	store, err := booking.NewStore(c.Request.Context(), sessionID, h.Sessions)
	if err != nil {
		h.Logger.Error("failed to open booking session", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking session", err.Error())
		return nil, false
	}
	return store, true
}

// respondSnapshot writes the session's current record back to the client.
func respondSnapshot(c *gin.Context, store *booking.Store) {
	c.JSON(http.StatusOK, gin.H{
		"sessionID": store.SessionID(),
		"booking":   store.Snapshot(),
	})
}

// CreateSession starts a fresh wizard session and returns its ID alongside
// the default record.
func (h *BookingHandler) CreateSession(c *gin.Context) {
	sessionID := uuid.New().String()
	store, ok := h.openStore(c, sessionID)
	if !ok {
		return
	}
	respondSnapshot(c, store)
}

// GetSession returns the current snapshot, rehydrated from the persisted slot
// if one exists.
func (h *BookingHandler) GetSession(c *gin.Context) {
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}
	respondSnapshot(c, store)
}

// ResetSession restores the default record and clears the persisted slot.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}
	if err := store.Reset(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to reset booking session", err.Error())
		return
	}
	respondSnapshot(c, store)
}

// mutate runs one setter against the session store and responds with the
// updated snapshot.
func (h *BookingHandler) mutate(c *gin.Context, apply func(*booking.Store) error) {
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}
	if err := apply(store); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking session", err.Error())
		return
	}
	respondSnapshot(c, store)
}

// UpdateBookingFor sets which party owns the equipment being serviced.
func (h *BookingHandler) UpdateBookingFor(c *gin.Context) {
	var input struct {
		BookingFor models.BookingFor `json:"bookingFor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	switch input.BookingFor {
	case models.BookingForPersonal, models.BookingForLandlord, models.BookingForCompany, models.BookingForFriend:
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", "unknown bookingFor value")
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetBookingFor(c.Request.Context(), input.BookingFor)
	})
}

// UpdatePersonalDetails sets the contact person group.
func (h *BookingHandler) UpdatePersonalDetails(c *gin.Context) {
	var input models.PersonalDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetPersonalDetails(c.Request.Context(), input)
	})
}

// UpdateAddressDetails stores the structured address and its derived display
// string in one update. A payload whose property type is unknown, or that is
// missing the variant its tag names, is rejected outright.
func (h *BookingHandler) UpdateAddressDetails(c *gin.Context) {
	var input models.AddressDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}
	if err := store.SetAddressDetails(c.Request.Context(), input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid address details", err.Error())
		return
	}
	respondSnapshot(c, store)
}

// UpdateLandlordDetails sets the landlord variant group.
func (h *BookingHandler) UpdateLandlordDetails(c *gin.Context) {
	var input models.LandlordDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetLandlordDetails(c.Request.Context(), input)
	})
}

// UpdateOwnerDetails sets the friend/family owner variant group.
func (h *BookingHandler) UpdateOwnerDetails(c *gin.Context) {
	var input models.OwnerDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetOwnerDetails(c.Request.Context(), input)
	})
}

// UpdateCompanyDetails sets the company variant group.
func (h *BookingHandler) UpdateCompanyDetails(c *gin.Context) {
	var input models.CompanyDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetCompanyDetails(c.Request.Context(), input)
	})
}

// UpdateItemsToRepair replaces the selected item set.
func (h *BookingHandler) UpdateItemsToRepair(c *gin.Context) {
	var input struct {
		ItemsToRepair []string `json:"itemsToRepair"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetItemsToRepair(c.Request.Context(), input.ItemsToRepair)
	})
}

// UpdateProblemDescriptions replaces the per-item problem description map.
func (h *BookingHandler) UpdateProblemDescriptions(c *gin.Context) {
	var input struct {
		ProblemDescriptions map[string]string `json:"problemDescriptions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetProblemDescriptions(c.Request.Context(), input.ProblemDescriptions)
	})
}

// UpdatePaymentMethods replaces the chosen payment methods.
func (h *BookingHandler) UpdatePaymentMethods(c *gin.Context) {
	var input struct {
		PaymentMethods []string `json:"paymentMethods"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetPaymentMethods(c.Request.Context(), input.PaymentMethods)
	})
}

// UpdateBillingInformation records which party pays.
func (h *BookingHandler) UpdateBillingInformation(c *gin.Context) {
	var input struct {
		BillingInformation string `json:"billingInformation"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetBillingInformation(c.Request.Context(), input.BillingInformation)
	})
}

// UpdateTermsAgreement records the consent flags; null clears them.
func (h *BookingHandler) UpdateTermsAgreement(c *gin.Context) {
	var input struct {
		TermsAgreement *models.TermsAgreement `json:"termsAgreement"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetTermsAgreement(c.Request.Context(), input.TermsAgreement)
	})
}

// UpdateSelectedDateTime records the picked slot; null clears it.
func (h *BookingHandler) UpdateSelectedDateTime(c *gin.Context) {
	var input struct {
		SelectedDateTime *models.BookingSlot `json:"selectedDateTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetSelectedDateTime(c.Request.Context(), input.SelectedDateTime)
	})
}

// UpdateServicePath replaces the accumulated category drill-down path.
func (h *BookingHandler) UpdateServicePath(c *gin.Context) {
	var input struct {
		ServicePath []string `json:"servicePath"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetServicePath(c.Request.Context(), input.ServicePath)
	})
}

// UpdateServiceType sets the fulfilment mode label.
func (h *BookingHandler) UpdateServiceType(c *gin.Context) {
	var input struct {
		ServiceType string `json:"serviceType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	h.mutate(c, func(s *booking.Store) error {
		return s.SetServiceType(c.Request.Context(), input.ServiceType)
	})
}

// FetchAvailability queries the workflow webhook for the requested date and
// caches the offered slots in the session on success. A failed call leaves
// the session untouched.
func (h *BookingHandler) FetchAvailability(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"` // "YYYY-MM-DD"
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}

	slots, err := h.Gateway.FetchAvailability(c.Request.Context(), store.Snapshot(), input.Date)
	if err != nil {
		respondGatewayError(c, "Failed to fetch availability slots", err)
		return
	}
	if err := store.SetAvailability(c.Request.Context(), slots); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": slots})
}

// ConfirmBooking submits the finalized snapshot. The confirmation is written
// into the session only after the gateway reports full success, so a failure
// at the webhook or the persistence step never leaves a partial confirmation
// behind.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	store, ok := h.openStore(c, c.Param("sessionID"))
	if !ok {
		return
	}
	snapshot := store.Snapshot()

	if len(snapshot.ItemsToRepair) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Booking is incomplete", "no items selected for repair")
		return
	}
	if snapshot.TermsAgreement == nil || !snapshot.TermsAgreement.Accepted() {
		utils.JSONError(c, http.StatusBadRequest, "Booking is incomplete", "terms have not been agreed to")
		return
	}

	confirmation, err := h.Gateway.ConfirmBooking(c.Request.Context(), snapshot)
	if err != nil {
		respondGatewayError(c, "Booking confirmation failed", err)
		return
	}
	if err := store.SetWebhookConfirmation(c.Request.Context(), confirmation); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking session", err.Error())
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// respondGatewayError maps a gateway failure onto an HTTP response, carrying
// the extracted message through to the client.
func respondGatewayError(c *gin.Context, message string, err error) {
	var gwErr *booking.GatewayError
	if errors.As(err, &gwErr) {
		utils.JSONError(c, http.StatusBadGateway, message, gwErr.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, message, err.Error())
}
