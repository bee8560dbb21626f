package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingsRepo "resmoke/database/repository/bookings"
	"resmoke/models"
	"resmoke/services/booking"
)

type memSessionRepo struct {
	slots map[string][]byte
}

func (m *memSessionRepo) Load(_ context.Context, sessionID string) ([]byte, error) {
	data, ok := m.slots[sessionID]
	if !ok {
		return nil, booking.ErrSessionNotFound
	}
	return data, nil
}

func (m *memSessionRepo) Save(_ context.Context, sessionID string, data []byte) error {
	m.slots[sessionID] = data
	return nil
}

func (m *memSessionRepo) Delete(_ context.Context, sessionID string) error {
	delete(m.slots, sessionID)
	return nil
}

type fakeBookingRepo struct {
	created   []models.BookingDocument
	createErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, doc models.BookingDocument) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, doc)
	return "doc-123", nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.BookingDocument, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, bookingsRepo.ErrNotFound
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]models.BookingDocument, error) {
	return f.created, nil
}

func newTestRouter(t *testing.T, repo *fakeBookingRepo, webhookURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := &memSessionRepo{slots: make(map[string][]byte)}
	gateway := booking.NewGateway(webhookURL, webhookURL, repo, zap.NewNop())
	h := NewBookingHandler(sessions, gateway, zap.NewNop())

	r := gin.New()
	r.POST("/api/booking/session", h.CreateSession)
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.DELETE("/api/booking/session/:sessionID", h.ResetSession)
	r.PUT("/api/booking/session/:sessionID/booking-for", h.UpdateBookingFor)
	r.PUT("/api/booking/session/:sessionID/personal", h.UpdatePersonalDetails)
	r.PUT("/api/booking/session/:sessionID/address", h.UpdateAddressDetails)
	r.PUT("/api/booking/session/:sessionID/items", h.UpdateItemsToRepair)
	r.PUT("/api/booking/session/:sessionID/terms", h.UpdateTermsAgreement)
	r.POST("/api/booking/session/:sessionID/availability", h.FetchAvailability)
	r.POST("/api/booking/session/:sessionID/confirm", h.ConfirmBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type sessionResponse struct {
	SessionID string               `json:"sessionID"`
	Booking   models.BookingRecord `json:"booking"`
}

func createSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp.SessionID
}

func getSnapshot(t *testing.T, r *gin.Engine, sessionID string) models.BookingRecord {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/booking/session/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Booking
}

func TestCreateSessionReturnsDefaultRecord(t *testing.T) {
	r := newTestRouter(t, &fakeBookingRepo{}, "")

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.BookingForPersonal, resp.Booking.BookingFor)
	assert.Empty(t, resp.Booking.ItemsToRepair)
}

func TestUpdateAddressWritesBothFields(t *testing.T) {
	r := newTestRouter(t, &fakeBookingRepo{}, "")
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/"+sessionID+"/address", models.AddressDetails{
		PropertyType: models.PropertyComplex,
		Complex: &models.ComplexAddress{
			UnitNumber:       "4",
			ComplexName:      "Other",
			OtherComplexName: "The Willows",
			StreetName:       "Main Rd",
		},
		Suburb: "Centurion Central",
		City:   "Centurion",
	})
	require.Equal(t, http.StatusOK, w.Code)

	rec := getSnapshot(t, r, sessionID)
	assert.Equal(t, "Unit 4, The Willows, Main Rd, Centurion Central, Centurion", rec.FormattedAddress)
	require.NotNil(t, rec.AddressDetails.Complex)
	assert.Equal(t, "4", rec.AddressDetails.Complex.UnitNumber)
}

func TestUpdateAddressRejectsUnknownType(t *testing.T) {
	r := newTestRouter(t, &fakeBookingRepo{}, "")
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/"+sessionID+"/address", models.AddressDetails{
		PropertyType: "Castle",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	rec := getSnapshot(t, r, sessionID)
	assert.Empty(t, rec.FormattedAddress)
}

func TestFetchAvailabilityCachesSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`[{"slotStart":"2025-09-15T08:00:00+02:00"}]`))
	}))
	defer srv.Close()

	r := newTestRouter(t, &fakeBookingRepo{}, srv.URL)
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+sessionID+"/availability", gin.H{"date": "2025-09-15"})
	require.Equal(t, http.StatusOK, w.Code)

	rec := getSnapshot(t, r, sessionID)
	require.Len(t, rec.Availability, 1)
	assert.Equal(t, "2025-09-15T08:00:00+02:00", rec.Availability[0].SlotStart)
}

func TestFetchAvailabilityFailureLeavesSessionUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"no technicians available"}`))
	}))
	defer srv.Close()

	r := newTestRouter(t, &fakeBookingRepo{}, srv.URL)
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+sessionID+"/availability", gin.H{"date": "2025-09-15"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "no technicians available")

	rec := getSnapshot(t, r, sessionID)
	assert.Empty(t, rec.Availability)
}

func TestConfirmRequiresItemsAndTerms(t *testing.T) {
	r := newTestRouter(t, &fakeBookingRepo{}, "")
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+sessionID+"/confirm", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func prepareConfirmableSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	sessionID := createSession(t, r)
	w := doJSON(t, r, http.MethodPut, "/api/booking/session/"+sessionID+"/items", gin.H{"itemsToRepair": []string{"FRIDGE"}})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPut, "/api/booking/session/"+sessionID+"/terms", gin.H{
		"termsAgreement": gin.H{"paymentOnPremises": true, "emailConsent": true},
	})
	require.Equal(t, http.StatusOK, w.Code)
	return sessionID
}

func TestConfirmWritesConfirmationToSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Booked","Date":"2025-09-15"}`))
	}))
	defer srv.Close()

	repo := &fakeBookingRepo{}
	r := newTestRouter(t, repo, srv.URL)
	sessionID := prepareConfirmableSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+sessionID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	rec := getSnapshot(t, r, sessionID)
	require.NotNil(t, rec.WebhookConfirmation)
	assert.Equal(t, "Booked", rec.WebhookConfirmation.Status())
	assert.Equal(t, "doc-123", rec.WebhookConfirmation.BookingID())
	require.Len(t, repo.created, 1)
}

func TestConfirmPersistenceFailureLeavesSessionUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Booked"}`))
	}))
	defer srv.Close()

	repo := &fakeBookingRepo{createErr: errors.New("mongo down")}
	r := newTestRouter(t, repo, srv.URL)
	sessionID := prepareConfirmableSession(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session/"+sessionID+"/confirm", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	rec := getSnapshot(t, r, sessionID)
	assert.Nil(t, rec.WebhookConfirmation)
}

func TestResetClearsSession(t *testing.T) {
	r := newTestRouter(t, &fakeBookingRepo{}, "")
	sessionID := createSession(t, r)

	w := doJSON(t, r, http.MethodPut, "/api/booking/session/"+sessionID+"/personal", models.PersonalDetails{
		Name: "Thabo", Surname: "Nkosi", CellNumber: "0821234567", Email: "thabo@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/booking/session/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rec := getSnapshot(t, r, sessionID)
	assert.Empty(t, rec.Name)
	assert.Equal(t, models.BookingForPersonal, rec.BookingFor)
}
