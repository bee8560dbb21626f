package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resmoke/models"
)

func newAdminRouter(t *testing.T, repo *fakeBookingRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(repo, zap.NewNop())
	r := gin.New()
	r.GET("/api/admin/bookings", h.GetAllBookingsHandler)
	r.GET("/api/admin/bookings/:id", h.GetBookingByIDHandler)
	return r
}

func TestGetAllBookingsEmpty(t *testing.T) {
	r := newAdminRouter(t, &fakeBookingRepo{})

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}

func TestGetBookingByIDReturnsDocument(t *testing.T) {
	repo := &fakeBookingRepo{}
	doc := models.BookingDocument{ID: "doc-42"}
	doc.Name = "Thabo"
	repo.created = append(repo.created, doc)

	r := newAdminRouter(t, repo)
	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings/doc-42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"doc-42"`)
	assert.Contains(t, w.Body.String(), "Thabo")
}

func TestGetBookingByIDUnknownID(t *testing.T) {
	r := newAdminRouter(t, &fakeBookingRepo{})

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
