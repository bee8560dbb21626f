package booking

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resmoke/models"
)

// fakeBookingRepo captures created documents and can be told to fail.
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

func (f *fakeBookingRepo) GetByID(_ context.Context, _ string) (*models.BookingDocument, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) GetAll(_ context.Context) ([]models.BookingDocument, error) {
	return f.created, nil
}

func snapshotForTest() models.BookingRecord {
	rec := models.DefaultBookingRecord()
	rec.Name = "Thabo"
	rec.Surname = "Nkosi"
	rec.ItemsToRepair = []string{"FRIDGE"}
	return rec
}

func TestFetchAvailabilityReturnsSlots(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"slotStart":"2025-09-15T08:00:00+02:00"},{"slotStart":"2025-09-15T10:00:00+02:00"}]`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", &fakeBookingRepo{}, zap.NewNop())
	slots, err := g.FetchAvailability(context.Background(), snapshotForTest(), "2025-09-15")
	require.NoError(t, err)

	assert.Equal(t, []models.AvailabilitySlot{
		{SlotStart: "2025-09-15T08:00:00+02:00"},
		{SlotStart: "2025-09-15T10:00:00+02:00"},
	}, slots)
	// The webhook receives the full snapshot plus the queried date.
	assert.Equal(t, "2025-09-15", gotBody["date"])
	assert.Equal(t, "Thabo", gotBody["name"])
}

func TestFetchAvailabilityExtractsErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"no technicians available on that date"}`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", &fakeBookingRepo{}, zap.NewNop())
	_, err := g.FetchAvailability(context.Background(), snapshotForTest(), "2025-09-15")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, http.StatusServiceUnavailable, gwErr.StatusCode)
	assert.Equal(t, "no technicians available on that date", gwErr.Message)
}

func TestFetchAvailabilityPlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("workflow is paused"))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", &fakeBookingRepo{}, zap.NewNop())
	_, err := g.FetchAvailability(context.Background(), snapshotForTest(), "2025-09-15")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "workflow is paused", gwErr.Message)
}

func TestFetchAvailabilityMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, "", &fakeBookingRepo{}, zap.NewNop())
	_, err := g.FetchAvailability(context.Background(), snapshotForTest(), "2025-09-15")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
}

func TestFetchAvailabilityUnreachableWebhook(t *testing.T) {
	g := NewGateway("http://127.0.0.1:1", "", &fakeBookingRepo{}, zap.NewNop())
	_, err := g.FetchAvailability(context.Background(), snapshotForTest(), "2025-09-15")

	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "could not reach the scheduling service", gwErr.Message)
}

func TestConfirmBookingPersistsAndDecorates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"Booked","Date":"2025-09-15","Time":"14:00"}`))
	}))
	defer srv.Close()

	repo := &fakeBookingRepo{}
	g := NewGateway("", srv.URL, repo, zap.NewNop())

	conf, err := g.ConfirmBooking(context.Background(), snapshotForTest())
	require.NoError(t, err)

	// The webhook's own status wins; the persisted document ID fills the gap
	// the webhook left.
	assert.Equal(t, "Booked", conf.Status())
	assert.Equal(t, "doc-123", conf.BookingID())
	assert.Equal(t, "2025-09-15", conf["Date"])

	require.Len(t, repo.created, 1)
	doc := repo.created[0]
	assert.Equal(t, "Thabo", doc.Name)
	assert.Equal(t, "Booked", doc.WebhookConfirmation.Status())
	assert.False(t, doc.CreatedAt.IsZero())
}

func TestConfirmBookingWebhookFieldsTakePrecedence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"Booked","bookingId":"wf-77"}`))
	}))
	defer srv.Close()

	g := NewGateway("", srv.URL, &fakeBookingRepo{}, zap.NewNop())
	conf, err := g.ConfirmBooking(context.Background(), snapshotForTest())
	require.NoError(t, err)

	// When the webhook names its own status and booking ID, both override
	// the gateway's defaults.
	assert.Equal(t, "Booked", conf.Status())
	assert.Equal(t, "wf-77", conf.BookingID())
}

func TestConfirmBookingDefaultsWhenWebhookOmitsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Date":"2025-09-15"}`))
	}))
	defer srv.Close()

	g := NewGateway("", srv.URL, &fakeBookingRepo{}, zap.NewNop())
	conf, err := g.ConfirmBooking(context.Background(), snapshotForTest())
	require.NoError(t, err)

	assert.Equal(t, "Confirmed", conf.Status())
	assert.Equal(t, "doc-123", conf.BookingID())
}

func TestConfirmBookingWebhookFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"workflow rejected the booking"}`))
	}))
	defer srv.Close()

	repo := &fakeBookingRepo{}
	g := NewGateway("", srv.URL, repo, zap.NewNop())

	_, err := g.ConfirmBooking(context.Background(), snapshotForTest())
	var gwErr *GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "workflow rejected the booking", gwErr.Message)
	assert.Empty(t, repo.created, "nothing may be recorded when the webhook fails")
}

func TestConfirmBookingPersistenceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"Booked"}`))
	}))
	defer srv.Close()

	repo := &fakeBookingRepo{createErr: errors.New("mongo down")}
	g := NewGateway("", srv.URL, repo, zap.NewNop())

	conf, err := g.ConfirmBooking(context.Background(), snapshotForTest())
	require.Error(t, err)
	assert.Nil(t, conf)
	assert.Contains(t, err.Error(), "failed to record confirmed booking")
}
