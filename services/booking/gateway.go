package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	bookingsRepo "resmoke/database/repository/bookings"
	"resmoke/models"
)

// GatewayError is a failed call to the external workflow webhook: a transport
// failure, a non-2xx status, or a body that did not parse. Message is the
// best-effort human-readable explanation extracted from the response.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("webhook error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("webhook error: %s", e.Message)
}

// Gateway forwards booking snapshots to the external workflow webhook. Both
// calls are single-attempt and best-effort: no retry, no backoff, no
// idempotency key. Re-issuing a failed call is safe; the downstream system
// treats every call as a new workflow trigger.
type Gateway struct {
	Client          *http.Client
	AvailabilityURL string
	ConfirmationURL string
	Bookings        bookingsRepo.BookingRepository
	Logger          *zap.Logger
}

// NewGateway builds a Gateway with a sane default HTTP client.
func NewGateway(availabilityURL, confirmationURL string, bookings bookingsRepo.BookingRepository, logger *zap.Logger) *Gateway {
	return &Gateway{
		Client:          &http.Client{Timeout: 30 * time.Second},
		AvailabilityURL: availabilityURL,
		ConfirmationURL: confirmationURL,
		Bookings:        bookings,
		Logger:          logger,
	}
}

type availabilityRequest struct {
	models.BookingRecord
	Date string `json:"date"` // "YYYY-MM-DD"
}

// FetchAvailability asks the workflow webhook for offered slot starts on the
// given date, posting the full current snapshot alongside it.
func (g *Gateway) FetchAvailability(ctx context.Context, snapshot models.BookingRecord, date string) ([]models.AvailabilitySlot, error) {
	body, status, err := g.post(ctx, g.AvailabilityURL, availabilityRequest{BookingRecord: snapshot, Date: date})
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &GatewayError{StatusCode: status, Message: extractMessage(body)}
	}

	var slots []models.AvailabilitySlot
	if err := json.Unmarshal(body, &slots); err != nil {
		g.Logger.Warn("availability webhook returned malformed body", zap.Int("status", status))
		return nil, &GatewayError{StatusCode: status, Message: "availability response was not a valid slot list"}
	}
	return slots, nil
}

// ConfirmBooking submits the finalized snapshot to the confirmation webhook,
// then appends a booking document to the bookings collection. If either step
// fails the whole operation fails and nothing is reported as confirmed; the
// caller updates the store only after a successful return.
//
// The webhook may already have triggered when persistence fails. That
// at-least-once-trigger / at-most-once-record gap is accepted behavior.
func (g *Gateway) ConfirmBooking(ctx context.Context, snapshot models.BookingRecord) (models.WebhookConfirmation, error) {
	body, status, err := g.post(ctx, g.ConfirmationURL, snapshot)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &GatewayError{StatusCode: status, Message: extractMessage(body)}
	}

	var confirmation models.WebhookConfirmation
	if err := json.Unmarshal(body, &confirmation); err != nil {
		g.Logger.Warn("confirmation webhook returned malformed body", zap.Int("status", status))
		return nil, &GatewayError{StatusCode: status, Message: "confirmation response was not valid JSON"}
	}

	doc := models.BookingDocument{
		BookingRecord: snapshot,
		CreatedAt:     time.Now().UTC(),
	}
	doc.WebhookConfirmation = confirmation

	bookingID, err := g.Bookings.Create(ctx, doc)
	if err != nil {
		g.Logger.Error("failed to persist confirmed booking", zap.Error(err))
		return nil, fmt.Errorf("failed to record confirmed booking: %w", err)
	}

	// Defaults first; fields supplied by the webhook win over them.
	result := models.WebhookConfirmation{
		"status":    "Confirmed",
		"bookingId": bookingID,
	}
	for k, v := range confirmation {
		result[k] = v
	}
	return result, nil
}

// post sends one JSON POST and returns the raw response body and status.
// Transport-level failures come back as a GatewayError with a generic message.
func (g *Gateway) post(ctx context.Context, url string, payload interface{}) ([]byte, int, error) {
	if url == "" {
		return nil, 0, &GatewayError{Message: "webhook URL is not configured"}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		g.Logger.Warn("webhook call failed", zap.String("url", url), zap.Error(err))
		return nil, 0, &GatewayError{Message: "could not reach the scheduling service"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &GatewayError{StatusCode: resp.StatusCode, Message: "could not read the scheduling service response"}
	}
	return body, resp.StatusCode, nil
}

// extractMessage pulls a human-readable message out of an error body: the
// JSON "message" field when present, the raw text otherwise, and a generic
// fallback for empty bodies.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return "An unknown error occurred in the webhook."
	}
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return string(body)
}
