package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"resmoke/models"
)

// Store holds the single BookingRecord for one wizard session. It is
// explicitly constructed per request and carries no global state; durability
// goes through the injected SessionRepository, which persists the full record
// on every mutation.
//
// One session is mutated by one sequential wizard flow, so there is no
// field-level locking; the mutex only guards against concurrent handler
// goroutines touching the same instance.
type Store struct {
	sessionID string
	repo      SessionRepository

	mu  sync.Mutex
	rec models.BookingRecord
}

// NewStore binds a store to a session, rehydrating from the persisted slot if
// one exists and starting from the default record otherwise. A slot whose
// contents no longer parse is treated as absent; the session starts fresh.
func NewStore(ctx context.Context, sessionID string, repo SessionRepository) (*Store, error) {
	s := &Store{sessionID: sessionID, repo: repo}

	data, err := repo.Load(ctx, sessionID)
	switch {
	case errors.Is(err, ErrSessionNotFound):
		s.rec = models.DefaultBookingRecord()
	case err != nil:
		return nil, fmt.Errorf("load booking session %s: %w", sessionID, err)
	default:
		var rec models.BookingRecord
		if uerr := json.Unmarshal(data, &rec); uerr != nil {
			s.rec = models.DefaultBookingRecord()
		} else {
			s.rec = rec
		}
	}
	return s, nil
}

// SessionID returns the session this store is bound to.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Snapshot returns a copy of the current record. Mutating the returned value
// does not affect the store.
func (s *Store) Snapshot() models.BookingRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecord(s.rec)
}

// update applies a mutation to a copy of the record, persists the result, and
// only then commits it in memory. A reader therefore never observes a
// half-applied mutation, and a persistence failure leaves the record exactly
// as it was.
func (s *Store) update(ctx context.Context, apply func(*models.BookingRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneRecord(s.rec)
	apply(&next)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("serialize booking session %s: %w", s.sessionID, err)
	}
	if err := s.repo.Save(ctx, s.sessionID, data); err != nil {
		return fmt.Errorf("persist booking session %s: %w", s.sessionID, err)
	}
	s.rec = next
	return nil
}

// SetBookingFor records which party owns the equipment. Non-active variant
// groups keep whatever values they already hold.
func (s *Store) SetBookingFor(ctx context.Context, v models.BookingFor) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.BookingFor = v })
}

func (s *Store) SetPersonalDetails(ctx context.Context, d models.PersonalDetails) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.PersonalDetails = d })
}

// SetAddressDetails stores the raw address and its derived display string in
// one atomic update. The two fields are never set independently.
func (s *Store) SetAddressDetails(ctx context.Context, d models.AddressDetails) error {
	formatted, err := FormatAddress(d)
	if err != nil {
		return err
	}
	return s.update(ctx, func(r *models.BookingRecord) {
		r.AddressDetails = d
		r.FormattedAddress = formatted
	})
}

func (s *Store) SetLandlordDetails(ctx context.Context, d models.LandlordDetails) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.LandlordDetails = d })
}

func (s *Store) SetOwnerDetails(ctx context.Context, d models.OwnerDetails) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.OwnerDetails = d })
}

func (s *Store) SetCompanyDetails(ctx context.Context, d models.CompanyDetails) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.CompanyDetails = d })
}

func (s *Store) SetItemsToRepair(ctx context.Context, items []string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.ItemsToRepair = items })
}

// SetProblemDescriptions replaces the whole description map. Entries for
// items no longer selected are tolerated and simply ignored downstream.
func (s *Store) SetProblemDescriptions(ctx context.Context, descriptions map[string]string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.ProblemDescriptions = descriptions })
}

func (s *Store) SetPaymentMethods(ctx context.Context, methods []string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.PaymentMethods = methods })
}

func (s *Store) SetBillingInformation(ctx context.Context, v string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.BillingInformation = v })
}

func (s *Store) SetTermsAgreement(ctx context.Context, t *models.TermsAgreement) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.TermsAgreement = t })
}

func (s *Store) SetSelectedDateTime(ctx context.Context, slot *models.BookingSlot) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.SelectedDateTime = slot })
}

// SetAvailability caches the last availability response. It is wizard working
// state, not booking truth.
func (s *Store) SetAvailability(ctx context.Context, slots []models.AvailabilitySlot) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.Availability = slots })
}

func (s *Store) SetWebhookConfirmation(ctx context.Context, conf models.WebhookConfirmation) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.WebhookConfirmation = conf })
}

func (s *Store) SetServicePath(ctx context.Context, path []string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.ServicePath = path })
}

func (s *Store) SetServiceType(ctx context.Context, serviceType string) error {
	return s.update(ctx, func(r *models.BookingRecord) { r.ServiceType = serviceType })
}

// Reset restores the all-default record and clears the persisted slot.
// Calling it twice is the same as calling it once.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, s.sessionID); err != nil {
		return fmt.Errorf("clear booking session %s: %w", s.sessionID, err)
	}
	s.rec = models.DefaultBookingRecord()
	return nil
}

func cloneRecord(r models.BookingRecord) models.BookingRecord {
	out := r
	out.AddressDetails = cloneAddress(r.AddressDetails)
	out.ServicePath = slices.Clone(r.ServicePath)
	out.ItemsToRepair = slices.Clone(r.ItemsToRepair)
	out.ProblemDescriptions = maps.Clone(r.ProblemDescriptions)
	out.Availability = slices.Clone(r.Availability)
	out.PaymentMethods = slices.Clone(r.PaymentMethods)
	out.WebhookConfirmation = maps.Clone(r.WebhookConfirmation)
	if r.SelectedDateTime != nil {
		v := *r.SelectedDateTime
		out.SelectedDateTime = &v
	}
	if r.TermsAgreement != nil {
		v := *r.TermsAgreement
		out.TermsAgreement = &v
	}
	return out
}

func cloneAddress(d models.AddressDetails) models.AddressDetails {
	out := d
	if d.Home != nil {
		v := *d.Home
		out.Home = &v
	}
	if d.Complex != nil {
		v := *d.Complex
		out.Complex = &v
	}
	if d.EstateHouse != nil {
		v := *d.EstateHouse
		out.EstateHouse = &v
	}
	if d.EstateComplex != nil {
		v := *d.EstateComplex
		out.EstateComplex = &v
	}
	if d.Office != nil {
		v := *d.Office
		out.Office = &v
	}
	if d.SmallHolding != nil {
		v := *d.SmallHolding
		out.SmallHolding = &v
	}
	if d.Farm != nil {
		v := *d.Farm
		out.Farm = &v
	}
	if d.Other != nil {
		v := *d.Other
		out.Other = &v
	}
	return out
}
