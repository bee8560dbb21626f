package models

import "time"

// BookingFor identifies which party owns the equipment being serviced.
type BookingFor string

const (
	BookingForPersonal BookingFor = "personal"
	BookingForLandlord BookingFor = "landlord"
	BookingForCompany  BookingFor = "company"
	BookingForFriend   BookingFor = "friend"
)

// PersonalDetails is the contact person for the booking, regardless of who
// the equipment belongs to.
type PersonalDetails struct {
	Name       string `bson:"name" json:"name"`
	Surname    string `bson:"surname" json:"surname"`
	CellNumber string `bson:"cell_number" json:"cellNumber"`
	Email      string `bson:"email" json:"email"`
}

// LandlordDetails is populated when bookingFor is "landlord".
type LandlordDetails struct {
	LandlordName       string `bson:"landlord_name" json:"landlordName"`
	LandlordSurname    string `bson:"landlord_surname" json:"landlordSurname"`
	LandlordCellNumber string `bson:"landlord_cell_number" json:"landlordCellNumber"`
	LandlordEmail      string `bson:"landlord_email" json:"landlordEmail"`
}

// OwnerDetails is populated when bookingFor is "friend" (friend/family owner).
type OwnerDetails struct {
	OwnerName       string `bson:"owner_name" json:"ownerName"`
	OwnerSurname    string `bson:"owner_surname" json:"ownerSurname"`
	OwnerCellNumber string `bson:"owner_cell_number" json:"ownerCellNumber"`
	OwnerEmail      string `bson:"owner_email" json:"ownerEmail"`
}

// CompanyDetails is populated when bookingFor is "company".
type CompanyDetails struct {
	CompanyName  string `bson:"company_name" json:"companyName"`
	CompanyPhone string `bson:"company_phone" json:"companyPhone"`
	CompanyEmail string `bson:"company_email" json:"companyEmail"`
}

// BookingSlot is the slot the user picked from the offered availability.
type BookingSlot struct {
	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time"` // e.g. "14:00"
}

// AvailabilitySlot is a single offered appointment start returned by the
// availability webhook.
type AvailabilitySlot struct {
	SlotStart string `bson:"slot_start" json:"slotStart"` // ISO-8601 datetime
}

// TermsAgreement records the two consent flags collected on the payment step.
// Both must be true before a booking may be submitted.
type TermsAgreement struct {
	PaymentOnPremises bool `bson:"payment_on_premises" json:"paymentOnPremises"`
	EmailConsent      bool `bson:"email_consent" json:"emailConsent"`
}

// Accepted reports whether both consent flags were given.
func (t TermsAgreement) Accepted() bool {
	return t.PaymentOnPremises && t.EmailConsent
}

// WebhookConfirmation is the opaque result bag returned by the confirmation
// webhook. Known keys are "status", "bookingId", "message", "dateTime",
// "Date", "Time" and "error"; anything else is passed through untouched.
type WebhookConfirmation map[string]interface{}

// Status returns the confirmation status, if present.
func (w WebhookConfirmation) Status() string {
	s, _ := w["status"].(string)
	return s
}

// BookingID returns the persisted booking document ID, if present.
func (w WebhookConfirmation) BookingID() string {
	s, _ := w["bookingId"].(string)
	return s
}

// BookingRecord is the aggregate holding all state for one in-progress
// booking. It is created empty when the wizard is entered, mutated one field
// group at a time by each wizard step, and reset on completion.
//
// Exactly one of the landlord/owner/company groups is semantically active,
// selected by BookingFor. Non-active groups are retained as-is when the user
// backtracks and changes BookingFor; stale values are ignored downstream.
type BookingRecord struct {
	PersonalDetails `bson:",inline"`

	BookingFor BookingFor `bson:"booking_for" json:"bookingFor"`

	LandlordDetails `bson:",inline"`
	OwnerDetails    `bson:",inline"`
	CompanyDetails  `bson:",inline"`

	// AddressDetails is the raw structured address; FormattedAddress is a
	// derived cache, recomputed whenever AddressDetails changes and never
	// hand-edited.
	AddressDetails   AddressDetails `bson:"address_details" json:"addressDetails"`
	FormattedAddress string         `bson:"formatted_address" json:"formattedAddress"`

	ServicePath []string `bson:"service_path" json:"servicePath"`
	ServiceType string   `bson:"service_type" json:"serviceType"`

	ItemsToRepair       []string          `bson:"items_to_repair" json:"itemsToRepair"`
	ProblemDescriptions map[string]string `bson:"problem_descriptions" json:"problemDescriptions"`

	SelectedDateTime *BookingSlot       `bson:"selected_date_time" json:"selectedDateTime"`
	Availability     []AvailabilitySlot `bson:"availability" json:"availability"`

	PaymentMethods     []string        `bson:"payment_methods" json:"paymentMethods"`
	BillingInformation string          `bson:"billing_information" json:"billingInformation"`
	TermsAgreement     *TermsAgreement `bson:"terms_agreement" json:"termsAgreement"`

	WebhookConfirmation WebhookConfirmation `bson:"webhook_confirmation" json:"webhookConfirmation"`
}

// DefaultBookingRecord returns the all-empty record a fresh wizard session
// starts from.
func DefaultBookingRecord() BookingRecord {
	return BookingRecord{
		BookingFor:          BookingForPersonal,
		ServicePath:         []string{},
		ItemsToRepair:       []string{},
		ProblemDescriptions: map[string]string{},
		Availability:        []AvailabilitySlot{},
		PaymentMethods:      []string{},
	}
}

// BookingDocument is the persisted form of a completed booking: the full
// snapshot, a creation timestamp and the confirmation webhook's response.
// The bookings collection is append-only; there is no update or delete path.
type BookingDocument struct {
	ID            string `bson:"id" json:"id"`
	BookingRecord `bson:",inline"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}
