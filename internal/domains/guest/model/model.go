package model

import "resort/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID             = "id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldPhone          = "phone"
	FieldEmail          = "email"
	FieldPassportNumber = "passport_number"

	PreferenceTableName  = "guest_preferences"
	PreferenceEntityName = "guest preference"
	FieldGuestID         = "guest_id"
	FieldPrefKey         = "pref_key"

	FeedbackTableName  = "feedback"
	FeedbackEntityName = "feedback"

	MinRating = 1
	MaxRating = 5
)

type Guest struct {
	ID             string `db:"id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Phone          string `db:"phone"`
	Email          string `db:"email"`
	PassportNumber string `db:"passport_number"`
	model.Metadata
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// Stats aggregates a guest's stay and spending history.
type Stats struct {
	TotalReservations     int     `db:"total_reservations"`
	ActiveReservations    int     `db:"active_reservations"`
	CompletedReservations int     `db:"completed_reservations"`
	CancelledReservations int     `db:"cancelled_reservations"`
	NightsStayed          int     `db:"nights_stayed"`
	TotalPaid             float64 `db:"total_paid"`
	ActiveRentals         int     `db:"active_rentals"`
}

// Preference is a free-form key/value a guest asked the front desk to remember.
type Preference struct {
	GuestID string `db:"guest_id"`
	Key     string `db:"pref_key"`
	Value   string `db:"pref_value"`
	model.Metadata
}

// Feedback is a 1-5 rating left by a guest, optionally tied to one of their stays.
type Feedback struct {
	ID            string  `db:"id"`
	GuestID       string  `db:"guest_id"`
	ReservationID *string `db:"reservation_id"`
	Rating        int     `db:"rating"`
	Comments      string  `db:"comments"`
	model.Metadata
}
