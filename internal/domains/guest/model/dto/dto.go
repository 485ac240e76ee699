package dto

import (
	"math"

	"resort/internal/domains/guest/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName      string `json:"first_name"      validate:"required,max=50"`
	LastName       string `json:"last_name"       validate:"required,max=50"`
	Phone          string `json:"phone"           validate:"omitempty,max=30"`
	Email          string `json:"email"           validate:"required,email,max=100"`
	PassportNumber string `json:"passport_number" validate:"omitempty,max=30"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	now := timezone.Now()

	return model.Guest{
		ID:             uuid.NewString(),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Phone:          c.Phone,
		Email:          c.Email,
		PassportNumber: c.PassportNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName      string `db:"first_name"      json:"first_name"      validate:"omitempty,max=50"`
	LastName       string `db:"last_name"       json:"last_name"       validate:"omitempty,max=50"`
	Phone          string `db:"phone"           json:"phone"           validate:"omitempty,max=30"`
	Email          string `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	PassportNumber string `db:"passport_number" json:"passport_number" validate:"omitempty,max=30"`
}

type GuestResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	PassportNumber string `json:"passport_number"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.FullName = model.FullName()
	r.Phone = model.Phone
	r.Email = model.Email
	r.PassportNumber = model.PassportNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

type GuestDetailResponse struct {
	Guest                 GuestResponse `json:"guest"`
	TotalReservations     int           `json:"total_reservations"`
	ActiveReservations    int           `json:"active_reservations"`
	CompletedReservations int           `json:"completed_reservations"`
	CancelledReservations int           `json:"cancelled_reservations"`
	NightsStayed          int           `json:"nights_stayed"`
	TotalPaid             float64       `json:"total_paid"`
	ActiveRentals         int           `json:"active_rentals"`
}

func (r *GuestDetailResponse) FromModel(guest model.Guest, stats model.Stats) {
	r.Guest.FromModel(guest)
	r.TotalReservations = stats.TotalReservations
	r.ActiveReservations = stats.ActiveReservations
	r.CompletedReservations = stats.CompletedReservations
	r.CancelledReservations = stats.CancelledReservations
	r.NightsStayed = stats.NightsStayed
	r.TotalPaid = shared.RoundCurrency(stats.TotalPaid)
	r.ActiveRentals = stats.ActiveRentals
}

type SetPreferenceRequest struct {
	Key   string `json:"key"   validate:"required,max=50"`
	Value string `json:"value" validate:"max=255"`
}

func (r *SetPreferenceRequest) ToModel(guestID, user string) model.Preference {
	now := timezone.Now()

	return model.Preference{
		GuestID: guestID,
		Key:     r.Key,
		Value:   r.Value,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PreferenceResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	gDto.Metadata
}

type GuestPreferencesResponse struct {
	Guest       GuestResponse        `json:"guest"`
	Preferences []PreferenceResponse `json:"preferences"`
}

func (r *GuestPreferencesResponse) FromModels(guest model.Guest, prefs []model.Preference) {
	r.Guest.FromModel(guest)

	r.Preferences = make([]PreferenceResponse, len(prefs))
	for i, pref := range prefs {
		r.Preferences[i].Key = pref.Key
		r.Preferences[i].Value = pref.Value
		r.Preferences[i].Metadata.FromModel(pref.Metadata)
	}
}

type AddFeedbackRequest struct {
	ReservationID string `json:"reservation_id" validate:"omitempty,max=36"`
	Rating        int    `json:"rating"         validate:"required,gte=1,lte=5"`
	Comments      string `json:"comments"       validate:"max=2000"`
}

func (r *AddFeedbackRequest) ToModel(guestID, user string) model.Feedback {
	now := timezone.Now()

	feedback := model.Feedback{
		ID:       uuid.NewString(),
		GuestID:  guestID,
		Rating:   r.Rating,
		Comments: r.Comments,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if r.ReservationID != "" {
		reservationID := r.ReservationID
		feedback.ReservationID = &reservationID
	}

	return feedback
}

type FeedbackResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id,omitempty"`
	Rating        int    `json:"rating"`
	Comments      string `json:"comments"`
	gDto.Metadata
}

type GuestFeedbackResponse struct {
	Guest         GuestResponse      `json:"guest"`
	AverageRating float64            `json:"average_rating"`
	Feedback      []FeedbackResponse `json:"feedback"`
}

// FromModels keeps the repository order, newest first.
func (r *GuestFeedbackResponse) FromModels(guest model.Guest, feedback []model.Feedback) {
	r.Guest.FromModel(guest)

	total := 0

	r.Feedback = make([]FeedbackResponse, len(feedback))
	for i, fb := range feedback {
		r.Feedback[i].ID = fb.ID
		r.Feedback[i].Rating = fb.Rating
		r.Feedback[i].Comments = fb.Comments
		r.Feedback[i].Metadata.FromModel(fb.Metadata)

		if fb.ReservationID != nil {
			r.Feedback[i].ReservationID = *fb.ReservationID
		}

		total += fb.Rating
	}

	if len(feedback) > 0 {
		r.AverageRating = math.Round(float64(total)/float64(len(feedback))*100) / 100
	}
}
