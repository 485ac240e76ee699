package dto

import (
	"time"

	"resort/internal/domains/rental/model"
	"resort/shared"
	"resort/shared/constant"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type RentRequest struct {
	GuestID       string `json:"guest_id"       validate:"required,uuid"`
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
	AmenityID     string `json:"amenity_id"     validate:"required,uuid"`
	RentStart     string `json:"rent_start"     validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	RentEnd       string `json:"rent_end"       validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Quantity      int    `json:"quantity"       validate:"required"`
}

func (r *RentRequest) ToModel(start, end time.Time, rate float64, user string) model.Rental {
	now := timezone.Now()

	return model.Rental{
		ID:            uuid.NewString(),
		GuestID:       r.GuestID,
		AmenityID:     r.AmenityID,
		ReservationID: r.ReservationID,
		RentStart:     start,
		RentEnd:       end,
		Quantity:      r.Quantity,
		RatePerUnit:   rate,
		Status:        model.StatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RentResponse struct {
	RentalID string  `json:"rental_id"`
	ChargeID string  `json:"charge_id"`
	Amount   float64 `json:"amount"`
}

type ActiveRentalResponse struct {
	ID            string       `json:"id"`
	AmenityID     string       `json:"amenity_id"`
	AmenityName   string       `json:"amenity_name"`
	ReservationID string       `json:"reservation_id"`
	RentStart     string       `json:"rent_start"`
	RentEnd       string       `json:"rent_end"`
	Quantity      int          `json:"quantity"`
	RatePerUnit   float64      `json:"rate_per_unit"`
	Amount        float64      `json:"amount"`
	Status        model.Status `json:"status"`
}

func (r *ActiveRentalResponse) FromModel(model model.ActiveRental) {
	r.ID = model.ID
	r.AmenityID = model.AmenityID
	r.AmenityName = model.AmenityName
	r.ReservationID = model.ReservationID
	r.RentStart = model.RentStart.Format(constant.DateFormat)
	r.RentEnd = model.RentEnd.Format(constant.DateFormat)
	r.Quantity = model.Quantity
	r.RatePerUnit = model.RatePerUnit
	r.Amount = shared.RoundCurrency(float64(model.Quantity) * model.RatePerUnit)
	r.Status = model.Status
}

// RentalEvent is the payload of rental events.
type RentalEvent struct {
	RentalID      string       `json:"rental_id"`
	GuestID       string       `json:"guest_id"`
	AmenityID     string       `json:"amenity_id"`
	ReservationID string       `json:"reservation_id"`
	Quantity      int          `json:"quantity"`
	Amount        float64      `json:"amount"`
	Status        model.Status `json:"status"`
}

func NewRentalEvent(rental model.Rental) RentalEvent {
	return RentalEvent{
		RentalID:      rental.ID,
		GuestID:       rental.GuestID,
		AmenityID:     rental.AmenityID,
		ReservationID: rental.ReservationID,
		Quantity:      rental.Quantity,
		Amount:        shared.RoundCurrency(rental.Amount()),
		Status:        rental.Status,
	}
}
