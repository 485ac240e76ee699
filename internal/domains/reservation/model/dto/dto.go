package dto

import (
	"time"

	"resort/internal/domains/reservation/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID        string   `json:"guest_id"        validate:"required,uuid"`
	RoomID         string   `json:"room_id"         validate:"required,uuid"`
	CheckIn        string   `json:"check_in"        validate:"required,datetime=2006-01-02"`
	CheckOut       string   `json:"check_out"       validate:"required,datetime=2006-01-02"`
	BookingChannel string   `json:"booking_channel" validate:"omitempty,max=50"`
	AmenityIDs     []string `json:"amenity_ids"     validate:"omitempty,dive,uuid"`
}

func (c *CreateReservationRequest) ToModel(checkIn, checkOut time.Time, user string) model.Reservation {
	now := timezone.Now()

	return model.Reservation{
		ID:             uuid.NewString(),
		GuestID:        c.GuestID,
		RoomID:         c.RoomID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		BookingChannel: c.BookingChannel,
		Status:         model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewAmenityLink(reservationID, amenityID string, rate float64, user string) model.Amenity {
	now := timezone.Now()

	return model.Amenity{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		AmenityID:     amenityID,
		Quantity:      1,
		UnitRate:      rate,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func NewLog(reservationID string, event model.LogEvent, notes, user string) model.Log {
	return model.Log{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		EventType:     event,
		Notes:         notes,
		EventTime:     timezone.Now(),
		CreatedBy:     user,
	}
}

type ReservationResponse struct {
	ID             string       `json:"id"`
	GuestID        string       `json:"guest_id"`
	GuestName      string       `json:"guest_name"`
	RoomID         string       `json:"room_id"`
	RoomCode       string       `json:"room_code"`
	RoomType       string       `json:"room_type"`
	CheckIn        string       `json:"check_in"`
	CheckOut       string       `json:"check_out"`
	Nights         int          `json:"nights"`
	BookingChannel string       `json:"booking_channel"`
	Status         model.Status `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Overview) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = model.GuestName()
	r.RoomID = model.RoomID
	r.RoomCode = model.RoomCode
	r.RoomType = model.RoomType
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = shared.DaysBetween(model.CheckIn, model.CheckOut)
	r.BookingChannel = model.BookingChannel
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Overview, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

type LogResponse struct {
	ID        string         `json:"id"`
	EventType model.LogEvent `json:"event_type"`
	Notes     string         `json:"notes"`
	EventTime string         `json:"event_time"`
	CreatedBy string         `json:"created_by"`
}

func (r *LogResponse) FromModel(model model.Log) {
	r.ID = model.ID
	r.EventType = model.EventType
	r.Notes = model.Notes
	r.EventTime = model.EventTime.Format(constant.DateFormat)
	r.CreatedBy = model.CreatedBy
}

// ReservationEvent is the payload of reservation lifecycle events.
type ReservationEvent struct {
	ReservationID string       `json:"reservation_id"`
	GuestID       string       `json:"guest_id"`
	RoomID        string       `json:"room_id"`
	CheckIn       string       `json:"check_in"`
	CheckOut      string       `json:"check_out"`
	Status        model.Status `json:"status"`
}

func NewReservationEvent(reservation model.Reservation) ReservationEvent {
	return ReservationEvent{
		ReservationID: reservation.ID,
		GuestID:       reservation.GuestID,
		RoomID:        reservation.RoomID,
		CheckIn:       reservation.CheckIn.Format(constant.DateOnlyFormat),
		CheckOut:      reservation.CheckOut.Format(constant.DateOnlyFormat),
		Status:        reservation.Status,
	}
}
