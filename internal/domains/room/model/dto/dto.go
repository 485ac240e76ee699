package dto

import (
	"resort/internal/domains/room/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	RoomType     string  `json:"room_type"      validate:"required,max=50"`
	BedType      string  `json:"bed_type"       validate:"required,max=50"`
	MaxCapacity  int     `json:"max_capacity"   validate:"required,min=1"`
	RatePerNight float64 `json:"rate_per_night" validate:"required,gt=0"`
	Description  string  `json:"description"    validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	now := timezone.Now()

	return model.Room{
		ID:           uuid.NewString(),
		Code:         model.NewCode(c.RoomType),
		RoomType:     c.RoomType,
		BedType:      c.BedType,
		MaxCapacity:  c.MaxCapacity,
		RatePerNight: shared.RoundCurrency(c.RatePerNight),
		Status:       model.StatusAvailable,
		Description:  c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType     string       `db:"room_type"      json:"room_type"      validate:"omitempty,max=50"`
	BedType      string       `db:"bed_type"       json:"bed_type"       validate:"omitempty,max=50"`
	MaxCapacity  *int         `db:"max_capacity"   json:"max_capacity"   validate:"omitempty,min=1"`
	RatePerNight *float64     `db:"rate_per_night" json:"rate_per_night" validate:"omitempty,gt=0"`
	Status       model.Status `db:"status"         json:"status"         validate:"omitempty,oneof=available maintenance"`
	Description  string       `db:"description"    json:"description"    validate:"omitempty,max=500"`
}

type RoomResponse struct {
	ID           string       `json:"id"`
	Code         string       `json:"code"`
	RoomType     string       `json:"room_type"`
	BedType      string       `json:"bed_type"`
	MaxCapacity  int          `json:"max_capacity"`
	RatePerNight float64      `json:"rate_per_night"`
	Status       model.Status `json:"status"`
	Description  string       `json:"description"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Code = model.Code
	r.RoomType = model.RoomType
	r.BedType = model.BedType
	r.MaxCapacity = model.MaxCapacity
	r.RatePerNight = model.RatePerNight
	r.Status = model.Status
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type ServiceRequestResponse struct {
	ReservationID string  `json:"reservation_id"`
	GuestName     string  `json:"guest_name"`
	AmenityName   string  `json:"amenity_name"`
	Quantity      int     `json:"quantity"`
	UnitRate      float64 `json:"unit_rate"`
}

type RoomDetailResponse struct {
	Room              RoomResponse             `json:"room"`
	TotalReservations int                      `json:"total_reservations"`
	UniqueGuests      int                      `json:"unique_guests"`
	NightsBooked      int                      `json:"nights_booked"`
	ServiceRequests   []ServiceRequestResponse `json:"service_requests"`
}

func (r *RoomDetailResponse) FromModel(room model.Room, stats model.GuestStats, requests []model.ServiceRequest) {
	r.Room.FromModel(room)
	r.TotalReservations = stats.TotalReservations
	r.UniqueGuests = stats.UniqueGuests
	r.NightsBooked = stats.NightsBooked

	r.ServiceRequests = make([]ServiceRequestResponse, len(requests))
	for i, req := range requests {
		r.ServiceRequests[i] = ServiceRequestResponse(req)
	}
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}
