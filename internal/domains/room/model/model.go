package model

import (
	"strings"

	"resort/shared/model"

	"github.com/google/uuid"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldCode         = "code"
	FieldRoomType     = "room_type"
	FieldBedType      = "bed_type"
	FieldMaxCapacity  = "max_capacity"
	FieldRatePerNight = "rate_per_night"
	FieldStatus       = "status"
	FieldDescription  = "description"

	codeSuffixLength = 10
	codePrefixOther  = "RM"
)

var codePrefixes = map[string]string{
	"standard": "STD",
	"deluxe":   "DLX",
	"suite":    "STE",
	"cottage":  "COT",
}

type Room struct {
	ID           string  `db:"id"`
	Code         string  `db:"code"`
	RoomType     string  `db:"room_type"`
	BedType      string  `db:"bed_type"`
	MaxCapacity  int     `db:"max_capacity"`
	RatePerNight float64 `db:"rate_per_night"`
	Status       Status  `db:"status"`
	Description  string  `db:"description"`
	model.Metadata
}

// NewCode builds a room code from the room type prefix and a random suffix, e.g. DLX-3F2A9C01B7.
func NewCode(roomType string) string {
	prefix, ok := codePrefixes[strings.ToLower(strings.TrimSpace(roomType))]
	if !ok {
		prefix = codePrefixOther
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:codeSuffixLength]

	return prefix + "-" + strings.ToUpper(suffix)
}

// GuestStats summarises who stayed in a room.
type GuestStats struct {
	TotalReservations int `db:"total_reservations"`
	UniqueGuests      int `db:"unique_guests"`
	NightsBooked      int `db:"nights_booked"`
}

// ServiceRequest is an amenity attached to one of the room's reservations.
type ServiceRequest struct {
	ReservationID string  `db:"reservation_id"`
	GuestName     string  `db:"guest_name"`
	AmenityName   string  `db:"amenity_name"`
	Quantity      int     `db:"quantity"`
	UnitRate      float64 `db:"unit_rate"`
}
