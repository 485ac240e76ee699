package model

import (
	"time"

	"resort/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldGuestID        = "guest_id"
	FieldRoomID         = "room_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldBookingChannel = "booking_channel"
	FieldStatus         = "status"

	AmenityTableName  = "reservation_amenities"
	AmenityEntityName = "reservation_amenity"

	LogTableName  = "check_in_out_logs"
	LogEntityName = "check_in_out_log"

	FieldReservationID = "reservation_id"
	FieldEventTime     = "event_time"
)

type Reservation struct {
	ID             string    `db:"id"`
	GuestID        string    `db:"guest_id"`
	RoomID         string    `db:"room_id"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	BookingChannel string    `db:"booking_channel"`
	Status         Status    `db:"status"`
	model.Metadata
}

// Overview is a reservation joined with the guest and room it refers to.
type Overview struct {
	ID             string    `db:"id"`
	GuestID        string    `db:"guest_id"`
	GuestFirstName string    `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string    `db:"guest_last_name"  table:"guests" column:"last_name"`
	RoomID         string    `db:"room_id"`
	RoomCode       string    `db:"room_code"        table:"rooms"  column:"code"`
	RoomType       string    `db:"room_type"        table:"rooms"  column:"room_type"`
	RatePerNight   float64   `db:"rate_per_night"   table:"rooms"  column:"rate_per_night"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	BookingChannel string    `db:"booking_channel"`
	Status         Status    `db:"status"`
	model.Metadata
}

func (Overview) GetJoinQuery() string {
	return "JOIN guests ON guests.id = reservations.guest_id JOIN rooms ON rooms.id = reservations.room_id"
}

func (o Overview) GuestName() string {
	return o.GuestFirstName + " " + o.GuestLastName
}

// Amenity links an amenity to a reservation at the rate quoted when it was booked.
type Amenity struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	AmenityID     string  `db:"amenity_id"`
	Quantity      int     `db:"quantity"`
	UnitRate      float64 `db:"unit_rate"`
	model.Metadata
}

type Log struct {
	ID            string    `db:"id"`
	ReservationID string    `db:"reservation_id"`
	EventType     LogEvent  `db:"event_type"`
	Notes         string    `db:"notes"`
	EventTime     time.Time `db:"event_time"`
	CreatedBy     string    `db:"created_by"`
}
