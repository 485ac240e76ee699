package model

import (
	"time"

	"resort/shared/model"
)

const (
	TableName  = "amenity_rentals"
	EntityName = "amenity_rental"

	FieldID            = "id"
	FieldGuestID       = "guest_id"
	FieldAmenityID     = "amenity_id"
	FieldReservationID = "reservation_id"
	FieldStatus        = "status"
	FieldRentStart     = "rent_start"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusReturned
}

func (s Status) CanReturn() bool {
	return s == StatusActive
}

type Rental struct {
	ID            string    `db:"id"`
	GuestID       string    `db:"guest_id"`
	AmenityID     string    `db:"amenity_id"`
	ReservationID string    `db:"reservation_id"`
	RentStart     time.Time `db:"rent_start"`
	RentEnd       time.Time `db:"rent_end"`
	Quantity      int       `db:"quantity"`
	RatePerUnit   float64   `db:"rate_per_unit"`
	Status        Status    `db:"status"`
	model.Metadata
}

func (r Rental) Amount() float64 {
	return float64(r.Quantity) * r.RatePerUnit
}

// ActiveRental is a rental joined with the amenity it refers to.
type ActiveRental struct {
	ID            string    `db:"id"`
	GuestID       string    `db:"guest_id"`
	AmenityID     string    `db:"amenity_id"`
	AmenityName   string    `db:"amenity_name" table:"amenities" column:"name"`
	ReservationID string    `db:"reservation_id"`
	RentStart     time.Time `db:"rent_start"`
	RentEnd       time.Time `db:"rent_end"`
	Quantity      int       `db:"quantity"`
	RatePerUnit   float64   `db:"rate_per_unit"`
	Status        Status    `db:"status"`
}

func (ActiveRental) GetJoinQuery() string {
	return "JOIN amenities ON amenities.id = amenity_rentals.amenity_id"
}
