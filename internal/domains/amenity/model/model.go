package model

import "resort/shared/model"

const (
	TableName  = "amenities"
	EntityName = "amenity"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldRate         = "rate"
	FieldAvailability = "availability"
	FieldRating       = "rating"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityReserved    Availability = "reserved"
	AvailabilityMaintenance Availability = "maintenance"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityReserved, AvailabilityMaintenance:
		return true
	default:
		return false
	}
}

func (a Availability) Rentable() bool {
	return a == AvailabilityAvailable
}

type Amenity struct {
	ID           string       `db:"id"`
	Name         string       `db:"name"`
	Description  string       `db:"description"`
	Rate         float64      `db:"rate"`
	Availability Availability `db:"availability"`
	Rating       float64      `db:"rating"`
	model.Metadata
}

// RequestStats summarises how often an amenity was rented.
type RequestStats struct {
	TotalRentals  int     `db:"total_rentals"`
	ActiveRentals int     `db:"active_rentals"`
	UniqueGuests  int     `db:"unique_guests"`
	TotalQuantity int     `db:"total_quantity"`
	TotalRevenue  float64 `db:"total_revenue"`
}
