package model

import (
	"time"

	"resort/shared"
)

const (
	MinYear = 2000
	MaxYear = 2100
)

type Kind string

const (
	KindOccupancy Kind = "occupancy"
	KindRevenue   Kind = "revenue"
	KindInventory Kind = "inventory"
	KindAmenities Kind = "amenities"
)

func (k Kind) Valid() bool {
	switch k {
	case KindOccupancy, KindRevenue, KindInventory, KindAmenities:
		return true
	default:
		return false
	}
}

// Period is a calendar month as the half-open window [From, To).
type Period struct {
	Year  int
	Month time.Month
	From  time.Time
	To    time.Time
}

func NewPeriod(year int, month time.Month) Period {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	return Period{
		Year:  year,
		Month: month,
		From:  from,
		To:    from.AddDate(0, 1, 0),
	}
}

func (p Period) Days() int {
	return shared.DaysBetween(p.From, p.To)
}

type Occupancy struct {
	RoomCode     string `db:"room_code"`
	RoomType     string `db:"room_type"`
	DaysReserved int    `db:"days_reserved"`
}

type Revenue struct {
	RoomCode     string  `db:"room_code"`
	RoomType     string  `db:"room_type"`
	RatePerNight float64 `db:"rate_per_night"`
	NightsSold   int     `db:"nights_sold"`
	TotalRevenue float64 `db:"total_revenue"`
}

type Inventory struct {
	Name            string `db:"name"`
	Supplier        string `db:"supplier"`
	TotalRestocked  int    `db:"total_restocked"`
	CurrentQuantity int    `db:"current_quantity"`
}

type Amenity struct {
	Name          string  `db:"name"`
	Rate          float64 `db:"rate"`
	TimesRented   int     `db:"times_rented"`
	TotalQuantity int     `db:"total_quantity"`
	TotalRevenue  float64 `db:"total_revenue"`
}
