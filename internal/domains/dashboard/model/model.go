package model

type Summary struct {
	TotalGuests           int
	ReservedRooms         int
	AvailableRooms        int
	TodayPayments         float64
	OccupiedRooms         int
	ActiveRentals         int
	InventoryItems        int
	CheckedInReservations int
}
