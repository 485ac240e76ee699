package dto

import (
	"resort/internal/domains/dashboard/model"
	"resort/shared"
)

type SummaryResponse struct {
	TotalGuests           int     `json:"total_guests"`
	ReservedRooms         int     `json:"reserved_rooms"`
	AvailableRooms        int     `json:"available_rooms"`
	TodayPayments         float64 `json:"today_payments"`
	OccupiedRooms         int     `json:"occupied_rooms"`
	ActiveRentals         int     `json:"active_rentals"`
	InventoryItems        int     `json:"inventory_items"`
	CheckedInReservations int     `json:"checked_in_reservations"`
}

func FromModel(summary model.Summary) SummaryResponse {
	return SummaryResponse{
		TotalGuests:           summary.TotalGuests,
		ReservedRooms:         summary.ReservedRooms,
		AvailableRooms:        summary.AvailableRooms,
		TodayPayments:         shared.RoundCurrency(summary.TodayPayments),
		OccupiedRooms:         summary.OccupiedRooms,
		ActiveRentals:         summary.ActiveRentals,
		InventoryItems:        summary.InventoryItems,
		CheckedInReservations: summary.CheckedInReservations,
	}
}
