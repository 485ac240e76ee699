package dto

import (
	"math"
	"strconv"

	"resort/internal/domains/report/model"
	"resort/shared"
)

const percent = 100

type PeriodResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Days  int `json:"days"`
}

func NewPeriodResponse(period model.Period) PeriodResponse {
	return PeriodResponse{
		Year:  period.Year,
		Month: int(period.Month),
		Days:  period.Days(),
	}
}

type OccupancyRow struct {
	RoomCode      string  `json:"room_code"`
	RoomType      string  `json:"room_type"`
	DaysReserved  int     `json:"days_reserved"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type OccupancyReport struct {
	Period PeriodResponse `json:"period"`
	Rows   []OccupancyRow `json:"rows"`
}

func NewOccupancyReport(period model.Period, rows []model.Occupancy) OccupancyReport {
	res := OccupancyReport{
		Period: NewPeriodResponse(period),
		Rows:   make([]OccupancyRow, len(rows)),
	}

	days := period.Days()

	for i, row := range rows {
		res.Rows[i] = OccupancyRow{
			RoomCode:      row.RoomCode,
			RoomType:      row.RoomType,
			DaysReserved:  row.DaysReserved,
			OccupancyRate: math.Round(float64(row.DaysReserved) / float64(days) * percent),
		}
	}

	return res
}

type RevenueRow struct {
	RoomCode     string  `json:"room_code"`
	RoomType     string  `json:"room_type"`
	RatePerNight float64 `json:"rate_per_night"`
	NightsSold   int     `json:"nights_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

type RevenueReport struct {
	Period       PeriodResponse `json:"period"`
	Rows         []RevenueRow   `json:"rows"`
	TotalRevenue float64        `json:"total_revenue"`
}

func NewRevenueReport(period model.Period, rows []model.Revenue) RevenueReport {
	res := RevenueReport{
		Period: NewPeriodResponse(period),
		Rows:   make([]RevenueRow, len(rows)),
	}

	for i, row := range rows {
		res.Rows[i] = RevenueRow{
			RoomCode:     row.RoomCode,
			RoomType:     row.RoomType,
			RatePerNight: row.RatePerNight,
			NightsSold:   row.NightsSold,
			TotalRevenue: shared.RoundCurrency(row.TotalRevenue),
		}
		res.TotalRevenue += row.TotalRevenue
	}

	res.TotalRevenue = shared.RoundCurrency(res.TotalRevenue)

	return res
}

type InventoryRow struct {
	Name            string `json:"name"`
	Supplier        string `json:"supplier"`
	TotalRestocked  int    `json:"total_restocked"`
	CurrentQuantity int    `json:"current_quantity"`
}

type InventoryReport struct {
	Period PeriodResponse `json:"period"`
	Rows   []InventoryRow `json:"rows"`
}

func NewInventoryReport(period model.Period, rows []model.Inventory) InventoryReport {
	res := InventoryReport{
		Period: NewPeriodResponse(period),
		Rows:   make([]InventoryRow, len(rows)),
	}

	for i, row := range rows {
		res.Rows[i] = InventoryRow(row)
	}

	return res
}

type AmenityRow struct {
	Name          string  `json:"name"`
	Rate          float64 `json:"rate"`
	TimesRented   int     `json:"times_rented"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

type AmenityReport struct {
	Period PeriodResponse `json:"period"`
	Rows   []AmenityRow   `json:"rows"`
}

func NewAmenityReport(period model.Period, rows []model.Amenity) AmenityReport {
	res := AmenityReport{
		Period: NewPeriodResponse(period),
		Rows:   make([]AmenityRow, len(rows)),
	}

	for i, row := range rows {
		res.Rows[i] = AmenityRow{
			Name:          row.Name,
			Rate:          row.Rate,
			TimesRented:   row.TimesRented,
			TotalQuantity: row.TotalQuantity,
			TotalRevenue:  shared.RoundCurrency(row.TotalRevenue),
		}
	}

	return res
}

// Table is the tabular rendering of a report used for exports.
type Table struct {
	Header []string
	Rows   [][]string
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) //nolint:mnd
}

func (r OccupancyReport) Table() Table {
	t := Table{Header: []string{"room_code", "room_type", "days_reserved", "occupancy_rate"}}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			row.RoomCode, row.RoomType, strconv.Itoa(row.DaysReserved), strconv.FormatFloat(row.OccupancyRate, 'f', 0, 64),
		})
	}

	return t
}

func (r RevenueReport) Table() Table {
	t := Table{Header: []string{"room_code", "room_type", "rate_per_night", "nights_sold", "total_revenue"}}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			row.RoomCode, row.RoomType, money(row.RatePerNight), strconv.Itoa(row.NightsSold), money(row.TotalRevenue),
		})
	}

	return t
}

func (r InventoryReport) Table() Table {
	t := Table{Header: []string{"name", "supplier", "total_restocked", "current_quantity"}}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			row.Name, row.Supplier, strconv.Itoa(row.TotalRestocked), strconv.Itoa(row.CurrentQuantity),
		})
	}

	return t
}

func (r AmenityReport) Table() Table {
	t := Table{Header: []string{"name", "rate", "times_rented", "total_quantity", "total_revenue"}}
	for _, row := range r.Rows {
		t.Rows = append(t.Rows, []string{
			row.Name, money(row.Rate), strconv.Itoa(row.TimesRented), strconv.Itoa(row.TotalQuantity), money(row.TotalRevenue),
		})
	}

	return t
}

type ExportResponse struct {
	Kind string `json:"kind"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}
