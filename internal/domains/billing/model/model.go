package model

import (
	"time"

	"resort/shared/model"
)

const (
	ChargeTableName  = "charge_items"
	ChargeEntityName = "charge_item"

	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	FieldID                   = "id"
	FieldReservationID        = "reservation_id"
	FieldTransactionReference = "transaction_reference"
	FieldPaymentTime          = "payment_time"
)

type PaymentStatus string

const (
	PaymentStatusPaid PaymentStatus = "paid"
)

// ChargeItem is an extra billed to a reservation on top of the room and booked amenities.
type ChargeItem struct {
	ID            string  `db:"id"`
	ReservationID string  `db:"reservation_id"`
	Description   string  `db:"description"`
	Quantity      int     `db:"quantity"`
	UnitPrice     float64 `db:"unit_price"`
	model.Metadata
}

func (c ChargeItem) Amount() float64 {
	return float64(c.Quantity) * c.UnitPrice
}

type Payment struct {
	ID                   string        `db:"id"`
	ReservationID        string        `db:"reservation_id"`
	Amount               float64       `db:"amount"`
	Method               string        `db:"method"`
	Status               PaymentStatus `db:"status"`
	TransactionReference string        `db:"transaction_reference"`
	PaymentTime          time.Time     `db:"payment_time"`
	model.Metadata
}

// Totals sums what a reservation owes besides the room itself.
type Totals struct {
	Amenities float64 `db:"amenities"`
	Extras    float64 `db:"extras"`
}
