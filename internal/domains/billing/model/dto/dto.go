package dto

import (
	"resort/internal/domains/billing/model"
	"resort/shared"
	"resort/shared/constant"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/google/uuid"
)

type CheckOutRequest struct {
	AmountPaid           float64 `json:"amount_paid"           validate:"gte=0"`
	PaymentMethod        string  `json:"payment_method"        validate:"required,max=50"`
	TransactionReference string  `json:"transaction_reference" validate:"required,max=100"`
}

func (c *CheckOutRequest) ToModel(reservationID, user string) model.Payment {
	now := timezone.Now()

	return model.Payment{
		ID:                   uuid.NewString(),
		ReservationID:        reservationID,
		Amount:               shared.RoundCurrency(c.AmountPaid),
		Method:               c.PaymentMethod,
		Status:               model.PaymentStatusPaid,
		TransactionReference: c.TransactionReference,
		PaymentTime:          now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AddChargeRequest struct {
	Description string  `json:"description" validate:"required,max=200"`
	Quantity    int     `json:"quantity"    validate:"required,min=1"`
	UnitPrice   float64 `json:"unit_price"  validate:"gte=0"`
}

func (a *AddChargeRequest) ToModel(reservationID, user string) model.ChargeItem {
	return NewChargeItem(reservationID, a.Description, a.Quantity, a.UnitPrice, user)
}

func NewChargeItem(reservationID, description string, quantity int, unitPrice float64, user string) model.ChargeItem {
	now := timezone.Now()

	return model.ChargeItem{
		ID:            uuid.NewString(),
		ReservationID: reservationID,
		Description:   description,
		Quantity:      quantity,
		UnitPrice:     shared.RoundCurrency(unitPrice),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ChargeItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

func (r *ChargeItemResponse) FromModel(model model.ChargeItem) {
	r.ID = model.ID
	r.Description = model.Description
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.Amount = shared.RoundCurrency(model.Amount())
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}

// ChargeBreakdown is the bill of a reservation: nights at the room rate, booked amenities and extras.
type ChargeBreakdown struct {
	ReservationID  string               `json:"reservation_id"`
	Nights         int                  `json:"nights"`
	RoomRate       float64              `json:"room_rate"`
	RoomCharges    float64              `json:"room_charges"`
	AmenityCharges float64              `json:"amenity_charges"`
	ExtraCharges   float64              `json:"extra_charges"`
	Total          float64              `json:"total"`
	Items          []ChargeItemResponse `json:"items,omitempty"`
}

func NewChargeBreakdown(reservationID string, nights int, roomRate float64, totals model.Totals) ChargeBreakdown {
	res := ChargeBreakdown{
		ReservationID:  reservationID,
		Nights:         nights,
		RoomRate:       roomRate,
		RoomCharges:    shared.RoundCurrency(float64(nights) * roomRate),
		AmenityCharges: shared.RoundCurrency(totals.Amenities),
		ExtraCharges:   shared.RoundCurrency(totals.Extras),
	}

	res.Total = shared.RoundCurrency(res.RoomCharges + res.AmenityCharges + res.ExtraCharges)

	return res
}

type PaymentResponse struct {
	ID                   string              `json:"id"`
	ReservationID        string              `json:"reservation_id"`
	Amount               float64             `json:"amount"`
	Method               string              `json:"method"`
	Status               model.PaymentStatus `json:"status"`
	TransactionReference string              `json:"transaction_reference"`
	PaymentTime          string              `json:"payment_time"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.TransactionReference = model.TransactionReference
	r.PaymentTime = model.PaymentTime.Format(constant.DateFormat)
}

type CheckOutResponse struct {
	PaymentID     string  `json:"payment_id"`
	ReservationID string  `json:"reservation_id"`
	TotalCharges  float64 `json:"total_charges"`
	AmountPaid    float64 `json:"amount_paid"`
	Change        float64 `json:"change"`
}

type TransactionReferenceResponse struct {
	Reference string `json:"reference"`
	Unique    bool   `json:"unique"`
}

// ChargeEvent is the payload of the charge added event.
type ChargeEvent struct {
	ReservationID string  `json:"reservation_id"`
	ChargeID      string  `json:"charge_id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
}
