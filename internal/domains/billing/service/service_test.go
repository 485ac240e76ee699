package service_test

import (
	"context"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	pgMocks "resort/infras/postgres/mocks"
	billingMocks "resort/internal/domains/billing/mocks"
	"resort/internal/domains/billing/model"
	"resort/internal/domains/billing/model/dto"
	"resort/internal/domains/billing/service"
	resMocks "resort/internal/domains/reservation/mocks"
	resModel "resort/internal/domains/reservation/model"
	roomMocks "resort/internal/domains/room/mocks"
	roomModel "resort/internal/domains/room/model"
	eventMocks "resort/internal/events/mocks"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc          service.Billing
	charges      *billingMocks.MockCharge
	payments     *billingMocks.MockPayment
	reservations *resMocks.MockReservation
	logs         *resMocks.MockLog
	rooms        *roomMocks.MockRoom
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		charges:      billingMocks.NewMockCharge(ctrl),
		payments:     billingMocks.NewMockPayment(ctrl),
		reservations: resMocks.NewMockReservation(ctrl),
		logs:         resMocks.NewMockLog(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
	}

	transactor := pgMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunInline).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.charges, f.payments, f.reservations, f.logs, f.rooms, transactor, publisher, cache, mocks.NewOtel())

	return f
}

// anaCruzStay is three nights in a $100 room with a $40 kayak rental on the bill.
func anaCruzStay(status resModel.Status) (resModel.Reservation, roomModel.Room, model.Totals) {
	reservation := resModel.Reservation{
		ID:       "res-1",
		GuestID:  "g-1",
		RoomID:   "r-1",
		CheckIn:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:   status,
	}

	room := roomModel.Room{ID: "r-1", RoomType: "Standard", MaxCapacity: 2, RatePerNight: 100, Status: roomModel.StatusOccupied}

	return reservation, room, model.Totals{Extras: 40}
}

func TestBillingService_CheckOut(t *testing.T) {
	reservation, room, totals := anaCruzStay(resModel.StatusCheckedIn)

	lockStay := func(f fixture) {
		f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
		f.charges.EXPECT().TotalsTx(gomock.Any(), gomock.Any(), "res-1").Return(totals, nil)
	}

	tests := []struct {
		name       string
		req        dto.CheckOutRequest
		setupMock  func(f fixture)
		wantTotal  float64
		wantChange float64
		wantKind   failure.Kind
		wantErr    bool
	}{
		{
			name: "exact payment settles the bill and frees the room",
			req:  dto.CheckOutRequest{AmountPaid: 340.00, PaymentMethod: "cash", TransactionReference: "TX-001"},
			setupMock: func(f fixture) {
				lockStay(f)
				f.payments.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
						assert.Equal(t, model.PaymentStatusPaid, payment.Status)
						assert.Equal(t, 340.0, payment.Amount)

						return nil
					})
				f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, resModel.StatusCheckedOut, fields[resModel.FieldStatus])

						return nil
					})
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

						return nil
					})
				f.logs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, entry resModel.Log) error {
						assert.Equal(t, resModel.LogEventCheckOut, entry.EventType)
						assert.Equal(t, "Guest checked out and payment settled", entry.Notes)

						return nil
					})
			},
			wantTotal: 340,
		},
		{
			name: "overpayment returns change",
			req:  dto.CheckOutRequest{AmountPaid: 400, PaymentMethod: "card", TransactionReference: "TX-002"},
			setupMock: func(f fixture) {
				lockStay(f)
				f.payments.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.logs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantTotal:  340,
			wantChange: 60,
		},
		{
			name: "one cent short",
			req:  dto.CheckOutRequest{AmountPaid: 339.99, PaymentMethod: "cash", TransactionReference: "TX-003"},
			setupMock: func(f fixture) {
				lockStay(f)
			},
			wantErr:  true,
			wantKind: failure.KindInsufficientPayment,
		},
		{
			name: "transaction reference already used",
			req:  dto.CheckOutRequest{AmountPaid: 340, PaymentMethod: "cash", TransactionReference: "TX-001"},
			setupMock: func(f fixture) {
				lockStay(f)
				f.payments.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "reference taken by a concurrent checkout",
			req:  dto.CheckOutRequest{AmountPaid: 340, PaymentMethod: "cash", TransactionReference: "TX-004"},
			setupMock: func(f fixture) {
				lockStay(f)
				f.payments.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: "payments_transaction_reference_key"})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "confirmed reservation cannot be checked out",
			req:  dto.CheckOutRequest{AmountPaid: 340, PaymentMethod: "cash", TransactionReference: "TX-005"},
			setupMock: func(f fixture) {
				confirmed, _, _ := anaCruzStay(resModel.StatusConfirmed)
				f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmed, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
		{
			name: "unknown reservation",
			req:  dto.CheckOutRequest{AmountPaid: 340, PaymentMethod: "cash", TransactionReference: "TX-006"},
			setupMock: func(f fixture) {
				f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(resModel.Reservation{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			res, err := f.svc.CheckOut(context.Background(), "res-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, res.TotalCharges)
				assert.Equal(t, tt.wantChange, res.Change)
				assert.NotEmpty(t, res.PaymentID)
			}
		})
	}
}

func TestBillingService_CheckOutInsufficientPaymentDetails(t *testing.T) {
	f := newService(t)
	reservation, room, totals := anaCruzStay(resModel.StatusCheckedIn)

	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
	f.charges.EXPECT().TotalsTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(totals, nil)

	_, err := f.svc.CheckOut(context.Background(), "res-1", dto.CheckOutRequest{AmountPaid: 300, PaymentMethod: "cash", TransactionReference: "TX-007"})

	details := failure.GetDetails(err)
	assert.Equal(t, 300.0, details[failure.DetailAmountPaid])
	assert.Equal(t, 340.0, details[failure.DetailTotalCharges])
}

func TestBillingService_TotalCharges(t *testing.T) {
	f := newService(t)
	reservation, room, _ := anaCruzStay(resModel.StatusCheckedIn)

	f.reservations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)
	f.charges.EXPECT().Totals(gomock.Any(), "res-1").Return(model.Totals{Amenities: 20, Extras: 40}, nil)
	f.charges.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ChargeItem{{ID: "c-1", Description: "Kayak Rental", Quantity: 2, UnitPrice: 20}}, nil)

	res, err := f.svc.TotalCharges(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, 300.0, res.RoomCharges)
	assert.Equal(t, 20.0, res.AmenityCharges)
	assert.Equal(t, 40.0, res.ExtraCharges)
	assert.Equal(t, 360.0, res.Total)
	assert.Equal(t, 40.0, res.Items[0].Amount)
}

func TestBillingService_AddCharge(t *testing.T) {
	tests := []struct {
		name     string
		status   resModel.Status
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "checked-in reservation", status: resModel.StatusCheckedIn},
		{name: "confirmed reservation", status: resModel.StatusConfirmed},
		{name: "checked-out reservation", status: resModel.StatusCheckedOut, wantErr: true, wantKind: failure.KindInvalidState},
		{name: "cancelled reservation", status: resModel.StatusCancelled, wantErr: true, wantKind: failure.KindInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)

			f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(resModel.Reservation{ID: "res-1", Status: tt.status}, nil)

			if !tt.wantErr {
				f.charges.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, charge model.ChargeItem) error {
						assert.Equal(t, "Minibar", charge.Description)
						assert.Equal(t, 12.5, charge.UnitPrice)

						return nil
					})
			}

			id, err := f.svc.AddCharge(context.Background(), "res-1", dto.AddChargeRequest{Description: "Minibar", Quantity: 2, UnitPrice: 12.499})

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestBillingService_IsTransactionRefUnique(t *testing.T) {
	f := newService(t)

	f.payments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	unique, err := f.svc.IsTransactionRefUnique(context.Background(), "TX-001")

	assert.NoError(t, err)
	assert.False(t, unique)
}
