package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/billing/model"
	"resort/internal/domains/billing/model/dto"
	"resort/internal/domains/billing/repository"
	resModel "resort/internal/domains/reservation/model"
	resDto "resort/internal/domains/reservation/model/dto"
	resRepo "resort/internal/domains/reservation/repository"
	roomModel "resort/internal/domains/room/model"
	roomRepo "resort/internal/domains/room/repository"
	"resort/internal/events"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	messageReservationNotFound = "Reservation not found!"
	messageRoomNotFound        = "room not found"
	messageNotCheckedIn        = "Guest must be checked in before checking out!"
	messageReferenceUsed       = "transaction reference has already been used"
	messageNotBillable         = "charges cannot be added to a checked-out or cancelled reservation"
	noteCheckedOut             = "Guest checked out and payment settled"

	txCheckOut  = "billing.CheckOut"
	txAddCharge = "billing.AddCharge"
)

type Billing interface {
	TotalCharges(ctx context.Context, reservationID string) (dto.ChargeBreakdown, error)
	CheckOut(ctx context.Context, reservationID string, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
	AddCharge(ctx context.Context, reservationID string, req dto.AddChargeRequest) (string, error)
	IsTransactionRefUnique(ctx context.Context, reference string) (bool, error)
	GetPayments(ctx context.Context, reservationID string) ([]dto.PaymentResponse, error)
}

type serviceImpl struct {
	charges      repository.Charge
	payments     repository.Payment
	reservations resRepo.Reservation
	logs         resRepo.Log
	rooms        roomRepo.Room
	transactor   postgres.Transactor
	publisher    events.Publisher
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	charges repository.Charge,
	payments repository.Payment,
	reservations resRepo.Reservation,
	logs resRepo.Log,
	rooms roomRepo.Room,
	transactor postgres.Transactor,
	publisher events.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Billing {
	return &serviceImpl{
		charges:      charges,
		payments:     payments,
		reservations: reservations,
		logs:         logs,
		rooms:        rooms,
		transactor:   transactor,
		publisher:    publisher,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) TotalCharges(ctx context.Context, reservationID string) (res dto.ChargeBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.TotalCharges")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reservation, err := s.reservations.Get(ctx, shared.FilterByID(reservationID, resModel.FieldID, resModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	totals, err := s.charges.Totals(ctx, reservationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum reservation charges")

		return res, fmt.Errorf("failed to sum reservation charges: %w", err)
	}

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}

	items, err := s.charges.GetAll(ctx, params, shared.FilterByID(reservationID, model.FieldReservationID, model.ChargeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get charge items")

		return res, fmt.Errorf("failed to get charge items: %w", err)
	}

	res = dto.NewChargeBreakdown(reservationID, shared.DaysBetween(reservation.CheckIn, reservation.CheckOut), room.RatePerNight, totals)

	res.Items = make([]dto.ChargeItemResponse, len(items))
	for i, item := range items {
		res.Items[i].FromModel(item)
	}

	return res, nil
}

// CheckOut settles the bill of a checked-in reservation and frees its room. The payment must cover
// the total charges and its transaction reference must not have been used before.
func (s *serviceImpl) CheckOut(ctx context.Context, reservationID string, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	payment := req.ToModel(reservationID, user)

	var reservation resModel.Reservation

	err = s.transactor.WithinTransaction(ctx, txCheckOut, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(reservationID, resModel.FieldID, resModel.TableName)

		reservation, err = s.reservations.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
		}

		if !reservation.Status.CanCheckOut() {
			return failure.InvalidState(messageNotCheckedIn) // nolint:wrapcheck
		}

		roomFilter := shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName)

		room, err := s.rooms.GetForUpdateTx(ctx, tx, roomFilter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound(messageRoomNotFound) // nolint:wrapcheck
		}

		totals, err := s.charges.TotalsTx(ctx, tx, reservationID)
		if err != nil {
			return fmt.Errorf("failed to sum reservation charges: %w", err)
		}

		breakdown := dto.NewChargeBreakdown(reservationID, shared.DaysBetween(reservation.CheckIn, reservation.CheckOut), room.RatePerNight, totals)

		if payment.Amount < breakdown.Total {
			return failure.InsufficientPayment(payment.Amount, breakdown.Total) // nolint:wrapcheck
		}

		used, err := s.payments.ExistTx(ctx, tx, referenceFilter(req.TransactionReference))
		if err != nil {
			return fmt.Errorf("failed to check transaction reference: %w", err)
		}

		if used {
			return failure.Conflict(messageReferenceUsed) // nolint:wrapcheck
		}

		if err = s.payments.InsertTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		if err = s.reservations.UpdateTx(ctx, tx, shared.StatusFields(resModel.FieldStatus, resModel.StatusCheckedOut, user), filter); err != nil {
			return fmt.Errorf("failed to check out reservation: %w", err)
		}

		if err = s.rooms.UpdateTx(ctx, tx, shared.StatusFields(roomModel.FieldStatus, roomModel.StatusAvailable, user), roomFilter); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}

		if err = s.logs.InsertTx(ctx, tx, resDto.NewLog(reservationID, resModel.LogEventCheckOut, noteCheckedOut, user)); err != nil {
			return fmt.Errorf("failed to log check-out: %w", err)
		}

		res.TotalCharges = breakdown.Total

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", reservationID).Msg("failed to check out reservation")

		return res, err
	}

	res.PaymentID = payment.ID
	res.ReservationID = reservationID
	res.AmountPaid = payment.Amount
	res.Change = shared.RoundCurrency(payment.Amount - res.TotalCharges)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixGuest)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	reservation.Status = resModel.StatusCheckedOut
	events.PublishAsync(ctx, s.publisher,
		events.New(ctx, events.TypeReservationCheckedOut, reservationID, resDto.NewReservationEvent(reservation)))

	return res, nil
}

// AddCharge appends an ad-hoc charge to a reservation that has not been settled or cancelled.
func (s *serviceImpl) AddCharge(ctx context.Context, reservationID string, req dto.AddChargeRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.AddCharge")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	charge := req.ToModel(reservationID, user)

	err = s.transactor.WithinTransaction(ctx, txAddCharge, func(ctx context.Context, tx *sqlx.Tx) error {
		reservation, err := s.reservations.GetForUpdateTx(ctx, tx, shared.FilterByID(reservationID, resModel.FieldID, resModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
		}

		if !reservation.Status.Billable() {
			return failure.InvalidState(messageNotBillable) // nolint:wrapcheck
		}

		if err = s.charges.InsertTx(ctx, tx, charge); err != nil {
			return fmt.Errorf("failed to insert charge item: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", reservationID).Msg("failed to add charge")

		return constant.Empty, err
	}

	events.PublishAsync(ctx, s.publisher, events.New(ctx, events.TypeChargeAdded, reservationID, dto.ChargeEvent{
		ReservationID: reservationID,
		ChargeID:      charge.ID,
		Description:   charge.Description,
		Amount:        shared.RoundCurrency(charge.Amount()),
	}))

	return charge.ID, nil
}

func (s *serviceImpl) IsTransactionRefUnique(ctx context.Context, reference string) (unique bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.IsTransactionRefUnique")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	used, err := s.payments.Exist(ctx, referenceFilter(reference))
	if err != nil {
		log.Error().Err(err).Msg("failed to check transaction reference")

		return false, fmt.Errorf("failed to check transaction reference: %w", err)
	}

	return !used, nil
}

func (s *serviceImpl) GetPayments(ctx context.Context, reservationID string) (res []dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".billing.GetPayments")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldPaymentTime, SortDir: gDto.SortDirDesc}

	payments, err := s.payments.GetAll(ctx, params, shared.FilterByID(reservationID, model.FieldReservationID, model.PaymentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res = make([]dto.PaymentResponse, len(payments))
	for i, payment := range payments {
		res[i].FromModel(payment)
	}

	return res, nil
}

func referenceFilter(reference string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTransactionReference,
				Value:    reference,
				Operator: gDto.FilterOperatorEq,
				Table:    model.PaymentTableName,
			},
		},
	}
}
