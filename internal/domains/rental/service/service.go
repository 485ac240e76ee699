package service

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	amenityModel "resort/internal/domains/amenity/model"
	amenityRepo "resort/internal/domains/amenity/repository"
	billingDto "resort/internal/domains/billing/model/dto"
	billingRepo "resort/internal/domains/billing/repository"
	"resort/internal/domains/rental/model"
	"resort/internal/domains/rental/model/dto"
	"resort/internal/domains/rental/repository"
	resModel "resort/internal/domains/reservation/model"
	resRepo "resort/internal/domains/reservation/repository"
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
	messageNoActiveStay      = "Guest must have an active (checked-in) reservation to rent amenities!"
	messageAmenityNotFound   = "amenity not found"
	messageAmenityNotRent    = "amenity is not available for rent"
	messageInvalidQuantity   = "rental quantity must be greater than zero"
	messageInvalidPeriod     = "rental end must be after rental start"
	messageRentalNotFound    = "rental not found"
	messageRentalNotReturned = "rental has already been returned"
	chargeDescriptionSuffix  = " Rental"

	txRent = "rental.Rent"
)

type Rental interface {
	Rent(ctx context.Context, req dto.RentRequest) (dto.RentResponse, error)
	Return(ctx context.Context, id string) error
	ActiveRentals(ctx context.Context, guestID string) ([]dto.ActiveRentalResponse, error)
}

type serviceImpl struct {
	rentals      repository.Rental
	reservations resRepo.Reservation
	amenities    amenityRepo.Amenity
	charges      billingRepo.Charge
	transactor   postgres.Transactor
	publisher    events.Publisher
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	rentals repository.Rental,
	reservations resRepo.Reservation,
	amenities amenityRepo.Amenity,
	charges billingRepo.Charge,
	transactor postgres.Transactor,
	publisher events.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		rentals:      rentals,
		reservations: reservations,
		amenities:    amenities,
		charges:      charges,
		transactor:   transactor,
		publisher:    publisher,
		cache:        cache,
		otel:         otel,
	}
}

// Rent hands an amenity to a checked-in guest and bills rate x quantity to the guest's reservation.
func (s *serviceImpl) Rent(ctx context.Context, req dto.RentRequest) (res dto.RentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Rent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := parsePeriod(req.RentStart, req.RentEnd)
	if err != nil {
		return res, err
	}

	var rental model.Rental

	err = s.transactor.WithinTransaction(ctx, txRent, func(ctx context.Context, tx *sqlx.Tx) error {
		checkedIn, err := s.reservations.ExistTx(ctx, tx, checkedInStay(req.GuestID, req.ReservationID))
		if err != nil {
			return fmt.Errorf("failed to check guest reservation: %w", err)
		}

		if !checkedIn {
			return failure.Precondition(messageNoActiveStay) // nolint:wrapcheck
		}

		amenity, err := s.amenities.GetForUpdateTx(ctx, tx, shared.FilterByID(req.AmenityID, amenityModel.FieldID, amenityModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to lock amenity: %w", err)
		}

		if amenity.ID == constant.Empty {
			return failure.NotFound(messageAmenityNotFound) // nolint:wrapcheck
		}

		if !amenity.Availability.Rentable() {
			return failure.InvalidState(messageAmenityNotRent) // nolint:wrapcheck
		}

		if req.Quantity <= 0 {
			return failure.Validation(messageInvalidQuantity) // nolint:wrapcheck
		}

		if !end.After(start) {
			return failure.Validation(messageInvalidPeriod) // nolint:wrapcheck
		}

		rental = req.ToModel(start, end, amenity.Rate, user)

		if err = s.rentals.InsertTx(ctx, tx, rental); err != nil {
			return fmt.Errorf("failed to insert rental: %w", err)
		}

		charge := billingDto.NewChargeItem(req.ReservationID, amenity.Name+chargeDescriptionSuffix, req.Quantity, amenity.Rate, user)

		if err = s.charges.InsertTx(ctx, tx, charge); err != nil {
			return fmt.Errorf("failed to insert rental charge: %w", err)
		}

		res.ChargeID = charge.ID

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("amenity", req.AmenityID).Msg("failed to rent amenity")

		return res, err
	}

	res.RentalID = rental.ID
	res.Amount = shared.RoundCurrency(rental.Amount())

	s.afterCommit(ctx, events.TypeAmenityRented, rental)

	return res, nil
}

// Return closes an active rental. It is a plain read then write, not an atomic scope.
func (s *serviceImpl) Return(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.Return")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	rental, err := s.rentals.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return failure.NotFound(messageRentalNotFound) // nolint:wrapcheck
	}

	if !rental.Status.CanReturn() {
		return failure.InvalidState(messageRentalNotReturned) // nolint:wrapcheck
	}

	if err = s.rentals.Update(ctx, shared.StatusFields(model.FieldStatus, model.StatusReturned, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to return rental")

		return fmt.Errorf("failed to return rental: %w", err)
	}

	rental.Status = model.StatusReturned
	s.afterCommit(ctx, events.TypeAmenityReturned, rental)

	return nil
}

func (s *serviceImpl) ActiveRentals(ctx context.Context, guestID string) (res []dto.ActiveRentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".rental.ActiveRentals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldGuestID, Value: guestID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusActive, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldRentStart, SortDir: gDto.SortDirAsc}

	rentals, err := s.rentals.GetActive(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rentals")

		return res, fmt.Errorf("failed to get active rentals: %w", err)
	}

	res = make([]dto.ActiveRentalResponse, len(rentals))
	for i, rental := range rentals {
		res[i].FromModel(rental)
	}

	return res, nil
}

func (s *serviceImpl) afterCommit(ctx context.Context, eventType events.Type, rental model.Rental) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixAmenity)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	events.PublishAsync(ctx, s.publisher, events.New(ctx, eventType, rental.ID, dto.NewRentalEvent(rental)))
}

func checkedInStay(guestID, reservationID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: resModel.FieldID, Value: reservationID, Operator: gDto.FilterOperatorEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldGuestID, Value: guestID, Operator: gDto.FilterOperatorEq, Table: resModel.TableName},
			gDto.Filter{Field: resModel.FieldStatus, Value: resModel.StatusCheckedIn, Operator: gDto.FilterOperatorEq, Table: resModel.TableName},
		},
	}
}

func parsePeriod(startValue, endValue string) (start, end time.Time, err error) {
	if start, err = time.Parse(time.RFC3339, startValue); err != nil {
		return start, end, failure.Validation(fmt.Sprintf("invalid rent_start %q, expected RFC3339", startValue)) // nolint:wrapcheck
	}

	if end, err = time.Parse(time.RFC3339, endValue); err != nil {
		return start, end, failure.Validation(fmt.Sprintf("invalid rent_end %q, expected RFC3339", endValue)) // nolint:wrapcheck
	}

	return start, end, nil
}
