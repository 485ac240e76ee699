package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/postgres"
	amenityModel "resort/internal/domains/amenity/model"
	amenityRepo "resort/internal/domains/amenity/repository"
	guestModel "resort/internal/domains/guest/model"
	guestRepo "resort/internal/domains/guest/repository"
	"resort/internal/domains/reservation/model"
	"resort/internal/domains/reservation/model/dto"
	"resort/internal/domains/reservation/repository"
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
	messageReservationNotFound = "reservation not found"
	messageGuestNotFound       = "guest not found"
	messageRoomNotFound        = "room not found"
	messageAmenityNotFound     = "amenity not found"
	messageRoomMaintenance     = "room is under maintenance and cannot be booked"
	messageRoomAlreadyBooked   = "room is already booked for the requested dates"
	messageInvalidStay         = "check-out date must be after check-in date"
	messageAlreadyCheckedIn    = "Guest is already checked in!"
	messageAlreadyCheckedOut   = "This reservation has already been checked out!"
	messageCancelled           = "This reservation has been cancelled!"
	messageNotCancellable      = "only confirmed reservations can be cancelled"
	noteCheckedIn              = "Guest checked in successfully"

	txCreate  = "reservation.Create"
	txCheckIn = "reservation.CheckIn"
	txCancel  = "reservation.Cancel"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (string, error)
	CheckIn(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Logs(ctx context.Context, id string) ([]dto.LogResponse, error)
}

type serviceImpl struct {
	reservations repository.Reservation
	links        repository.Amenity
	logs         repository.Log
	guests       guestRepo.Guest
	rooms        roomRepo.Room
	amenities    amenityRepo.Amenity
	transactor   postgres.Transactor
	publisher    events.Publisher
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	reservations repository.Reservation,
	links repository.Amenity,
	logs repository.Log,
	guests guestRepo.Guest,
	rooms roomRepo.Room,
	amenities amenityRepo.Amenity,
	transactor postgres.Transactor,
	publisher events.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		reservations: reservations,
		links:        links,
		logs:         logs,
		guests:       guests,
		rooms:        rooms,
		amenities:    amenities,
		transactor:   transactor,
		publisher:    publisher,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a room for a guest. The stay is [check_in, check_out) and must not overlap
// another confirmed or checked-in stay of the same room.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return constant.Empty, err
	}

	reservation := req.ToModel(checkIn, checkOut, user)

	err = s.transactor.WithinTransaction(ctx, txCreate, func(ctx context.Context, tx *sqlx.Tx) error {
		exist, err := s.guests.ExistTx(ctx, tx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check guest: %w", err)
		}

		if !exist {
			return failure.NotFound(messageGuestNotFound) // nolint:wrapcheck
		}

		roomFilter := shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName)

		room, err := s.rooms.GetForUpdateTx(ctx, tx, roomFilter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound(messageRoomNotFound) // nolint:wrapcheck
		}

		if !room.Status.Bookable() {
			return failure.InvalidState(messageRoomMaintenance) // nolint:wrapcheck
		}

		overlapping, err := s.reservations.CountOverlappingTx(ctx, tx, room.ID, checkIn, checkOut)
		if err != nil {
			return fmt.Errorf("failed to check room availability: %w", err)
		}

		if overlapping > 0 {
			return failure.Conflict(messageRoomAlreadyBooked) // nolint:wrapcheck
		}

		if err = s.reservations.InsertTx(ctx, tx, reservation); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		if room.Status == roomModel.StatusAvailable {
			if err = s.rooms.UpdateTx(ctx, tx, shared.StatusFields(roomModel.FieldStatus, roomModel.StatusReserved, user), roomFilter); err != nil {
				return fmt.Errorf("failed to reserve room: %w", err)
			}
		}

		links := make([]model.Amenity, 0, len(req.AmenityIDs))

		for _, amenityID := range req.AmenityIDs {
			amenity, err := s.amenities.GetTx(ctx, tx, shared.FilterByID(amenityID, amenityModel.FieldID, amenityModel.TableName))
			if err != nil {
				return fmt.Errorf("failed to get amenity: %w", err)
			}

			if amenity.ID == constant.Empty {
				return failure.NotFound(messageAmenityNotFound) // nolint:wrapcheck
			}

			links = append(links, dto.NewAmenityLink(reservation.ID, amenity.ID, amenity.Rate, user))
		}

		if len(links) == 0 {
			return nil
		}

		if err = s.links.InsertBulkTx(ctx, tx, links); err != nil {
			return fmt.Errorf("failed to link amenities: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomID).Msg("failed to create reservation")

		return constant.Empty, err
	}

	s.afterCommit(ctx, events.TypeReservationCreated, reservation)

	return reservation.ID, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var reservation model.Reservation

	err = s.transactor.WithinTransaction(ctx, txCheckIn, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		reservation, err = s.reservations.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
		}

		switch reservation.Status {
		case model.StatusCheckedIn:
			return failure.InvalidState(messageAlreadyCheckedIn) // nolint:wrapcheck
		case model.StatusCheckedOut:
			return failure.InvalidState(messageAlreadyCheckedOut) // nolint:wrapcheck
		case model.StatusCancelled:
			return failure.InvalidState(messageCancelled) // nolint:wrapcheck
		}

		if !reservation.Status.CanCheckIn() {
			return failure.InvalidState(fmt.Sprintf("a %s reservation cannot be checked in", reservation.Status)) // nolint:wrapcheck
		}

		if err = s.reservations.UpdateTx(ctx, tx, shared.StatusFields(model.FieldStatus, model.StatusCheckedIn, user), filter); err != nil {
			return fmt.Errorf("failed to check in reservation: %w", err)
		}

		roomFilter := shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName)
		if err = s.rooms.UpdateTx(ctx, tx, shared.StatusFields(roomModel.FieldStatus, roomModel.StatusOccupied, user), roomFilter); err != nil {
			return fmt.Errorf("failed to occupy room: %w", err)
		}

		if err = s.logs.InsertTx(ctx, tx, dto.NewLog(id, model.LogEventCheckIn, noteCheckedIn, user)); err != nil {
			return fmt.Errorf("failed to log check-in: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to check in reservation")

		return err
	}

	reservation.Status = model.StatusCheckedIn
	s.afterCommit(ctx, events.TypeReservationCheckedIn, reservation)

	return nil
}

// Cancel releases a confirmed reservation. The room goes back to available once nothing else holds it.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var reservation model.Reservation

	err = s.transactor.WithinTransaction(ctx, txCancel, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		reservation, err = s.reservations.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
		}

		if !reservation.Status.CanCancel() {
			return failure.InvalidState(messageNotCancellable) // nolint:wrapcheck
		}

		if err = s.reservations.UpdateTx(ctx, tx, shared.StatusFields(model.FieldStatus, model.StatusCancelled, user), filter); err != nil {
			return fmt.Errorf("failed to cancel reservation: %w", err)
		}

		roomFilter := shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName)

		room, err := s.rooms.GetForUpdateTx(ctx, tx, roomFilter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.Status != roomModel.StatusReserved {
			return nil
		}

		active, err := s.reservations.CountActiveForRoomTx(ctx, tx, room.ID)
		if err != nil {
			return fmt.Errorf("failed to count room reservations: %w", err)
		}

		if active > 0 {
			return nil
		}

		if err = s.rooms.UpdateTx(ctx, tx, shared.StatusFields(roomModel.FieldStatus, roomModel.StatusAvailable, user), roomFilter); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to cancel reservation")

		return err
	}

	reservation.Status = model.StatusCancelled
	s.afterCommit(ctx, events.TypeReservationCancelled, reservation)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	overview, err := s.reservations.GetOverview(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if overview.ID == constant.Empty {
		return res, failure.NotFound(messageReservationNotFound) // nolint:wrapcheck
	}

	res.FromModel(overview)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.SortDir == constant.Empty {
		req.SortDir = gDto.SortDirDesc
	}

	req = shared.WithDefaultSort(req, model.FieldCheckIn, model.FieldCheckIn, model.FieldCheckOut, model.FieldStatus, constant.FieldCreatedAt)
	req.SortBy = model.TableName + "." + req.SortBy

	total, err := s.reservations.CountOverviews(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.reservations.GetOverviews(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Logs(ctx context.Context, id string) (res []dto.LogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Logs")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldEventTime, SortDir: gDto.SortDirAsc}

	logs, err := s.logs.GetAll(ctx, params, shared.FilterByID(id, model.FieldReservationID, model.LogTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get check-in/out logs")

		return res, fmt.Errorf("failed to get check-in/out logs: %w", err)
	}

	res = make([]dto.LogResponse, len(logs))
	for i, entry := range logs {
		res[i].FromModel(entry)
	}

	return res, nil
}

func (s *serviceImpl) afterCommit(ctx context.Context, eventType events.Type, reservation model.Reservation) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, constant.CachePrefixRoom)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	events.PublishAsync(ctx, s.publisher, events.New(ctx, eventType, reservation.ID, dto.NewReservationEvent(reservation)))
}

func parseStay(checkInValue, checkOutValue string) (checkIn, checkOut time.Time, err error) {
	if checkIn, err = shared.ParseDate(checkInValue); err != nil {
		return checkIn, checkOut, failure.Validation(err.Error()) // nolint:wrapcheck
	}

	if checkOut, err = shared.ParseDate(checkOutValue); err != nil {
		return checkIn, checkOut, failure.Validation(err.Error()) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.Validation(messageInvalidStay) // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}
