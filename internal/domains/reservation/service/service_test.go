package service_test

import (
	"context"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	pgMocks "resort/infras/postgres/mocks"
	amenityMocks "resort/internal/domains/amenity/mocks"
	amenityModel "resort/internal/domains/amenity/model"
	guestMocks "resort/internal/domains/guest/mocks"
	resMocks "resort/internal/domains/reservation/mocks"
	"resort/internal/domains/reservation/model"
	"resort/internal/domains/reservation/model/dto"
	"resort/internal/domains/reservation/service"
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
	svc          service.Reservation
	reservations *resMocks.MockReservation
	links        *resMocks.MockAmenity
	logs         *resMocks.MockLog
	guests       *guestMocks.MockGuest
	rooms        *roomMocks.MockRoom
	amenities    *amenityMocks.MockAmenity
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		reservations: resMocks.NewMockReservation(ctrl),
		links:        resMocks.NewMockAmenity(ctrl),
		logs:         resMocks.NewMockLog(ctrl),
		guests:       guestMocks.NewMockGuest(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		amenities:    amenityMocks.NewMockAmenity(ctrl),
	}

	transactor := pgMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().WithinTransaction(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunInline).AnyTimes()

	publisher := eventMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.reservations, f.links, f.logs, f.guests, f.rooms, f.amenities, transactor, publisher, cache, mocks.NewOtel())

	return f
}

func statusOf(t *testing.T, fields map[string]any) string {
	t.Helper()

	switch status := fields["status"].(type) {
	case model.Status:
		return string(status)
	case roomModel.Status:
		return string(status)
	default:
		t.Fatalf("unexpected status type %T", status)

		return ""
	}
}

func TestReservationService_Create(t *testing.T) {
	room := roomModel.Room{ID: "r-1", Code: "DLX-0A1B2C3D4E", RatePerNight: 100, Status: roomModel.StatusAvailable}
	req := dto.CreateReservationRequest{
		GuestID:  "g-1",
		RoomID:   "r-1",
		CheckIn:  "2025-06-01",
		CheckOut: "2025-06-04",
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "books the room and snapshots amenity rates",
			req: func() dto.CreateReservationRequest {
				r := req
				r.AmenityIDs = []string{"a-1"}

				return r
			}(),
			setupMock: func(f fixture) {
				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.reservations.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), "r-1",
					time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)).Return(0, nil)
				f.reservations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
						assert.Equal(t, model.StatusConfirmed, reservation.Status)

						return nil
					})
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, string(roomModel.StatusReserved), statusOf(t, fields))

						return nil
					})
				f.amenities.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(amenityModel.Amenity{ID: "a-1", Name: "Kayak", Rate: 20}, nil)
				f.links.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, links []model.Amenity) error {
						assert.Len(t, links, 1)
						assert.Equal(t, "a-1", links[0].AmenityID)
						assert.Equal(t, 1, links[0].Quantity)
						assert.Equal(t, 20.0, links[0].UnitRate)

						return nil
					})
			},
		},
		{
			name: "occupied room keeps its status for a future stay",
			req:  req,
			setupMock: func(f fixture) {
				occupied := room
				occupied.Status = roomModel.StatusOccupied

				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(occupied, nil)
				f.reservations.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), "r-1", gomock.Any(), gomock.Any()).Return(0, nil)
				f.reservations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				f.links.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			name: "check-out on the check-in date",
			req: func() dto.CreateReservationRequest {
				r := req
				r.CheckOut = r.CheckIn

				return r
			}(),
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "unknown guest",
			req:  req,
			setupMock: func(f fixture) {
				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "room under maintenance",
			req:  req,
			setupMock: func(f fixture) {
				maintenance := room
				maintenance.Status = roomModel.StatusMaintenance

				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(maintenance, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
		{
			name: "overlapping stay",
			req:  req,
			setupMock: func(f fixture) {
				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.reservations.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "exclusion constraint raised at insert",
			req:  req,
			setupMock: func(f fixture) {
				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.reservations.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				f.reservations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23P01", Constraint: "reservations_room_stay_excl"})
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "unknown amenity rolls the booking back",
			req: func() dto.CreateReservationRequest {
				r := req
				r.AmenityIDs = []string{"missing"}

				return r
			}(),
			setupMock: func(f fixture) {
				f.guests.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.reservations.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil)
				f.reservations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.amenities.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(amenityModel.Amenity{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			id, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestReservationService_CheckIn(t *testing.T) {
	tests := []struct {
		name     string
		status   model.Status
		wantMsg  string
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "confirmed reservation", status: model.StatusConfirmed},
		{name: "already checked in", status: model.StatusCheckedIn, wantErr: true, wantKind: failure.KindInvalidState, wantMsg: "Guest is already checked in!"},
		{name: "already checked out", status: model.StatusCheckedOut, wantErr: true, wantKind: failure.KindInvalidState, wantMsg: "This reservation has already been checked out!"},
		{name: "cancelled", status: model.StatusCancelled, wantErr: true, wantKind: failure.KindInvalidState, wantMsg: "This reservation has been cancelled!"},
		{name: "unrecognised status", status: model.Status("no-show"), wantErr: true, wantKind: failure.KindInvalidState, wantMsg: "a no-show reservation cannot be checked in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)

			f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.Reservation{ID: "res-1", RoomID: "r-1", Status: tt.status}, nil)

			if !tt.wantErr {
				f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, string(model.StatusCheckedIn), statusOf(t, fields))

						return nil
					})
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, string(roomModel.StatusOccupied), statusOf(t, fields))

						return nil
					})
				f.logs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, entry model.Log) error {
						assert.Equal(t, model.LogEventCheckIn, entry.EventType)
						assert.Equal(t, "Guest checked in successfully", entry.Notes)

						return nil
					})
			}

			err := f.svc.CheckIn(context.Background(), "res-1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.EqualError(t, err, tt.wantMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_CheckInNotFound(t *testing.T) {
	f := newService(t)

	f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

	err := f.svc.CheckIn(context.Background(), "missing")

	assert.True(t, failure.Is(err, failure.KindNotFound))
}

func TestReservationService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "releases the room when nothing else holds it",
			setupMock: func(f fixture) {
				f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "res-1", RoomID: "r-1", Status: model.StatusConfirmed}, nil)
				f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "r-1", Status: roomModel.StatusReserved}, nil)
				f.reservations.EXPECT().CountActiveForRoomTx(gomock.Any(), gomock.Any(), "r-1").Return(0, nil)
				f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, string(roomModel.StatusAvailable), statusOf(t, fields))

						return nil
					})
			},
		},
		{
			name: "room stays reserved for another booking",
			setupMock: func(f fixture) {
				f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "res-1", RoomID: "r-1", Status: model.StatusConfirmed}, nil)
				f.reservations.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "r-1", Status: roomModel.StatusReserved}, nil)
				f.reservations.EXPECT().CountActiveForRoomTx(gomock.Any(), gomock.Any(), "r-1").Return(1, nil)
			},
		},
		{
			name: "checked-in reservation cannot be cancelled",
			setupMock: func(f fixture) {
				f.reservations.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "res-1", Status: model.StatusCheckedIn}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), "res-1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	f := newService(t)

	f.reservations.EXPECT().GetOverview(gomock.Any(), gomock.Any()).Return(model.Overview{
		ID:             "res-1",
		GuestFirstName: "Ana",
		GuestLastName:  "Cruz",
		RoomCode:       "DLX-0A1B2C3D4E",
		CheckIn:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:       time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Status:         model.StatusConfirmed,
	}, nil)

	res, err := f.svc.Get(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana Cruz", res.GuestName)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "2025-06-04", res.CheckOut)
}

func TestReservationService_GetAll(t *testing.T) {
	f := newService(t)

	f.reservations.EXPECT().CountOverviews(gomock.Any(), gomock.Any()).Return(1, nil)
	f.reservations.EXPECT().GetOverviews(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Overview, error) {
			assert.Equal(t, "reservations.check_in", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Overview{{ID: "res-1"}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Reservations, 1)
}
