package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/config"
	"resort/infras/otel/mocks"
	roomMocks "resort/internal/domains/room/mocks"
	"resort/internal/domains/room/model"
	"resort/internal/domains/room/model/dto"
	"resort/internal/domains/room/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomType:     "Standard",
		BedType:      "Queen",
		MaxCapacity:  2,
		RatePerNight: 100,
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Regexp(t, "^STD-", room.Code)
						assert.Equal(t, model.StatusAvailable, room.Status)
						assert.Equal(t, 100.0, room.RatePerNight)

						return nil
					})
			},
		},
		{
			name: "code collision",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateName,
		},
		{
			name: "insert error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Store(errors.New("database error")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "desk-1")
			id, err := svc.Create(ctx, req)

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

func TestRoomService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, model.FieldCode, params.SortBy)

			return []model.Room{{ID: "r-1", Code: "STD-0A1B2C3D4E", Status: model.StatusAvailable}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "STD-0A1B2C3D4E", res.Rooms[0].Code)
}

func TestRoomService_IsAvailable(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		checkOut  time.Time
		setupMock func(repo *roomMocks.MockRoom)
		want      bool
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name:     "free room",
			checkOut: checkOut,
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Status: model.StatusReserved}, nil)
				repo.EXPECT().CountOverlapping(gomock.Any(), "r-1", checkIn, checkOut).Return(0, nil)
			},
			want: true,
		},
		{
			name:     "overlapping reservation",
			checkOut: checkOut,
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Status: model.StatusReserved}, nil)
				repo.EXPECT().CountOverlapping(gomock.Any(), "r-1", checkIn, checkOut).Return(1, nil)
			},
		},
		{
			name:     "room under maintenance",
			checkOut: checkOut,
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Status: model.StatusMaintenance}, nil)
			},
		},
		{
			name:      "check-out before check-in",
			checkOut:  checkIn,
			setupMock: func(_ *roomMocks.MockRoom) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			available, err := svc.IsAvailable(context.Background(), "r-1", checkIn, tt.checkOut)

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, available)
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name      string
		current   model.Status
		req       dto.UpdateRoomRequest
		expectUpd bool
		wantErr   bool
	}{
		{name: "put available room under maintenance", current: model.StatusAvailable, req: dto.UpdateRoomRequest{Status: model.StatusMaintenance}, expectUpd: true},
		{name: "occupied room cannot go to maintenance", current: model.StatusOccupied, req: dto.UpdateRoomRequest{Status: model.StatusMaintenance}, wantErr: true},
		{name: "description change on a reserved room", current: model.StatusReserved, req: dto.UpdateRoomRequest{Description: "sea view"}, expectUpd: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Status: tt.current}, nil)

			if tt.expectUpd {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Update(context.Background(), tt.req, "r-1")

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindInvalidState))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "room with a non-cancelled reservation",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountBlockingReservations(gomock.Any(), "r-1").Return(2, nil)
			},
			wantErr:  true,
			wantKind: failure.KindReferentialIntegrity,
		},
		{
			name: "room with only cancelled reservations",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountBlockingReservations(gomock.Any(), "r-1").Return(0, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing room",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), "r-1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Detail(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Code: "STD-0A1B2C3D4E"}, nil)
	repo.EXPECT().GuestStats(gomock.Any(), "r-1").Return(model.GuestStats{TotalReservations: 3, UniqueGuests: 2, NightsBooked: 7}, nil)
	repo.EXPECT().ServiceRequests(gomock.Any(), "r-1").Return([]model.ServiceRequest{
		{ReservationID: "res-1", GuestName: "Ana Cruz", AmenityName: "Kayak", Quantity: 1, UnitRate: 20},
	}, nil)

	res, err := svc.Detail(context.Background(), "r-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, res.UniqueGuests)
	assert.Len(t, res.ServiceRequests, 1)
	assert.Equal(t, "Kayak", res.ServiceRequests[0].AmenityName)
}
