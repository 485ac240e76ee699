package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/config"
	"resort/infras/otel/mocks"
	dashboardMocks "resort/internal/domains/dashboard/mocks"
	"resort/internal/domains/dashboard/model/dto"
	"resort/internal/domains/dashboard/service"
	resModel "resort/internal/domains/reservation/model"
	roomModel "resort/internal/domains/room/model"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc   service.Dashboard
	repo  *dashboardMocks.MockDashboard
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  dashboardMocks.NewMockDashboard(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.DashboardTTL = 60

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestDashboardService_Summary(t *testing.T) {
	f := newService(t)

	f.cache.EXPECT().Get(gomock.Any(), "dashboard:summary", gomock.Any()).Return(errors.New("redis: nil"))
	f.repo.EXPECT().CountGuests(gomock.Any()).Return(42, nil)
	f.repo.EXPECT().CountRooms(gomock.Any(), roomModel.StatusReserved).Return(3, nil)
	f.repo.EXPECT().CountRooms(gomock.Any(), roomModel.StatusAvailable).Return(10, nil)
	f.repo.EXPECT().CountRooms(gomock.Any(), roomModel.StatusOccupied).Return(5, nil)
	f.repo.EXPECT().SumPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, from, to time.Time) (float64, error) {
			assert.Equal(t, 24*time.Hour, to.Sub(from))

			return 340.004, nil
		})
	f.repo.EXPECT().CountActiveRentals(gomock.Any()).Return(2, nil)
	f.repo.EXPECT().CountInventoryItems(gomock.Any()).Return(17, nil)
	f.repo.EXPECT().CountReservations(gomock.Any(), resModel.StatusCheckedIn).Return(5, nil)

	res, err := f.svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dto.SummaryResponse{
		TotalGuests:           42,
		ReservedRooms:         3,
		AvailableRooms:        10,
		TodayPayments:         340,
		OccupiedRooms:         5,
		ActiveRentals:         2,
		InventoryItems:        17,
		CheckedInReservations: 5,
	}, res)
}

func TestDashboardService_SummaryCacheHit(t *testing.T) {
	f := newService(t)

	f.cache.EXPECT().Get(gomock.Any(), "dashboard:summary", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.SummaryResponse)
			res.TotalGuests = 7

			return nil
		})

	res, err := f.svc.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 7, res.TotalGuests)
}

func TestDashboardService_SummaryStoreError(t *testing.T) {
	f := newService(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
	f.repo.EXPECT().CountGuests(gomock.Any()).Return(0, failure.Store(errors.New("down"))).AnyTimes()
	f.repo.EXPECT().CountRooms(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	f.repo.EXPECT().SumPayments(gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, nil).AnyTimes()
	f.repo.EXPECT().CountActiveRentals(gomock.Any()).Return(0, nil).AnyTimes()
	f.repo.EXPECT().CountInventoryItems(gomock.Any()).Return(0, nil).AnyTimes()
	f.repo.EXPECT().CountReservations(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	_, err := f.svc.Summary(context.Background())

	assert.Equal(t, failure.KindStore, failure.GetKind(err))
}
