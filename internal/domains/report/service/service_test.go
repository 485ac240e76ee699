package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	s3Mocks "resort/infras/s3/mocks"
	reportMocks "resort/internal/domains/report/mocks"
	"resort/internal/domains/report/model"
	"resort/internal/domains/report/service"
	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc     service.Report
	repo    *reportMocks.MockReport
	storage *s3Mocks.MockS3
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    reportMocks.NewMockReport(ctrl),
		storage: s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, f.storage, mocks.NewOtel())

	return f
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		wantDays int
		wantErr  bool
	}{
		{name: "june has 30 days", year: 2025, month: 6, wantDays: 30},
		{name: "leap february", year: 2024, month: 2, wantDays: 29},
		{name: "december rolls into next year", year: 2025, month: 12, wantDays: 31},
		{name: "year below range", year: 1999, month: 1, wantErr: true},
		{name: "year above range", year: 2101, month: 1, wantErr: true},
		{name: "month zero", year: 2025, month: 0, wantErr: true},
		{name: "month thirteen", year: 2025, month: 13, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := service.Period(tt.year, tt.month)

			if tt.wantErr {
				assert.Equal(t, failure.KindValidation, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantDays, period.Days())
		})
	}
}

func TestReportService_Occupancy(t *testing.T) {
	f := newService(t)

	f.repo.EXPECT().Occupancy(gomock.Any(), model.NewPeriod(2025, time.June)).Return([]model.Occupancy{
		{RoomCode: "A-101", RoomType: "Deluxe", DaysReserved: 15},
		{RoomCode: "B-201", RoomType: "Suite", DaysReserved: 0},
	}, nil)

	res, err := f.svc.Occupancy(context.Background(), 2025, 6)

	assert.NoError(t, err)
	assert.Equal(t, 30, res.Period.Days)
	assert.Equal(t, 50.0, res.Rows[0].OccupancyRate)
	assert.Equal(t, 0.0, res.Rows[1].OccupancyRate)
}

func TestReportService_OccupancyInvalidMonth(t *testing.T) {
	f := newService(t)

	_, err := f.svc.Occupancy(context.Background(), 2025, 13)

	assert.Equal(t, failure.KindValidation, failure.GetKind(err))
}

func TestReportService_Revenue(t *testing.T) {
	f := newService(t)

	f.repo.EXPECT().Revenue(gomock.Any(), gomock.Any()).Return([]model.Revenue{
		{RoomCode: "A-101", RoomType: "Deluxe", RatePerNight: 100, NightsSold: 3, TotalRevenue: 300},
		{RoomCode: "C-301", RoomType: "Villa", RatePerNight: 80.1, NightsSold: 1, TotalRevenue: 80.1},
	}, nil)

	res, err := f.svc.Revenue(context.Background(), 2025, 6)

	assert.NoError(t, err)
	assert.Equal(t, 380.1, res.TotalRevenue)
}

func TestReportService_Export(t *testing.T) {
	tests := []struct {
		name      string
		kind      model.Kind
		setupMock func(f fixture)
		wantURL   string
		wantRows  int
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "uploads the amenities report as csv",
			kind: model.KindAmenities,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Amenities(gomock.Any(), gomock.Any()).Return([]model.Amenity{
					{Name: "Kayak", Rate: 20, TimesRented: 2, TotalQuantity: 3, TotalRevenue: 60},
				}, nil)
				f.storage.EXPECT().Upload(gomock.Any(), "reports", "2025-06-amenities.csv", constant.ContentTypeCSV, gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _, _ string, data []byte) (string, error) {
						lines := strings.Split(strings.TrimSpace(string(data)), "\n")
						assert.Equal(t, "name,rate,times_rented,total_quantity,total_revenue", lines[0])
						assert.Equal(t, "Kayak,20.00,2,3,60.00", lines[1])

						return "https://cdn.example.com/reports/2025-06-amenities.csv", nil
					})
			},
			wantURL:  "https://cdn.example.com/reports/2025-06-amenities.csv",
			wantRows: 1,
		},
		{
			name:      "unknown kind",
			kind:      model.Kind("weather"),
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "report query fails",
			kind: model.KindInventory,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Inventory(gomock.Any(), gomock.Any()).Return(nil, failure.Store(errors.New("down")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
		{
			name: "upload fails",
			kind: model.KindOccupancy,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Occupancy(gomock.Any(), gomock.Any()).Return([]model.Occupancy{}, nil)
				f.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			res, err := f.svc.Export(context.Background(), tt.kind, 2025, 6)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, tt.wantRows, res.Rows)
		})
	}
}
