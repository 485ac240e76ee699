package service_test

import (
	"context"
	"errors"
	"testing"

	"resort/config"
	"resort/infras/otel/mocks"
	amenityMocks "resort/internal/domains/amenity/mocks"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Amenity, *amenityMocks.MockAmenity, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := amenityMocks.NewMockAmenity(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestAmenityService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAmenityRequest
		setupMock func(repo *amenityMocks.MockAmenity)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "defaults to available",
			req:  dto.CreateAmenityRequest{Name: "Kayak", Rate: 20},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, amenity model.Amenity) error {
						assert.Equal(t, model.AvailabilityAvailable, amenity.Availability)
						assert.Equal(t, 20.0, amenity.Rate)

						return nil
					})
			},
		},
		{
			name: "duplicate name",
			req:  dto.CreateAmenityRequest{Name: "Kayak", Rate: 20},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestAmenityService_Update(t *testing.T) {
	current := model.Amenity{ID: "a-1", Name: "Kayak", Rate: 20, Availability: model.AvailabilityAvailable}

	tests := []struct {
		name      string
		req       dto.UpdateAmenityRequest
		setupMock func(repo *amenityMocks.MockAmenity)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "rename to a name owned by another amenity",
			req:  dto.UpdateAmenityRequest{Name: "Snorkel Set"},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateName,
		},
		{
			name: "rate is rounded to cents",
			req:  dto.UpdateAmenityRequest{Rate: func() *float64 { v := 24.999; return &v }()},
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						rate, _ := fields[model.FieldRate].(*float64)
						assert.Equal(t, 25.0, *rate)

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Update(context.Background(), tt.req, "a-1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *amenityMocks.MockAmenity)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "active rental blocks deletion",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountActiveRentals(gomock.Any(), "a-1").Return(1, nil)
			},
			wantErr:  true,
			wantKind: failure.KindReferentialIntegrity,
		},
		{
			name: "returned rentals do not block deletion",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountActiveRentals(gomock.Any(), "a-1").Return(0, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "store error",
			setupMock: func(repo *amenityMocks.MockAmenity) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, failure.Store(errors.New("connection refused")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), "a-1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmenityService_Detail(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Amenity{ID: "a-1", Name: "Kayak"}, nil)
	repo.EXPECT().RequestStats(gomock.Any(), "a-1").Return(model.RequestStats{TotalRentals: 4, UniqueGuests: 3, TotalQuantity: 6, TotalRevenue: 120}, nil)

	res, err := svc.Detail(context.Background(), "a-1")

	assert.NoError(t, err)
	assert.Equal(t, "Kayak", res.Amenity.Name)
	assert.Equal(t, 120.0, res.TotalRevenue)
}

func TestAmenityService_GetNotFound(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Amenity{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.True(t, failure.Is(err, failure.KindNotFound))
}
