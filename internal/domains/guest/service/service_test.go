package service_test

import (
	"context"
	"errors"
	"testing"

	"resort/config"
	"resort/infras/otel/mocks"
	guestMocks "resort/internal/domains/guest/mocks"
	"resort/internal/domains/guest/model"
	"resort/internal/domains/guest/model/dto"
	"resort/internal/domains/guest/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "desk-1")
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Ana",
		LastName:  "Cruz",
		Email:     "ana@x.com",
	}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.Guest) error {
						assert.NotEmpty(t, guest.ID)
						assert.Equal(t, "desk-1", guest.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "duplicate email",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateEmail,
		},
		{
			name: "unique constraint race surfaces as duplicate email",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.DuplicateEmail("email is already registered to another guest"))
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateEmail,
		},
		{
			name: "repository error",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Store(errors.New("connection refused")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			id, err := svc.Create(userContext(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.Empty(t, id)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestGuestService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantName  string
	}{
		{
			name: "cache hit",
			setupMock: func(_ *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), "guest:get:g-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.GuestResponse)
						res.ID = "g-1"
						res.FullName = "Ana Cruz"

						return nil
					})
			},
			wantName: "Ana Cruz",
		},
		{
			name: "cache miss reads repository",
			setupMock: func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1", FirstName: "Ana", LastName: "Cruz"}, nil)
			},
			wantName: "Ana Cruz",
		},
		{
			name: "not found",
			setupMock: func(repo *guestMocks.MockGuest, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, cache := newService(t)
			tt.setupMock(repo, cache)

			res, err := svc.Get(context.Background(), "g-1")

			if tt.wantErr {
				assert.True(t, failure.Is(err, failure.KindNotFound))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantName, res.FullName)
			}
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	svc, repo, cache := newService(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Guest, error) {
			assert.Equal(t, model.FieldLastName, params.SortBy)
			assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

			return []model.Guest{
				{ID: "g-1", FirstName: "Ana", LastName: "Cruz"},
				{ID: "g-2", FirstName: "Ben", LastName: "Dela"},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Guests, 2)
}

func TestGuestService_Update(t *testing.T) {
	existing := model.Guest{ID: "g-1", FirstName: "Ana", LastName: "Cruz", Email: "ana@x.com"}

	tests := []struct {
		name      string
		req       dto.UpdateGuestRequest
		setupMock func(repo *guestMocks.MockGuest)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "keeping the same email skips the duplicate check",
			req:  dto.UpdateGuestRequest{Phone: "+63 900 000", Email: "ana@x.com"},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "email used by a different guest",
			req:  dto.UpdateGuestRequest{Email: "ben@x.com"},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateEmail,
		},
		{
			name: "new unused email",
			req:  dto.UpdateGuestRequest{Email: "ana.cruz@x.com"},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(existing, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "ana.cruz@x.com", fields[model.FieldEmail])
						assert.Equal(t, "desk-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "guest not found",
			req:  dto.UpdateGuestRequest{FirstName: "Anna"},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Update(userContext(), tt.req, "g-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "guest with a confirmed reservation cannot be deleted",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountActiveReservations(gomock.Any(), "g-1").Return(1, nil)
			},
			wantErr:  true,
			wantKind: failure.KindReferentialIntegrity,
		},
		{
			name: "guest whose reservation was cancelled can be deleted",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountActiveReservations(gomock.Any(), "g-1").Return(0, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing guest",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "store failure while counting",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().CountActiveReservations(gomock.Any(), "g-1").Return(0, failure.Store(errors.New("timeout")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			err := svc.Delete(userContext(), "g-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_Detail(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1", FirstName: "Ana", LastName: "Cruz"}, nil)
	repo.EXPECT().Stats(gomock.Any(), "g-1").Return(model.Stats{
		TotalReservations:     2,
		CompletedReservations: 1,
		NightsStayed:          3,
		TotalPaid:             339.999,
	}, nil)

	res, err := svc.Detail(context.Background(), "g-1")

	assert.NoError(t, err)
	assert.Equal(t, "Ana Cruz", res.Guest.FullName)
	assert.Equal(t, 2, res.TotalReservations)
	assert.Equal(t, 340.0, res.TotalPaid)
}

func TestGuestService_Preferences(t *testing.T) {
	t.Run("lists preferences for the guest", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1", FirstName: "Ana", LastName: "Cruz"}, nil)
		repo.EXPECT().Preferences(gomock.Any(), "g-1").Return([]model.Preference{
			{GuestID: "g-1", Key: "pillow", Value: "firm"},
			{GuestID: "g-1", Key: "view", Value: "ocean"},
		}, nil)

		res, err := svc.Preferences(context.Background(), "g-1")

		assert.NoError(t, err)
		assert.Equal(t, "g-1", res.Guest.ID)
		assert.Len(t, res.Preferences, 2)
		assert.Equal(t, "view", res.Preferences[1].Key)
		assert.Equal(t, "ocean", res.Preferences[1].Value)
	})

	t.Run("unknown guest is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
		repo.EXPECT().Preferences(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Preferences(context.Background(), "missing")

		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestGuestService_SetPreference(t *testing.T) {
	t.Run("upserts the preference", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
		repo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pref model.Preference) error {
				assert.Equal(t, "g-1", pref.GuestID)
				assert.Equal(t, "pillow", pref.Key)
				assert.Equal(t, "soft", pref.Value)
				assert.Equal(t, "desk-1", pref.ModifiedBy)

				return nil
			})

		err := svc.SetPreference(userContext(), dto.SetPreferenceRequest{Key: "pillow", Value: "soft"}, "g-1")

		assert.NoError(t, err)
	})

	t.Run("unknown guest is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
		repo.EXPECT().UpsertPreference(gomock.Any(), gomock.Any()).Times(0)

		err := svc.SetPreference(userContext(), dto.SetPreferenceRequest{Key: "pillow"}, "missing")

		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestGuestService_Feedback(t *testing.T) {
	t.Run("keeps newest first and averages ratings", func(t *testing.T) {
		svc, repo, _ := newService(t)

		reservationID := "r-1"

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
		repo.EXPECT().Feedback(gomock.Any(), "g-1").Return([]model.Feedback{
			{ID: "f-2", GuestID: "g-1", Rating: 5, Comments: "great snorkelling"},
			{ID: "f-1", GuestID: "g-1", ReservationID: &reservationID, Rating: 4},
			{ID: "f-0", GuestID: "g-1", Rating: 4},
		}, nil)

		res, err := svc.Feedback(context.Background(), "g-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"f-2", "f-1", "f-0"}, []string{res.Feedback[0].ID, res.Feedback[1].ID, res.Feedback[2].ID})
		assert.Empty(t, res.Feedback[0].ReservationID)
		assert.Equal(t, "r-1", res.Feedback[1].ReservationID)
		assert.Equal(t, 4.33, res.AverageRating)
	})

	t.Run("guest without feedback", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
		repo.EXPECT().Feedback(gomock.Any(), "g-1").Return([]model.Feedback{}, nil)

		res, err := svc.Feedback(context.Background(), "g-1")

		assert.NoError(t, err)
		assert.Empty(t, res.Feedback)
		assert.Zero(t, res.AverageRating)
	})

	t.Run("unknown guest is not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
		repo.EXPECT().Feedback(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Feedback(context.Background(), "missing")

		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestGuestService_AddFeedback(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AddFeedbackRequest
		setupMock func(repo *guestMocks.MockGuest)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "feedback for one of the guest's stays",
			req:  dto.AddFeedbackRequest{ReservationID: "r-1", Rating: 5, Comments: "lovely"},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
				repo.EXPECT().OwnsReservation(gomock.Any(), "g-1", "r-1").Return(true, nil)
				repo.EXPECT().InsertFeedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, feedback model.Feedback) error {
						assert.NotEmpty(t, feedback.ID)
						assert.Equal(t, "r-1", *feedback.ReservationID)
						assert.Equal(t, 5, feedback.Rating)
						assert.Equal(t, "desk-1", feedback.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "feedback without a stay",
			req:  dto.AddFeedbackRequest{Rating: 3},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
				repo.EXPECT().OwnsReservation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().InsertFeedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, feedback model.Feedback) error {
						assert.Nil(t, feedback.ReservationID)

						return nil
					})
			},
		},
		{
			name: "reservation of another guest",
			req:  dto.AddFeedbackRequest{ReservationID: "r-9", Rating: 2},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
				repo.EXPECT().OwnsReservation(gomock.Any(), "g-1", "r-9").Return(false, nil)
				repo.EXPECT().InsertFeedback(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
		{
			name: "unknown guest",
			req:  dto.AddFeedbackRequest{Rating: 4},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "store failure",
			req:  dto.AddFeedbackRequest{Rating: 4},
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "g-1"}, nil)
				repo.EXPECT().InsertFeedback(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			id, err := svc.AddFeedback(userContext(), tt.req, "g-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}
