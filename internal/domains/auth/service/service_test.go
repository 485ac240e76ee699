package service_test

import (
	"context"
	"errors"
	"testing"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	staffMocks "resort/internal/domains/staff/mocks"
	staffModel "resort/internal/domains/staff/model"
	staffDto "resort/internal/domains/staff/model/dto"
	staffService "resort/internal/domains/staff/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc  service.Auth
	repo *staffMocks.MockStaff
	jwt  *jwtMocks.MockJWT
}

func newService(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo: staffMocks.NewMockStaff(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	staff := staffService.New(f.repo, &config.Config{}, cache, mocks.NewOtel())
	f.svc = service.New(f.repo, staff, f.jwt, mocks.NewOtel())

	return f
}

func hashed(t *testing.T, plain string) string {
	t.Helper()

	h, err := password.Hash(plain)
	require.NoError(t, err)

	return h
}

func TestAuthService_Login(t *testing.T) {
	hash := hashed(t, "front-desk-2025")
	desk := staffModel.Staff{ID: "s-1", Email: "desk@resort.test", Password: hash, Role: constant.RoleFrontDesk, Active: true}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "issues a token pair and stamps last login",
			req:  dto.LoginRequest{Email: "desk@resort.test", Password: "front-desk-2025"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(desk, nil)
				f.jwt.EXPECT().GenerateTokenPair("s-1", "desk@resort.test", constant.RoleFrontDesk).
					Return(&jwt.TokenPair{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 900}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, staffModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@resort.test", Password: "front-desk-2025"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "desk@resort.test", Password: "nope-nope"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(desk, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "desk@resort.test", Password: "front-desk-2025"},
			setupMock: func(f fixture) {
				inactive := desk
				inactive.Active = false
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name: "store error",
			req:  dto.LoginRequest{Email: "desk@resort.test", Password: "front-desk-2025"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{}, failure.Store(errors.New("down")))
			},
			wantErr:  true,
			wantKind: failure.KindStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newService(t)
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "a", res.AccessToken)
			assert.Equal(t, int64(900), res.ExpiresIn)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	f := newService(t)

	f.jwt.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

	_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

	assert.Equal(t, failure.KindUnauthorized, failure.GetKind(err))
}

func TestAuthService_Register(t *testing.T) {
	f := newService(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := f.svc.Register(context.Background(), staffDto.CreateStaffRequest{Email: "desk@resort.test", Password: "front-desk-2025", FullName: "Desk One"})

	assert.Equal(t, failure.KindDuplicateEmail, failure.GetKind(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	hash := hashed(t, "front-desk-2025")
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "s-1")

	t.Run("rejects a wrong current password", func(t *testing.T) {
		f := newService(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{ID: "s-1", Password: hash}, nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "wrong", NewPassword: "sunset-2026"})

		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})

	t.Run("stores a new hash", func(t *testing.T) {
		f := newService(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staffModel.Staff{ID: "s-1", Password: hash}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				stored, _ := fields[staffModel.FieldPassword].(string)
				assert.NoError(t, password.Verify("sunset-2026", stored))

				return nil
			})

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "front-desk-2025", NewPassword: "sunset-2026"})

		assert.NoError(t, err)
	})
}
