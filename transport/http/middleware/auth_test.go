package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/permissions"
	"resort/shared/constant"
	"resort/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, setupMock func(m *jwtMocks.MockJWT)) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtMock := jwtMocks.NewMockJWT(ctrl)

	if setupMock != nil {
		setupMock(jwtMock)
	}

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/rooms", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin, constant.RoleFrontDesk}},
			{Path: "/v1/rooms/{id}", Method: http.MethodDelete, Permissions: []string{constant.RoleAdmin}},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(jwtMock, mocks.NewOtel(), perms, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		user, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		w.Header().Set("X-User", user)
		w.WriteHeader(http.StatusOK)
	}

	mux := chi.NewRouter()
	mux.Group(func(r chi.Router) {
		r.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", ok)
			r.Route("/rooms", func(r chi.Router) {
				r.Get("/", ok)
				r.Delete("/{id}", ok)
			})
		})
	})

	return mux
}

func TestAuthRole(t *testing.T) {
	frontDesk := &jwt.Claims{StaffID: "staff-1", Email: "desk@resort.test", Role: constant.RoleFrontDesk}
	admin := &jwt.Claims{StaffID: "staff-2", Email: "admin@resort.test", Role: constant.RoleAdmin}

	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setupMock  func(m *jwtMocks.MockJWT)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "skipped endpoint needs no token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token is unauthorized",
			method:     http.MethodGet,
			path:       "/v1/rooms",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "expired token is unauthorized",
			method:  http.MethodGet,
			path:    "/v1/rooms",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer stale"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "front desk may list rooms",
			method:  http.MethodGet,
			path:    "/v1/rooms",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer desk"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("desk", jwt.AccessToken).Return(frontDesk, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "staff-1",
		},
		{
			name:    "front desk may not delete rooms",
			method:  http.MethodDelete,
			path:    "/v1/rooms/room-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer desk"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("desk", jwt.AccessToken).Return(frontDesk, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "admin may delete rooms",
			method:  http.MethodDelete,
			path:    "/v1/rooms/room-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer admin"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("admin", jwt.AccessToken).Return(admin, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "staff-2",
		},
		{
			name:       "valid api key bypasses token checks",
			method:     http.MethodDelete,
			path:       "/v1/rooms/room-1",
			headers:    map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantStatus: http.StatusOK,
			wantUser:   constant.ContextSystem,
		},
		{
			name:       "wrong api key is forbidden",
			method:     http.MethodGet,
			path:       "/v1/rooms",
			headers:    map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, rec.Header().Get("X-User"))
			}
		})
	}
}
