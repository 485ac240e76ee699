package reservation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resort/infras/otel/mocks"
	"resort/internal/domains/reservation/model/dto"
	reservationMocks "resort/internal/domains/reservation/mocks"
	"resort/internal/handlers/reservation"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, setupMock func(m *reservationMocks.MockReservationService)) http.Handler {
	t.Helper()

	svc := reservationMocks.NewMockReservationService(gomock.NewController(t))
	if setupMock != nil {
		setupMock(svc)
	}

	handler := reservation.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateReservation(t *testing.T) {
	const (
		guestID = "6f1c3f1e-8a0e-4b5e-9a51-0f6f4f1b2c11"
		roomID  = "0b7e9a34-1c55-4d0f-8f0e-2a3b4c5d6e7f"
	)

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *reservationMocks.MockReservationService)
		wantStatus int
		wantKind   failure.Kind
	}{
		{
			name: "returns the new reservation id",
			body: `{"guest_id":"` + guestID + `","room_id":"` + roomID + `","check_in":"2025-06-01","check_out":"2025-06-04"}`,
			setupMock: func(m *reservationMocks.MockReservationService) {
				m.EXPECT().Create(gomock.Any(), dto.CreateReservationRequest{
					GuestID:  guestID,
					RoomID:   roomID,
					CheckIn:  "2025-06-01",
					CheckOut: "2025-06-04",
				}).Return("res-1", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed date never reaches the service",
			body:       `{"guest_id":"` + guestID + `","room_id":"` + roomID + `","check_in":"06/01/2025","check_out":"2025-06-04"}`,
			wantStatus: http.StatusBadRequest,
			wantKind:   failure.KindValidation,
		},
		{
			name: "room under maintenance is an invalid state",
			body: `{"guest_id":"` + guestID + `","room_id":"` + roomID + `","check_in":"2025-06-01","check_out":"2025-06-04"}`,
			setupMock: func(m *reservationMocks.MockReservationService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", failure.InvalidState("room is under maintenance"))
			},
			wantStatus: http.StatusConflict,
			wantKind:   failure.KindInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)

			if tt.wantKind != "" {
				assert.Equal(t, string(tt.wantKind), body["kind"])

				return
			}

			assert.Equal(t, "res-1", body["data"])
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		query      string
		setupMock  func(m *reservationMocks.MockReservationService)
		wantStatus int
	}{
		{
			name:  "stay window becomes an overlap filter",
			query: "?from=2025-06-01&to=2025-06-08&status=confirmed",
			setupMock: func(m *reservationMocks.MockReservationService) {
				m.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error) {
						require.Len(t, filter.Filters, 2)

						window, ok := filter.Filters[1].(gDto.FilterGroup)
						require.True(t, ok)

						_, args := window.GetWhereClause()
						assert.Equal(t, to, args["check_in_before"])
						assert.Equal(t, from, args["check_out_after"])

						return dto.GetReservationsResponse{}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown status is rejected",
			query:      "?status=pending",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed window bound is rejected",
			query:      "?from=June",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "inverted window is rejected",
			query:      "?from=2025-06-08&to=2025-06-01",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMock)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_CheckIn(t *testing.T) {
	router := newRouter(t, func(m *reservationMocks.MockReservationService) {
		m.EXPECT().CheckIn(gomock.Any(), "res-1").Return(failure.InvalidState("reservation is not confirmed"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations/res-1/check-in", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, string(failure.KindInvalidState), decode(t, rec)["kind"])
}
