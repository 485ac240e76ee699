package reservation

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/reservation/model"
	"resort/internal/domains/reservation/model/dto"
	"resort/internal/domains/reservation/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/validator"
	"resort/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var maxStayDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers flat patterns; billing shares the /reservations/{id} prefix.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/reservations", handler.CreateReservation)
	router.Get("/reservations", handler.GetReservations)
	router.Get("/reservations/{id}", handler.GetReservationByID)
	router.Get("/reservations/{id}/logs", handler.GetReservationLogs)
	router.Post("/reservations/{id}/check-in", handler.CheckIn)
	router.Post("/reservations/{id}/cancel", handler.CancelReservation)
}

// CreateReservation books a room for a guest.
// @Summary Create a reservation
// @Description Atomically books a room for a stay, links the requested amenities and marks an available room as reserved.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[string] "Reservation ID"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, id)
}

// GetReservations lists reservations with guest and room summaries.
// @Summary Get all reservations
// @Tags Reservation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status" Enums(confirmed, checked-in, checked-out, cancelled)
// @Param guest_id query string false "Filter by guest"
// @Param room_id query string false "Filter by room"
// @Param from query string false "Stays overlapping this date onwards (YYYY-MM-DD)"
// @Param to query string false "Stays overlapping up to this date, exclusive (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := model.Status(query.Get(constant.RequestParamStatus)); status != "" {
		if !status.Valid() {
			response.WithError(w, failure.Validation("status must be one of confirmed, checked-in, checked-out or cancelled"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, shared.FilterStatusIn(model.FieldStatus, model.TableName, status))
	}

	for _, field := range []string{model.FieldGuestID, model.FieldRoomID} {
		if value := query.Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if from, to := query.Get(constant.RequestParamFrom), query.Get(constant.RequestParamTo); from != "" || to != "" {
		window, err := stayWindow(from, to)
		if err != nil {
			response.WithError(w, err)

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, window)
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation with its guest and room summary.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// GetReservationLogs lists the check-in and check-out events of a reservation.
// @Summary Get reservation check-in/out log
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[[]dto.LogResponse] "Log entries"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/logs [get]
// @Security BearerAuth
func (handler *Handler) GetReservationLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationLogs")
	defer scope.End()

	logs, err := handler.service.Logs(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, logs)
}

// CheckIn checks the guest of a confirmed reservation into the room.
// @Summary Check in
// @Description Atomically marks the reservation checked-in, the room occupied and records the check-in event.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Guest checked in successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	if err := handler.service.CheckIn(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked in successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Guest checked in successfully")
}

// CancelReservation cancels a confirmed reservation.
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	if err := handler.service.Cancel(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Reservation cancelled successfully")
}

// stayWindow builds an overlap filter for [from, to). A missing bound is left open.
func stayWindow(from, to string) (gDto.FilterGroup, error) {
	start, end := time.Time{}, maxStayDate

	var err error

	if from != "" {
		if start, err = shared.ParseDate(from); err != nil {
			return gDto.FilterGroup{}, failure.Validation(err.Error())
		}
	}

	if to != "" {
		if end, err = shared.ParseDate(to); err != nil {
			return gDto.FilterGroup{}, failure.Validation(err.Error())
		}
	}

	if !end.After(start) {
		return gDto.FilterGroup{}, failure.Validation("to must be after from")
	}

	return gDto.OverlapFilter(model.TableName, model.FieldCheckIn, model.FieldCheckOut, start, end), nil
}
