package billing

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/billing/model/dto"
	"resort/internal/domains/billing/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/reservations/{id}/charges", handler.GetCharges)
	router.Post("/reservations/{id}/charges", handler.AddCharge)
	router.Post("/reservations/{id}/check-out", handler.CheckOut)
	router.Get("/reservations/{id}/payments", handler.GetPayments)
	router.Get("/payments/reference/{reference}", handler.CheckTransactionReference)
}

// GetCharges returns the bill of a reservation.
// @Summary Get total charges
// @Description Nights at the room rate plus booked amenities and ad-hoc charges.
// @Tags Billing
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ChargeBreakdown] "Charge breakdown"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/charges [get]
// @Security BearerAuth
func (handler *Handler) GetCharges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCharges")
	defer scope.End()

	charges, err := handler.service.TotalCharges(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get total charges")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, charges)
}

// AddCharge adds an ad-hoc charge to a reservation.
// @Summary Add a charge
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.AddChargeRequest true "Add Charge Request"
// @Success 201 {object} response.Data[string] "Charge ID"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/charges [post]
// @Security BearerAuth
func (handler *Handler) AddCharge(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCharge")
	defer scope.End()

	req := dto.AddChargeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.AddCharge(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add charge")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Charge added successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, id)
}

// CheckOut settles the bill and checks the guest out.
// @Summary Check out
// @Description Atomically records the payment, marks the reservation checked-out, frees the room and logs the event. The payment must cover the total charges.
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.CheckOutRequest true "Check-Out Request"
// @Success 200 {object} response.Data[dto.CheckOutResponse] "Settlement"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	settlement, err := handler.service.CheckOut(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Guest checked out successfully by user " + user)

	response.WithJSON(w, http.StatusOK, settlement)
}

// GetPayments lists the payments of a reservation.
// @Summary Get payments
// @Tags Billing
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[[]dto.PaymentResponse] "Payments"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	payments, err := handler.service.GetPayments(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// CheckTransactionReference reports whether a transaction reference is still unused.
// @Summary Check transaction reference
// @Tags Billing
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 200 {object} response.Data[dto.TransactionReferenceResponse] "Uniqueness"
// @Failure 500 {object} response.Error
// @Router /v1/payments/reference/{reference} [get]
// @Security BearerAuth
func (handler *Handler) CheckTransactionReference(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckTransactionReference")
	defer scope.End()

	reference := chi.URLParam(r, constant.RequestParamReference)

	unique, err := handler.service.IsTransactionRefUnique(ctx, reference)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check transaction reference")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.TransactionReferenceResponse{
		Reference: reference,
		Unique:    unique,
	})
}
