package rental

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/rental/model/dto"
	"resort/internal/domains/rental/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/rentals", handler.Rent)
	router.Post("/rentals/{id}/return", handler.Return)
	router.Get("/guests/{id}/rentals", handler.GetActiveRentals)
}

// Rent rents an amenity to a checked-in guest.
// @Summary Rent an amenity
// @Description Atomically records the rental, bills it to the reservation and marks the amenity reserved.
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body dto.RentRequest true "Rent Request"
// @Success 201 {object} response.Data[dto.RentResponse] "Rental"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 412 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [post]
// @Security BearerAuth
func (handler *Handler) Rent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Rent")
	defer scope.End()

	req := dto.RentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rental, err := handler.service.Rent(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rent amenity")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Amenity rented successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, rental)
}

// Return closes an active rental and frees the amenity.
// @Summary Return a rental
// @Tags Rental
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Message "Rental returned successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/return [post]
// @Security BearerAuth
func (handler *Handler) Return(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Return")
	defer scope.End()

	if err := handler.service.Return(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to return rental")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental returned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rental returned successfully")
}

// GetActiveRentals lists the rentals a guest has not returned yet.
// @Summary Get active rentals of a guest
// @Tags Rental
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[[]dto.ActiveRentalResponse] "Active rentals"
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id}/rentals [get]
// @Security BearerAuth
func (handler *Handler) GetActiveRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveRentals")
	defer scope.End()

	rentals, err := handler.service.ActiveRentals(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active rentals")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rentals)
}
