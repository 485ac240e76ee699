package report

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/report/model"
	"resort/internal/domains/report/model/dto"
	"resort/internal/domains/report/service"
	"resort/shared"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageInvalidKind = "report kind must be one of occupancy, revenue, inventory or amenities"

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/{kind}", handler.GetReport)
		routerGroup.Post("/{kind}/export", handler.ExportReport)
	})
}

// GetReport builds a monthly report.
// @Summary Get a monthly report
// @Description Occupancy, revenue, inventory or amenity usage for one calendar month.
// @Tags Report
// @Produce json
// @Param kind path string true "Report kind" Enums(occupancy, revenue, inventory, amenities)
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} response.Data[dto.OccupancyReport] "Occupancy report"
// @Success 200 {object} response.Data[dto.RevenueReport] "Revenue report"
// @Success 200 {object} response.Data[dto.InventoryReport] "Inventory report"
// @Success 200 {object} response.Data[dto.AmenityReport] "Amenity report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/{kind} [get]
// @Security BearerAuth
func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReport")
	defer scope.End()

	kind := model.Kind(chi.URLParam(r, constant.RequestParamKind))

	year, month, err := period(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var report any

	switch kind {
	case model.KindOccupancy:
		report, err = handler.service.Occupancy(ctx, year, month)
	case model.KindRevenue:
		report, err = handler.service.Revenue(ctx, year, month)
	case model.KindInventory:
		report, err = handler.service.Inventory(ctx, year, month)
	case model.KindAmenities:
		report, err = handler.service.Amenities(ctx, year, month)
	default:
		err = failure.Validation(messageInvalidKind)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to build report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// ExportReport renders a monthly report as CSV and uploads it to object storage.
// @Summary Export a monthly report
// @Tags Report
// @Produce json
// @Param kind path string true "Report kind" Enums(occupancy, revenue, inventory, amenities)
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 201 {object} response.Data[dto.ExportResponse] "Exported report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/{kind}/export [post]
// @Security BearerAuth
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	var export dto.ExportResponse

	year, month, err := period(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	export, err = handler.service.Export(ctx, model.Kind(chi.URLParam(r, constant.RequestParamKind)), year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Report exported successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, export)
}

func period(r *http.Request) (year, month int, err error) {
	query := r.URL.Query()

	year, err = shared.ConvertStringToInt(query.Get(constant.RequestParamYear))
	if err != nil {
		return 0, 0, failure.Validation("year must be a number") // nolint:wrapcheck
	}

	month, err = shared.ConvertStringToInt(query.Get(constant.RequestParamMonth))
	if err != nil {
		return 0, 0, failure.Validation("month must be a number") // nolint:wrapcheck
	}

	return year, month, nil
}
