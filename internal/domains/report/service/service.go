package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"resort/infras/otel"
	"resort/infras/s3"
	"resort/internal/domains/report/model"
	"resort/internal/domains/report/model/dto"
	"resort/internal/domains/report/repository"
	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const exportDirectory = "reports"

type Report interface {
	Occupancy(ctx context.Context, year, month int) (dto.OccupancyReport, error)
	Revenue(ctx context.Context, year, month int) (dto.RevenueReport, error)
	Inventory(ctx context.Context, year, month int) (dto.InventoryReport, error)
	Amenities(ctx context.Context, year, month int) (dto.AmenityReport, error)
	Export(ctx context.Context, kind model.Kind, year, month int) (dto.ExportResponse, error)
}

type service struct {
	repo    repository.Report
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Report, storage s3.S3, otel otel.Otel) Report {
	return &service{
		repo:    repo,
		storage: storage,
		otel:    otel,
	}
}

// Period validates a year and month and returns the month window.
func Period(year, month int) (model.Period, error) {
	if year < model.MinYear || year > model.MaxYear {
		return model.Period{}, failure.Validation( // nolint:wrapcheck
			fmt.Sprintf("year must be between %d and %d", model.MinYear, model.MaxYear))
	}

	if month < int(time.January) || month > int(time.December) {
		return model.Period{}, failure.Validation("month must be between 1 and 12") // nolint:wrapcheck
	}

	return model.NewPeriod(year, time.Month(month)), nil
}

func (s *service) Occupancy(ctx context.Context, year, month int) (res dto.OccupancyReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Occupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := Period(year, month)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.Occupancy(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy report")

		return res, fmt.Errorf("failed to get occupancy report: %w", err)
	}

	return dto.NewOccupancyReport(period, rows), nil
}

func (s *service) Revenue(ctx context.Context, year, month int) (res dto.RevenueReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := Period(year, month)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.Revenue(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue report")

		return res, fmt.Errorf("failed to get revenue report: %w", err)
	}

	return dto.NewRevenueReport(period, rows), nil
}

func (s *service) Inventory(ctx context.Context, year, month int) (res dto.InventoryReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Inventory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := Period(year, month)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.Inventory(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory report")

		return res, fmt.Errorf("failed to get inventory report: %w", err)
	}

	return dto.NewInventoryReport(period, rows), nil
}

func (s *service) Amenities(ctx context.Context, year, month int) (res dto.AmenityReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Amenities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := Period(year, month)
	if err != nil {
		return res, err
	}

	rows, err := s.repo.Amenities(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenities report")

		return res, fmt.Errorf("failed to get amenities report: %w", err)
	}

	return dto.NewAmenityReport(period, rows), nil
}

func (s *service) Export(ctx context.Context, kind model.Kind, year, month int) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".report.Export")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !kind.Valid() {
		return res, failure.Validation(fmt.Sprintf("unknown report kind %q", kind)) // nolint:wrapcheck
	}

	table, err := s.table(ctx, kind, year, month)
	if err != nil {
		return res, err
	}

	data, err := encodeCSV(table)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode report")

		return res, fmt.Errorf("failed to encode report: %w", err)
	}

	fileName := fmt.Sprintf("%d-%02d-%s.csv", year, month, kind)

	url, err := s.storage.Upload(ctx, exportDirectory, fileName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	return dto.ExportResponse{
		Kind: string(kind),
		URL:  url,
		Rows: len(table.Rows),
	}, nil
}

func (s *service) table(ctx context.Context, kind model.Kind, year, month int) (dto.Table, error) {
	switch kind {
	case model.KindOccupancy:
		report, err := s.Occupancy(ctx, year, month)

		return report.Table(), err
	case model.KindRevenue:
		report, err := s.Revenue(ctx, year, month)

		return report.Table(), err
	case model.KindInventory:
		report, err := s.Inventory(ctx, year, month)

		return report.Table(), err
	default:
		report, err := s.Amenities(ctx, year, month)

		return report.Table(), err
	}
}

func encodeCSV(table dto.Table) ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)

	if err := w.Write(table.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("failed to write rows: %w", err)
	}

	return buf.Bytes(), nil
}
