package service

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/dashboard/model"
	"resort/internal/domains/dashboard/model/dto"
	"resort/internal/domains/dashboard/repository"
	resModel "resort/internal/domains/reservation/model"
	roomModel "resort/internal/domains/room/model"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const cacheKeySummary = "summary"

type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type service struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &service{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *service) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixDashboard, cacheKeySummary)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	summary, err := s.collect(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to collect dashboard summary")

		return res, fmt.Errorf("failed to collect dashboard summary: %w", err)
	}

	res = dto.FromModel(summary)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.DashboardTTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *service) collect(ctx context.Context) (summary model.Summary, err error) {
	from, to := timezone.DayRange(timezone.Now())

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.TotalGuests, err = s.repo.CountGuests(ctx)

		return err
	})
	g.Go(func() (err error) {
		summary.ReservedRooms, err = s.repo.CountRooms(ctx, roomModel.StatusReserved)

		return err
	})
	g.Go(func() (err error) {
		summary.AvailableRooms, err = s.repo.CountRooms(ctx, roomModel.StatusAvailable)

		return err
	})
	g.Go(func() (err error) {
		summary.TodayPayments, err = s.repo.SumPayments(ctx, from, to)

		return err
	})
	g.Go(func() (err error) {
		summary.OccupiedRooms, err = s.repo.CountRooms(ctx, roomModel.StatusOccupied)

		return err
	})
	g.Go(func() (err error) {
		summary.ActiveRentals, err = s.repo.CountActiveRentals(ctx)

		return err
	})
	g.Go(func() (err error) {
		summary.InventoryItems, err = s.repo.CountInventoryItems(ctx)

		return err
	})
	g.Go(func() (err error) {
		summary.CheckedInReservations, err = s.repo.CountReservations(ctx, resModel.StatusCheckedIn)

		return err
	})

	return summary, g.Wait() //nolint:wrapcheck
}
