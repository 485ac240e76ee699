package service

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAmenity    = constant.CachePrefixAmenity + ":get"
	cacheGetAllAmenity = constant.CachePrefixAmenity + ":gets"
	cacheCountAmenity  = constant.CachePrefixAmenity + ":count"

	messageAmenityNotFound = "amenity not found"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAmenitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AmenityResponse, error)
	Detail(ctx context.Context, id string) (dto.AmenityDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Amenity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureUniqueName(ctx, req.Name, constant.Empty); err != nil {
		return constant.Empty, err
	}

	amenity := req.ToModel(user)

	if err = s.repo.Insert(ctx, amenity); err != nil {
		log.Error().Err(err).Msg("failed to create amenity")

		return constant.Empty, fmt.Errorf("failed to create amenity: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAmenity)
		shared.InvalidateCaches(c, s.cache, cacheCountAmenity)
	}()

	return amenity.ID, nil
}

func (s *serviceImpl) ensureUniqueName(ctx context.Context, name, exceptID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Value:    name,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	if exceptID != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    exceptID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check amenity name")

		return fmt.Errorf("failed to check amenity name: %w", err)
	}

	if exist {
		return failure.DuplicateName(fmt.Sprintf("amenity %s already exists", name)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = shared.WithDefaultSort(req, model.FieldName, model.FieldName, model.FieldRate, model.FieldRating, model.FieldAvailability)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAmenity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenities")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count amenities")

		return res, fmt.Errorf("failed to count amenities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenities")

		return res, fmt.Errorf("failed to get amenities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAmenity, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count amenities")

		return res, fmt.Errorf("failed to count amenities: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenity count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAmenity, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for amenity")

		return res, nil
	}

	amenity, err := s.getAmenity(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(amenity)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save amenity to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getAmenity(ctx context.Context, id string) (model.Amenity, error) {
	amenity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity")

		return amenity, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return amenity, failure.NotFound(messageAmenityNotFound) // nolint:wrapcheck
	}

	return amenity, nil
}

func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.AmenityDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	amenity, err := s.getAmenity(ctx, id)
	if err != nil {
		return res, err
	}

	stats, err := s.repo.RequestStats(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get amenity request stats")

		return res, fmt.Errorf("failed to get amenity request stats: %w", err)
	}

	res.FromModel(amenity, stats)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	amenity, err := s.getAmenity(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != constant.Empty && req.Name != amenity.Name {
		if err = s.ensureUniqueName(ctx, req.Name, id); err != nil {
			return err
		}
	}

	if req.Rate != nil {
		rate := shared.RoundCurrency(*req.Rate)
		req.Rate = &rate
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update amenity")

		return fmt.Errorf("failed to update amenity: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if amenity exists")

		return fmt.Errorf("failed to check if amenity exists: %w", err)
	}

	if !exist {
		return failure.NotFound(messageAmenityNotFound) // nolint:wrapcheck
	}

	active, err := s.repo.CountActiveRentals(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active rentals")

		return fmt.Errorf("failed to count active rentals: %w", err)
	}

	if active > 0 {
		return failure.ReferentialIntegrity(fmt.Sprintf("amenity has %d active rental(s) and cannot be deleted", active)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity")

		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetAmenity, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllAmenity)
	shared.InvalidateCaches(ctx, s.cache, cacheCountAmenity)
}
