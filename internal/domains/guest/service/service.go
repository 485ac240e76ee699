package service

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/guest/model"
	"resort/internal/domains/guest/model/dto"
	"resort/internal/domains/guest/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = constant.CachePrefixGuest + ":get"
	cacheGetAllGuest = constant.CachePrefixGuest + ":gets"
	cacheCountGuest  = constant.CachePrefixGuest + ":count"

	messageGuestNotFound       = "guest not found"
	messageReservationNotOwned = "reservation does not belong to this guest"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Detail(ctx context.Context, id string) (dto.GuestDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) error
	Delete(ctx context.Context, id string) error
	Preferences(ctx context.Context, id string) (dto.GuestPreferencesResponse, error)
	SetPreference(ctx context.Context, req dto.SetPreferenceRequest, id string) error
	Feedback(ctx context.Context, id string) (dto.GuestFeedbackResponse, error)
	AddFeedback(ctx context.Context, req dto.AddFeedbackRequest, id string) (string, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureUniqueEmail(ctx, req.Email, constant.Empty); err != nil {
		return constant.Empty, err
	}

	guest := req.ToModel(user)

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return constant.Empty, fmt.Errorf("failed to create guest: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGuest)
		shared.InvalidateCaches(c, s.cache, cacheCountGuest)
	}()

	return guest.ID, nil
}

// ensureUniqueEmail rejects an email owned by any guest other than exceptID.
func (s *serviceImpl) ensureUniqueEmail(ctx context.Context, email, exceptID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Value:    email,
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
		log.Error().Err(err).Msg("failed to check guest email")

		return fmt.Errorf("failed to check guest email: %w", err)
	}

	if exist {
		return failure.DuplicateEmail(fmt.Sprintf("email %s is already registered", email)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = shared.WithDefaultSort(req, model.FieldLastName, model.FieldLastName, model.FieldFirstName, model.FieldEmail)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGuest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.getGuest(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getGuest(ctx context.Context, id string) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound(messageGuestNotFound) // nolint:wrapcheck
	}

	return guest, nil
}

func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.GuestDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.getGuest(ctx, id)
	if err != nil {
		return res, err
	}

	stats, err := s.repo.Stats(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest stats")

		return res, fmt.Errorf("failed to get guest stats: %w", err)
	}

	res.FromModel(guest, stats)

	return res, nil
}

func (s *serviceImpl) Preferences(ctx context.Context, id string) (res dto.GuestPreferencesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Preferences")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.getGuest(ctx, id)
	if err != nil {
		return res, err
	}

	prefs, err := s.repo.Preferences(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest preferences")

		return res, fmt.Errorf("failed to get guest preferences: %w", err)
	}

	res.FromModels(guest, prefs)

	return res, nil
}

func (s *serviceImpl) SetPreference(ctx context.Context, req dto.SetPreferenceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.SetPreference")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getGuest(ctx, id); err != nil {
		return err
	}

	if err = s.repo.UpsertPreference(ctx, req.ToModel(id, user)); err != nil {
		log.Error().Err(err).Msg("failed to save guest preference")

		return fmt.Errorf("failed to save guest preference: %w", err)
	}

	return nil
}

func (s *serviceImpl) Feedback(ctx context.Context, id string) (res dto.GuestFeedbackResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Feedback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.getGuest(ctx, id)
	if err != nil {
		return res, err
	}

	feedback, err := s.repo.Feedback(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest feedback")

		return res, fmt.Errorf("failed to get guest feedback: %w", err)
	}

	res.FromModels(guest, feedback)

	return res, nil
}

// AddFeedback records a rating. A referenced reservation must be one of the guest's own.
func (s *serviceImpl) AddFeedback(ctx context.Context, req dto.AddFeedbackRequest, id string) (feedbackID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.AddFeedback")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getGuest(ctx, id); err != nil {
		return constant.Empty, err
	}

	if req.ReservationID != constant.Empty {
		var owns bool

		owns, err = s.repo.OwnsReservation(ctx, id, req.ReservationID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check reservation owner")

			return constant.Empty, fmt.Errorf("failed to check reservation owner: %w", err)
		}

		if !owns {
			return constant.Empty, failure.Validation(messageReservationNotOwned) // nolint:wrapcheck
		}
	}

	feedback := req.ToModel(id, user)

	if err = s.repo.InsertFeedback(ctx, feedback); err != nil {
		log.Error().Err(err).Msg("failed to save guest feedback")

		return constant.Empty, fmt.Errorf("failed to save guest feedback: %w", err)
	}

	return feedback.ID, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	guest, err := s.getGuest(ctx, id)
	if err != nil {
		return err
	}

	if req.Email != constant.Empty && req.Email != guest.Email {
		if err = s.ensureUniqueEmail(ctx, req.Email, id); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		return failure.NotFound(messageGuestNotFound) // nolint:wrapcheck
	}

	active, err := s.repo.CountActiveReservations(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active reservations")

		return fmt.Errorf("failed to count active reservations: %w", err)
	}

	if active > 0 {
		return failure.ReferentialIntegrity(fmt.Sprintf("guest has %d active reservation(s) and cannot be deleted", active)) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuest)
	shared.InvalidateCaches(ctx, s.cache, cacheCountGuest)
}
