package service

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/inventory/model"
	"resort/internal/domains/inventory/model/dto"
	"resort/internal/domains/inventory/repository"
	"resort/internal/events"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = constant.CachePrefixInventory + ":get"
	cacheGetAllItem = constant.CachePrefixInventory + ":gets"
	cacheCountItem  = constant.CachePrefixInventory + ":count"

	messageItemNotFound    = "inventory item not found"
	messageRestockQuantity = "restock quantity must be greater than zero"

	txRestock = "inventory.Restock"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ItemResponse, error)
	Detail(ctx context.Context, id string) (dto.ItemDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id string) error
	Delete(ctx context.Context, id string) error
	Restock(ctx context.Context, id string, req dto.RestockRequest) (dto.RestockResultResponse, error)
	RestockHistory(ctx context.Context, id string) ([]dto.RestockResponse, error)
}

type serviceImpl struct {
	items      repository.Item
	restocks   repository.Restock
	transactor postgres.Transactor
	publisher  events.Publisher
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	items repository.Item,
	restocks repository.Restock,
	transactor postgres.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Inventory {
	return &serviceImpl{
		items:      items,
		restocks:   restocks,
		transactor: transactor,
		publisher:  publisher,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item := req.ToModel(user)

	if err = s.items.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")

		return constant.Empty, fmt.Errorf("failed to create inventory item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()

	return item.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = shared.WithDefaultSort(req, model.FieldName, model.FieldName, model.FieldQuantity, model.FieldSupplier, model.FieldLastRestocked)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory items")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	models, err := s.items.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, fmt.Errorf("failed to get inventory items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.items.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory item count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory item")

		return res, nil
	}

	item, err := s.getItem(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getItem(ctx context.Context, id string) (model.Item, error) {
	item, err := s.items.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return item, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound(messageItemNotFound) // nolint:wrapcheck
	}

	return item, nil
}

func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.ItemDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.getItem(ctx, id)
	if err != nil {
		return res, err
	}

	stats, err := s.items.RestockStats(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restock stats")

		return res, fmt.Errorf("failed to get restock stats: %w", err)
	}

	history, err := s.history(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(item, stats, history)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getItem(ctx, id); err != nil {
		return err
	}

	if err = s.items.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update inventory item")

		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.items.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory item exists")

		return fmt.Errorf("failed to check if inventory item exists: %w", err)
	}

	if !exist {
		return failure.NotFound(messageItemNotFound) // nolint:wrapcheck
	}

	if err = s.items.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory item")

		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// Restock records a delivery and raises the item quantity in one transaction.
func (s *serviceImpl) Restock(ctx context.Context, id string, req dto.RestockRequest) (res dto.RestockResultResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.Restock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var (
		restock     model.Restock
		restockDate = timezone.Today()
	)

	err = s.transactor.WithinTransaction(ctx, txRestock, func(ctx context.Context, tx *sqlx.Tx) error {
		filter := shared.FilterByID(id, model.FieldID, model.TableName)

		item, err := s.items.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock inventory item: %w", err)
		}

		if item.ID == constant.Empty {
			return failure.NotFound(messageItemNotFound) // nolint:wrapcheck
		}

		if req.Quantity <= 0 {
			return failure.Validation(messageRestockQuantity) // nolint:wrapcheck
		}

		if req.RestockDate != constant.Empty {
			if restockDate, err = shared.ParseDate(req.RestockDate); err != nil {
				return failure.Validation(err.Error()) // nolint:wrapcheck
			}
		}

		restock = req.ToModel(item.ID, item.Supplier, user, restockDate)

		if err = s.restocks.InsertTx(ctx, tx, restock); err != nil {
			return fmt.Errorf("failed to insert restock: %w", err)
		}

		res.Quantity = item.Quantity + req.Quantity

		fields := map[string]any{
			model.FieldQuantity:      res.Quantity,
			model.FieldLastRestocked: restockDate,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.items.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update inventory quantity: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("item", id).Msg("failed to restock inventory item")

		return res, err
	}

	res.RestockID = restock.ID
	res.ItemID = id
	res.LastRestocked = restockDate.Format(constant.DateOnlyFormat)

	go s.invalidate(context.WithoutCancel(ctx), id)

	events.PublishAsync(ctx, s.publisher, events.New(ctx, events.TypeInventoryRestocked, id, res))

	return res, nil
}

func (s *serviceImpl) RestockHistory(ctx context.Context, id string) (res []dto.RestockResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RestockHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getItem(ctx, id); err != nil {
		return res, err
	}

	history, err := s.history(ctx, id)
	if err != nil {
		return res, err
	}

	return dto.FromRestocks(history), nil
}

func (s *serviceImpl) history(ctx context.Context, id string) ([]model.Restock, error) {
	params := gDto.QueryParams{SortBy: model.FieldRestockDate, SortDir: gDto.SortDirDesc}

	history, err := s.restocks.GetAll(ctx, params, shared.FilterByID(id, model.FieldItemID, model.RestockTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restock history")

		return nil, fmt.Errorf("failed to get restock history: %w", err)
	}

	return history, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory item from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllItem)
	shared.InvalidateCaches(ctx, s.cache, cacheCountItem)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixDashboard)
}
