package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/hall/model"
	"inn/internal/domains/hall/model/dto"
	"inn/internal/domains/hall/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHallType    = "hall_type:get"
	cacheGetAllHallType = "hall_type:gets"
	cacheCountHallType  = "hall_type:count"
)

type HallType interface {
	Create(ctx context.Context, accountID string, req dto.CreateHallTypeRequest) error
	GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHallTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, accountID, id string) (dto.HallTypeResponse, error)
	Update(ctx context.Context, accountID string, req dto.UpdateHallTypeRequest, id string) error
	Delete(ctx context.Context, accountID, id string) error
}

type hallTypeImpl struct {
	repo  repository.HallType
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewHallType(repo repository.HallType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) HallType {
	return &hallTypeImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *hallTypeImpl) Create(ctx context.Context, accountID string, req dto.CreateHallTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(accountID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create hall type")

		return fmt.Errorf("failed to create hall type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHallType)
		shared.InvalidateCaches(c, s.cache, cacheCountHallType)
	}()

	return nil
}

func (s *hallTypeImpl) GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHallTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, shared.FilterByAccount(accountID, model.TypeTableName))

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHallType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hall types")

		return res, fmt.Errorf("failed to count hall types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall types")

		return res, fmt.Errorf("failed to get hall types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall types to cache")
		}
	}()

	return res, nil
}

func (s *hallTypeImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHallType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall type count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hall types")

		return res, fmt.Errorf("failed to count hall types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall type count to cache")
		}
	}()

	return res, nil
}

func (s *hallTypeImpl) Get(ctx context.Context, accountID, id string) (res dto.HallTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHallType, accountID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall type")

		return res, nil
	}

	hallType, err := s.repo.Get(ctx, shared.FilterByIDAndAccount(id, model.TypeFieldID, accountID, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall type")

		return res, fmt.Errorf("failed to get hall type: %w", err)
	}

	if hallType.ID == constant.Empty {
		return res, failure.NotFound("hall type not found") // nolint:wrapcheck
	}

	res.FromModel(hallType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall type to cache")
		}
	}()

	return res, nil
}

func (s *hallTypeImpl) Update(ctx context.Context, accountID string, req dto.UpdateHallTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.TypeFieldID, accountID, model.TypeTableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall type exists")

		return fmt.Errorf("failed to check if hall type exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hall type not found")

		return failure.NotFound("hall type not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hall type")

		return fmt.Errorf("failed to update hall type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHallType, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHallType)
		shared.InvalidateCaches(c, s.cache, cacheCountHallType)
	}()

	return nil
}

func (s *hallTypeImpl) Delete(ctx context.Context, accountID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByIDAndAccount(id, model.TypeFieldID, accountID, model.TypeTableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall type exists")

		return fmt.Errorf("failed to check if hall type exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hall type not found")

		return failure.NotFound("hall type not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hall type")

		return fmt.Errorf("failed to delete hall type: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHallType, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall type from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHallType)
		shared.InvalidateCaches(c, s.cache, cacheCountHallType)
	}()

	return nil
}
