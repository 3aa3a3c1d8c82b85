package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/paidservice/model"
	"inn/internal/domains/paidservice/model/dto"
	"inn/internal/domains/paidservice/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPaidService    = "paid_service:get"
	cacheGetAllPaidService = "paid_service:gets"
	cacheCountPaidService  = "paid_service:count"
)

type PaidService interface {
	Create(ctx context.Context, accountID string, req dto.CreatePaidServiceRequest) error
	GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaidServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, accountID, id string) (dto.PaidServiceResponse, error)
	Update(ctx context.Context, accountID string, req dto.UpdatePaidServiceRequest, id string) error
	Delete(ctx context.Context, accountID, id string) error
}

type serviceImpl struct {
	repo  repository.PaidService
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PaidService, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PaidService {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, accountID string, req dto.CreatePaidServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	paidService := req.ToModel(accountID, user)

	if err = s.repo.Insert(ctx, paidService); err != nil {
		log.Error().Err(err).Msg("failed to create paid service")

		return fmt.Errorf("failed to create paid service: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPaidService)
		shared.InvalidateCaches(c, s.cache, cacheCountPaidService)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaidServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, shared.FilterByAccount(accountID, model.TableName))

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPaidService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for paid services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count paid services")

		return res, fmt.Errorf("failed to count paid services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get paid services")

		return res, fmt.Errorf("failed to get paid services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save paid services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPaidService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for paid service count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count paid services")

		return res, fmt.Errorf("failed to count paid services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save paid service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, accountID, id string) (res dto.PaidServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPaidService, accountID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for paid service")

		return res, nil
	}

	paidService, err := s.repo.Get(ctx, shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get paid service")

		return res, fmt.Errorf("failed to get paid service: %w", err)
	}

	if paidService.ID == constant.Empty {
		return res, failure.NotFound("paid service not found") // nolint:wrapcheck
	}

	res.FromModel(paidService)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save paid service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, accountID string, req dto.UpdatePaidServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if paid service exists")

		return fmt.Errorf("failed to check if paid service exists: %w", err)
	}

	if !exist {
		log.Error().Msg("paid service not found")

		return failure.NotFound("paid service not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update paid service")

		return fmt.Errorf("failed to update paid service: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPaidService, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete paid service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPaidService)
		shared.InvalidateCaches(c, s.cache, cacheCountPaidService)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, accountID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if paid service exists")

		return fmt.Errorf("failed to check if paid service exists: %w", err)
	}

	if !exist {
		log.Error().Msg("paid service not found")

		return failure.NotFound("paid service not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete paid service")

		return fmt.Errorf("failed to delete paid service: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPaidService, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete paid service from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPaidService)
		shared.InvalidateCaches(c, s.cache, cacheCountPaidService)
	}()

	return nil
}
