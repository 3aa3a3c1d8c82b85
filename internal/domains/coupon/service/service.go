package service

import (
	"context"
	"fmt"

	"inn/config"
	"inn/infras/otel"
	"inn/internal/domains/coupon/model"
	"inn/internal/domains/coupon/model/dto"
	"inn/internal/domains/coupon/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCoupon    = "coupon:get"
	cacheGetAllCoupon = "coupon:gets"
	cacheCountCoupon  = "coupon:count"
)

type Coupon interface {
	Create(ctx context.Context, accountID string, req dto.CreateCouponRequest) error
	GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCouponsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, accountID, id string) (dto.CouponResponse, error)
	Update(ctx context.Context, accountID string, req dto.UpdateCouponRequest, id string) error
	Delete(ctx context.Context, accountID, id string) error
}

type serviceImpl struct {
	repo  repository.Coupon
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Coupon, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Coupon {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, accountID string, req dto.CreateCouponRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	codeFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCouponCode,
				Value:    req.CouponCode,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			shared.FilterByAccount(accountID, model.TableName),
		},
	}

	exist, err := s.repo.Exist(ctx, codeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if coupon code exists")

		return fmt.Errorf("failed to check if coupon code exists: %w", err)
	}

	if exist {
		log.Error().Str("couponCode", req.CouponCode).Msg("coupon code already exists")

		return failure.BadRequestFromString("coupon code already exists") // nolint:wrapcheck
	}

	coupon := req.ToModel(accountID, user)

	if err = s.repo.Insert(ctx, coupon); err != nil {
		log.Error().Err(err).Msg("failed to create coupon")

		return fmt.Errorf("failed to create coupon: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCoupon)
		shared.InvalidateCaches(c, s.cache, cacheCountCoupon)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCouponsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, shared.FilterByAccount(accountID, model.TableName))

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCoupon, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for coupons")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count coupons")

		return res, fmt.Errorf("failed to count coupons: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupons")

		return res, fmt.Errorf("failed to get coupons: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save coupons to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCoupon, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for coupon count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count coupons")

		return res, fmt.Errorf("failed to count coupons: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save coupon count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, accountID, id string) (res dto.CouponResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCoupon, accountID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for coupon")

		return res, nil
	}

	coupon, err := s.repo.Get(ctx, shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get coupon")

		return res, fmt.Errorf("failed to get coupon: %w", err)
	}

	if coupon.ID == constant.Empty {
		return res, failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	res.FromModel(coupon)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save coupon to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, accountID string, req dto.UpdateCouponRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if coupon exists")

		return fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if !exist {
		log.Error().Msg("coupon not found")

		return failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update coupon")

		return fmt.Errorf("failed to update coupon: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCoupon, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete coupon from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCoupon)
		shared.InvalidateCaches(c, s.cache, cacheCountCoupon)
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
		log.Error().Err(err).Msg("failed to check if coupon exists")

		return fmt.Errorf("failed to check if coupon exists: %w", err)
	}

	if !exist {
		log.Error().Msg("coupon not found")

		return failure.NotFound("coupon not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete coupon")

		return fmt.Errorf("failed to delete coupon: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCoupon, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete coupon from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCoupon)
		shared.InvalidateCaches(c, s.cache, cacheCountCoupon)
	}()

	return nil
}
