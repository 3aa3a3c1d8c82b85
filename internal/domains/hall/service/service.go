package service

import (
	"context"
	"fmt"
	"strings"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/s3"
	"inn/internal/domains/hall/model"
	"inn/internal/domains/hall/model/dto"
	"inn/internal/domains/hall/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHall    = "hall:get"
	cacheGetAllHall = "hall:gets"
	cacheCountHall  = "hall:count"
)

type Hall interface {
	Create(ctx context.Context, accountID string, req dto.CreateHallRequest) error
	GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHallsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, accountID, id string) (dto.HallResponse, error)
	Update(ctx context.Context, accountID string, req dto.UpdateHallRequest, id string) error
	Delete(ctx context.Context, accountID, id string) error
}

type serviceImpl struct {
	repo     repository.Hall
	typeRepo repository.HallType
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	s3       s3.S3
}

func New(repo repository.Hall, typeRepo repository.HallType, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Hall {
	return &serviceImpl{
		repo:     repo,
		typeRepo: typeRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		s3:       s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, accountID string, req dto.CreateHallRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	typeExists, err := s.typeRepo.Exist(ctx, shared.FilterByIDAndAccount(req.HallTypeID, model.TypeFieldID, accountID, model.TypeTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hall type exists")

		return fmt.Errorf("failed to check if hall type exists: %w", err)
	}

	if !typeExists {
		return failure.BadRequestFromString("hall type does not exist") // nolint:wrapcheck
	}

	imageURL := constant.Empty
	var uploadedObjectName string
	if req.Image != nil {
		bucketName := s.cfg.External.S3.BucketName
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload image to S3")

			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, req.ToModel(accountID, user, imageURL)); err != nil {
		if uploadedObjectName != constant.Empty {
			bucketName := s.cfg.External.S3.BucketName
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, accountID string, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHallsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter.Filters = append(filter.Filters, shared.FilterByAccount(accountID, model.TableName))

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHall, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for halls")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count halls")

		return res, fmt.Errorf("failed to count halls: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get halls")

		return res, fmt.Errorf("failed to get halls: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save halls to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHall, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count halls")

		return res, fmt.Errorf("failed to count halls: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, accountID, id string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHall, accountID, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hall")

		return res, nil
	}

	hall, err := s.repo.Get(ctx, shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hall")

		return res, fmt.Errorf("failed to get hall: %w", err)
	}

	if hall.ID == constant.Empty {
		return res, failure.NotFound("hall not found") // nolint:wrapcheck
	}

	res.FromModel(hall)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hall to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, accountID string, req dto.UpdateHallRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByIDAndAccount(id, model.FieldID, accountID, model.TableName)

	currentHall, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check hall existence")

		return err
	}

	if currentHall.ID == constant.Empty {
		log.Error().Msg("hall not found")

		return failure.NotFound("hall not found")
	}

	return s.updateInternal(ctx, req, currentHall, accountID, user, filter)
}

func (s *serviceImpl) updateInternal(ctx context.Context, req dto.UpdateHallRequest, currentHall model.HallDetail, accountID, user string, filter gDto.FilterGroup) error {
	imageURL := constant.Empty
	var uploadedObjectName string
	bucketName := s.cfg.External.S3.BucketName

	if req.Image != nil {
		filename := uuid.NewString()

		// Get original extension
		parts := strings.Split(req.Image.Filename, ".")
		if len(parts) > 1 {
			filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
		}

		url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		imageURL = url
		uploadedObjectName = filename
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldImage] = imageURL
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update hall")

		// Cleanup: delete newly uploaded image if DB update fails
		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, uploadedObjectName)
		}

		return fmt.Errorf("failed to update hall: %w", err)
	}

	// Delete old image if update succeeded and new image was uploaded
	if imageURL != constant.Empty && currentHall.Image != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentHall.Image)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHall, accountID, currentHall.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
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
		log.Error().Err(err).Msg("failed to check if hall exists")

		return fmt.Errorf("failed to check if hall exists: %w", err)
	}

	if !exist {
		log.Error().Msg("hall not found")

		return failure.NotFound("hall not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete hall")

		return fmt.Errorf("failed to delete hall: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHall, accountID, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hall from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHall)
		shared.InvalidateCaches(c, s.cache, cacheCountHall)
	}()

	return nil
}
