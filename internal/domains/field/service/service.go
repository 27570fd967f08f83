package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"arena/config"
	"arena/infras/otel"
	"arena/infras/s3"
	"arena/internal/domains/field/model"
	"arena/internal/domains/field/model/dto"
	"arena/internal/domains/field/repository"
	venueModel "arena/internal/domains/venue/model"
	venueRepo "arena/internal/domains/venue/repository"
	"arena/shared"
	"arena/shared/base64"
	"arena/shared/cache"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetField    = "field:get"
	cacheGetAllField = "field:gets"
	cacheCountField  = "field:count"
)

type Field interface {
	Create(ctx context.Context, req dto.CreateFieldRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFieldsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.FieldResponse, error)
	Update(ctx context.Context, req dto.UpdateFieldRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo      repository.Field
	venueRepo venueRepo.Venue
	cfg       *config.Config
	cache     cache.RedisCache
	s3        s3.S3
	otel      otel.Otel
}

func New(repo repository.Field, venueRepo venueRepo.Venue, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, otel otel.Otel) Field {
	return &serviceImpl{
		repo:      repo,
		venueRepo: venueRepo,
		cfg:       cfg,
		cache:     cache,
		s3:        s3,
		otel:      otel,
	}
}

func pricesByFieldFilter(fieldIDs []string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.PriceFieldFieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    fieldIDs,
				Table:    model.PriceTableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFieldRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	venueExists, err := s.venueRepo.Exist(ctx, shared.FilterByID(req.VenueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !venueExists {
		return failure.BadRequestFromString("venue does not exist") // nolint:wrapcheck
	}

	field, prices, err := req.ToModel(user)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.repo.CreateWithPrices(ctx, field, prices); err != nil {
		log.Error().Err(err).Msg("failed to create field")

		return fmt.Errorf("failed to create field: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllField)
		shared.InvalidateCaches(c, s.cache, cacheCountField)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFieldsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllField, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for fields")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count fields")

		return res, fmt.Errorf("failed to count fields: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get fields")

		return res, fmt.Errorf("failed to get fields: %w", err)
	}

	pricesByField := map[string][]model.FieldPrice{}

	if len(models) > 0 {
		fieldIDs := make([]string, len(models))
		for i, mod := range models {
			fieldIDs[i] = mod.ID
		}

		prices, err := s.repo.GetPrices(ctx, pricesByFieldFilter(fieldIDs))
		if err != nil {
			log.Error().Err(err).Msg("failed to get field prices")

			return res, fmt.Errorf("failed to get field prices: %w", err)
		}

		for _, price := range prices {
			pricesByField[price.FieldID] = append(pricesByField[price.FieldID], price)
		}
	}

	res.FromModels(models, pricesByField, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save fields to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountField, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for field count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count fields")

		return res, fmt.Errorf("failed to count fields: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save field count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FieldResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetField, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for field")

		return res, nil
	}

	field, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get field")

		return res, fmt.Errorf("failed to get field: %w", err)
	}

	if field.ID == constant.Empty {
		return res, failure.NotFound("field not found") // nolint:wrapcheck
	}

	prices, err := s.repo.GetPrices(ctx, shared.FilterByID(id, model.PriceFieldFieldID, model.PriceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get field prices")

		return res, fmt.Errorf("failed to get field prices: %w", err)
	}

	res.FromModel(field, prices)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save field to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFieldRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if field exists")

		return fmt.Errorf("failed to check if field exists: %w", err)
	}

	if !exist {
		return failure.NotFound("field not found") // nolint:wrapcheck
	}

	venueExists, err := s.venueRepo.Exist(ctx, shared.FilterByID(req.VenueID, venueModel.FieldID, venueModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if venue exists")

		return fmt.Errorf("failed to check if venue exists: %w", err)
	}

	if !venueExists {
		return failure.BadRequestFromString("venue does not exist") // nolint:wrapcheck
	}

	field, prices, err := req.ToModel(user, id)
	if err != nil {
		return err //nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldVenueID:       field.VenueID,
		model.FieldName:          field.Name,
		model.FieldType:          field.Type,
		model.FieldIsActive:      field.IsActive,
		model.FieldLengthMeter:   field.LengthMeter,
		model.FieldWidthMeter:    field.WidthMeter,
		model.FieldImageURLs:     field.ImageURLs,
		constant.FieldModifiedAt: field.ModifiedAt,
		constant.FieldModifiedBy: field.ModifiedBy,
	}

	if err = s.repo.UpdateWithPrices(ctx, updatedFields, id, prices); err != nil {
		log.Error().Err(err).Msg("failed to update field")

		return fmt.Errorf("failed to update field: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetField, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete field from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllField)
		shared.InvalidateCaches(c, s.cache, cacheCountField)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if field exists")

		return fmt.Errorf("failed to check if field exists: %w", err)
	}

	if !exist {
		return failure.NotFound("field not found") // nolint:wrapcheck
	}

	// Price rows go with the field via FK cascade.
	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete field")

		return fmt.Errorf("failed to delete field: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetField, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete field from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllField)
		shared.InvalidateCaches(c, s.cache, cacheCountField)
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if field exists")

		return res, fmt.Errorf("failed to check if field exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("field not found") // nolint:wrapcheck
	}

	data, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.BadRequestFromString("invalid image payload") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.Image)

	ext := extensionFromContentType(contentType)
	fileName := uuid.NewString() + ext
	directory := filepath.Join(s.cfg.External.S3.FieldImageDir, id)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, directory, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload field image")

		return res, fmt.Errorf("failed to upload field image: %w", err)
	}

	res.URL = url

	return res, nil
}

func extensionFromContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		suffix := strings.TrimPrefix(contentType, "image/")
		if suffix == contentType || suffix == "" {
			return ""
		}

		return "." + suffix
	}
}
