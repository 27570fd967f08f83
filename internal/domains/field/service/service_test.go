package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arena/config"
	"arena/infras/otel/mocks"
	s3Mocks "arena/infras/s3/mocks"
	fieldMocks "arena/internal/domains/field/mocks"
	"arena/internal/domains/field/model"
	"arena/internal/domains/field/model/dto"
	"arena/internal/domains/field/service"
	venueMocks "arena/internal/domains/venue/mocks"
	cacheMocks "arena/shared/cache/mocks"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
)

// 1x1 transparent PNG.
const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func createRequest() dto.CreateFieldRequest {
	return dto.CreateFieldRequest{
		VenueID:     "venue-1",
		Name:        "Lapangan A",
		Type:        "Futsal",
		LengthMeter: 25,
		WidthMeter:  15,
		Prices: []dto.PriceRequest{
			{DayType: model.DayTypeWeekday, StartHour: 8, EndHour: 17, Price: decimal.NewFromInt(150000)},
		},
	}
}

func newFieldService(t *testing.T) (service.Field, *fieldMocks.MockField, *venueMocks.MockVenue, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := fieldMocks.NewMockField(ctrl)
	mockVenueRepo := venueMocks.NewMockVenue(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "arena-assets"
	cfg.External.S3.FieldImageDir = "fields"

	// Write-behind caching and invalidation run on goroutines, so cache
	// writes may or may not land before the test returns.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockVenueRepo, cfg, mockCache, mockS3, mockOtel)

	return svc, mockRepo, mockVenueRepo, mockCache, mockS3
}

func expectCacheMiss(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()
}

func TestFieldService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockVenueRepo, _, _ := newFieldService(t)

		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			CreateWithPrices(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, field model.Field, prices []model.FieldPrice) error {
				assert.Equal(t, "venue-1", field.VenueID)
				assert.Equal(t, "admin-id", field.CreatedBy)
				assert.Len(t, prices, 1)
				assert.Equal(t, field.ID, prices[0].FieldID)

				return nil
			})

		err := svc.Create(adminContext(), createRequest())

		assert.NoError(t, err)
	})

	t.Run("venue does not exist", func(t *testing.T) {
		svc, _, mockVenueRepo, _, _ := newFieldService(t)

		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Create(adminContext(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "venue does not exist")
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc, _, mockVenueRepo, _, _ := newFieldService(t)

		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		req := createRequest()
		req.Prices = nil

		err := svc.Create(adminContext(), req)

		assert.ErrorIs(t, err, model.ErrPricesRequired)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockVenueRepo, _, _ := newFieldService(t)

		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			CreateWithPrices(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := svc.Create(adminContext(), createRequest())

		assert.Error(t, err)
	})
}

func TestFieldService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	t.Run("success with batched prices", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newFieldService(t)
		expectCacheMiss(mockCache)

		fields := []model.Field{
			{ID: "field-1", Name: "Lapangan A"},
			{ID: "field-2", Name: "Lapangan B"},
		}
		prices := []model.FieldPrice{
			{ID: "price-1", FieldID: "field-1"},
			{ID: "price-2", FieldID: "field-1"},
		}

		mockRepo.EXPECT().Count(gomock.Any(), filter).Return(2, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, filter).Return(fields, nil)
		mockRepo.EXPECT().
			GetPrices(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, priceFilter gDto.FilterGroup) ([]model.FieldPrice, error) {
				assert.Len(t, priceFilter.Filters, 1)

				inFilter, ok := priceFilter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, gDto.FilterOperatorIn, inFilter.Operator)
				assert.ElementsMatch(t, []string{"field-1", "field-2"}, inFilter.Value)

				return prices, nil
			})

		res, err := svc.GetAll(adminContext(), params, filter)

		assert.NoError(t, err)
		assert.Len(t, res.Fields, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.Len(t, res.Fields[0].Prices, 2)
		assert.Empty(t, res.Fields[1].Prices)
	})

	t.Run("empty result skips price lookup", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newFieldService(t)
		expectCacheMiss(mockCache)

		mockRepo.EXPECT().Count(gomock.Any(), filter).Return(0, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Field{}, nil)

		res, err := svc.GetAll(adminContext(), params, filter)

		assert.NoError(t, err)
		assert.Empty(t, res.Fields)
	})

	t.Run("cache hit", func(t *testing.T) {
		svc, _, _, mockCache, _ := newFieldService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetFieldsResponse)
				assert.True(t, ok)
				res.TotalData = 7

				return nil
			})

		res, err := svc.GetAll(adminContext(), params, filter)

		assert.NoError(t, err)
		assert.Equal(t, 7, res.TotalData)
	})
}

func TestFieldService_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newFieldService(t)
		expectCacheMiss(mockCache)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Field{ID: "field-1", Name: "Lapangan A"}, nil)
		mockRepo.EXPECT().
			GetPrices(gomock.Any(), gomock.Any()).
			Return([]model.FieldPrice{{ID: "price-1", FieldID: "field-1"}}, nil)

		res, err := svc.Get(adminContext(), "field-1")

		assert.NoError(t, err)
		assert.Equal(t, "field-1", res.ID)
		assert.Len(t, res.Prices, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, mockCache, _ := newFieldService(t)
		expectCacheMiss(mockCache)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Field{}, nil)

		_, err := svc.Get(adminContext(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFieldService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockVenueRepo, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			UpdateWithPrices(gomock.Any(), gomock.Any(), "field-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, updatedFields map[string]any, fieldID string, prices []model.FieldPrice) error {
				assert.Equal(t, "Lapangan A", updatedFields[model.FieldName])
				assert.Equal(t, "venue-1", updatedFields[model.FieldVenueID])
				assert.Equal(t, "admin-id", updatedFields[constant.FieldModifiedBy])
				assert.Len(t, prices, 1)
				assert.Equal(t, fieldID, prices[0].FieldID)

				return nil
			})

		err := svc.Update(adminContext(), dto.UpdateFieldRequest(createRequest()), "field-1")

		assert.NoError(t, err)
	})

	t.Run("field not found", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(adminContext(), dto.UpdateFieldRequest(createRequest()), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("venue does not exist", func(t *testing.T) {
		svc, mockRepo, mockVenueRepo, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockVenueRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(adminContext(), dto.UpdateFieldRequest(createRequest()), "field-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestFieldService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(adminContext(), "field-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(adminContext(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestFieldService_UploadImage(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, _, _, mockS3 := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), "arena-assets", "fields/field-1", gomock.Any(), "image/png", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
				assert.Contains(t, fileName, ".png")
				assert.NotEmpty(t, data)

				return "https://cdn.example.com/fields/field-1/" + fileName, nil
			})

		res, err := svc.UploadImage(adminContext(), dto.UploadImageRequest{Image: pngDataURI}, "field-1")

		assert.NoError(t, err)
		assert.Contains(t, res.URL, "fields/field-1/")
	})

	t.Run("field not found", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.UploadImage(adminContext(), dto.UploadImageRequest{Image: pngDataURI}, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("invalid payload", func(t *testing.T) {
		svc, mockRepo, _, _, _ := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.UploadImage(adminContext(), dto.UploadImageRequest{Image: "not a data uri"}, "field-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("upload error", func(t *testing.T) {
		svc, mockRepo, _, _, mockS3 := newFieldService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockS3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("upload failed"))

		_, err := svc.UploadImage(adminContext(), dto.UploadImageRequest{Image: pngDataURI}, "field-1")

		assert.Error(t, err)
	})
}
