package dto

import (
	"math"
	"slices"
	"strings"

	"arena/internal/domains/field/model"
	"arena/shared"
	gDto "arena/shared/dto"
	gModel "arena/shared/model"
	"arena/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PriceRequest struct {
	DayType   string          `json:"day_type"`
	StartHour int             `json:"start_hour"`
	EndHour   int             `json:"end_hour"`
	Price     decimal.Decimal `json:"price"`
}

func (p *PriceRequest) validate() error {
	if p.DayType != model.DayTypeWeekday && p.DayType != model.DayTypeWeekend {
		return model.ErrInvalidDayType
	}

	if p.StartHour < 0 || p.StartHour > 23 {
		return model.ErrInvalidStartHour
	}

	if p.EndHour < 0 || p.EndHour > 23 {
		return model.ErrInvalidEndHour
	}

	if p.StartHour >= p.EndHour {
		return model.ErrInvalidHourOrder
	}

	if !p.Price.IsPositive() {
		return model.ErrInvalidPrice
	}

	return nil
}

type CreateFieldRequest struct {
	VenueID     string         `json:"venue_id" validate:"required"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	LengthMeter float64        `json:"length_meter"`
	WidthMeter  float64        `json:"width_meter"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Prices      []PriceRequest `json:"prices"`
	ImageURLs   []string       `json:"image_urls,omitempty"`
}

// Validate checks the form the way the dashboard does: one error at a time,
// in a fixed order, with user-facing messages.
func (r *CreateFieldRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return model.ErrNameRequired
	}

	if strings.TrimSpace(r.Type) == "" {
		return model.ErrTypeRequired
	}

	if math.IsNaN(r.LengthMeter) || math.IsInf(r.LengthMeter, 0) || r.LengthMeter <= 0 {
		return model.ErrInvalidLength
	}

	if math.IsNaN(r.WidthMeter) || math.IsInf(r.WidthMeter, 0) || r.WidthMeter <= 0 {
		return model.ErrInvalidWidth
	}

	for i := range r.Prices {
		if err := r.Prices[i].validate(); err != nil {
			return err
		}
	}

	if len(r.Prices) == 0 {
		return model.ErrPricesRequired
	}

	return nil
}

// ToModel validates the request and builds the field with its price rows.
// An empty image list falls back to the default placeholder.
func (r *CreateFieldRequest) ToModel(username string) (model.Field, []model.FieldPrice, error) {
	if err := r.Validate(); err != nil {
		return model.Field{}, nil, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	imageURLs := slices.Clone(r.ImageURLs)
	if len(imageURLs) == 0 {
		imageURLs = []string{model.DefaultImageURL}
	}

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  username,
		ModifiedBy: username,
	}

	field := model.Field{
		ID:          uuid.NewString(),
		VenueID:     r.VenueID,
		Name:        strings.TrimSpace(r.Name),
		Type:        strings.TrimSpace(r.Type),
		IsActive:    isActive,
		LengthMeter: r.LengthMeter,
		WidthMeter:  r.WidthMeter,
		ImageURLs:   imageURLs,
		Metadata:    metadata,
	}

	prices := make([]model.FieldPrice, len(r.Prices))
	for i, p := range r.Prices {
		prices[i] = model.FieldPrice{
			ID:        uuid.NewString(),
			FieldID:   field.ID,
			DayType:   p.DayType,
			StartHour: p.StartHour,
			EndHour:   p.EndHour,
			Price:     p.Price,
			Metadata:  metadata,
		}
	}

	return field, prices, nil
}

// AppendImageURL adds a URL to the set, rejecting duplicates and leaving the
// input untouched on error.
func AppendImageURL(urls []string, url string) ([]string, error) {
	if slices.Contains(urls, url) {
		return urls, model.ErrDuplicateImageURL
	}

	return append(slices.Clone(urls), url), nil
}

type UpdateFieldRequest struct {
	VenueID     string         `json:"venue_id" validate:"required"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	LengthMeter float64        `json:"length_meter"`
	WidthMeter  float64        `json:"width_meter"`
	IsActive    *bool          `json:"is_active,omitempty"`
	Prices      []PriceRequest `json:"prices"`
	ImageURLs   []string       `json:"image_urls,omitempty"`
}

// ToModel reuses the create-path validation; updates replace the whole field
// form, prices included.
func (r *UpdateFieldRequest) ToModel(username, fieldID string) (model.Field, []model.FieldPrice, error) {
	create := CreateFieldRequest(*r)

	field, prices, err := create.ToModel(username)
	if err != nil {
		return model.Field{}, nil, err
	}

	field.ID = fieldID
	for i := range prices {
		prices[i].FieldID = fieldID
	}

	return field, prices, nil
}

type UploadImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}

type PriceResponse struct {
	ID        string          `json:"id"`
	DayType   string          `json:"day_type"`
	StartHour int             `json:"start_hour"`
	EndHour   int             `json:"end_hour"`
	Price     decimal.Decimal `json:"price"`
}

func (p *PriceResponse) FromModel(mod model.FieldPrice) {
	p.ID = mod.ID
	p.DayType = mod.DayType
	p.StartHour = mod.StartHour
	p.EndHour = mod.EndHour
	p.Price = mod.Price
}

type FieldResponse struct {
	ID          string          `json:"id"`
	VenueID     string          `json:"venue_id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	IsActive    bool            `json:"is_active"`
	LengthMeter float64         `json:"length_meter"`
	WidthMeter  float64         `json:"width_meter"`
	ImageURLs   []string        `json:"image_urls"`
	Prices      []PriceResponse `json:"prices"`
	gDto.Metadata
}

func (r *FieldResponse) FromModel(mod model.Field, prices []model.FieldPrice) {
	r.ID = mod.ID
	r.VenueID = mod.VenueID
	r.Name = mod.Name
	r.Type = mod.Type
	r.IsActive = mod.IsActive
	r.LengthMeter = mod.LengthMeter
	r.WidthMeter = mod.WidthMeter
	r.ImageURLs = mod.ImageURLs

	r.Prices = make([]PriceResponse, len(prices))
	for i, p := range prices {
		r.Prices[i].FromModel(p)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetFieldsResponse struct {
	Fields    []FieldResponse `json:"fields"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetFieldsResponse) FromModels(models []model.Field, pricesByField map[string][]model.FieldPrice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Fields = make([]FieldResponse, len(models))
	for i, mod := range models {
		r.Fields[i].FromModel(mod, pricesByField[mod.ID])
	}
}
