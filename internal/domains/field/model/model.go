package model

import (
	"arena/shared/failure"
	"arena/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "fields"
	EntityName = "field"

	FieldID          = "id"
	FieldVenueID     = "venue_id"
	FieldName        = "name"
	FieldType        = "type"
	FieldIsActive    = "is_active"
	FieldLengthMeter = "length_meter"
	FieldWidthMeter  = "width_meter"
	FieldImageURLs   = "image_urls"
)

const (
	PriceTableName  = "field_prices"
	PriceEntityName = "field_price"

	PriceFieldID        = "id"
	PriceFieldFieldID   = "field_id"
	PriceFieldDayType   = "day_type"
	PriceFieldStartHour = "start_hour"
	PriceFieldEndHour   = "end_hour"
	PriceFieldPrice     = "price"
)

const (
	DayTypeWeekday = "WEEKDAY"
	DayTypeWeekend = "WEEKEND"
)

// DefaultImageURL is the placeholder used when a field is saved without images.
const DefaultImageURL = "https://images.unsplash.com/photo-1521412644187-c49fa049e84d?auto=format&fit=crop&w=1200&q=60"

// Validation failures are fixed values so callers can match them with errors.Is.
var (
	ErrNameRequired      = failure.BadRequestFromString("Nama lapangan wajib diisi")
	ErrTypeRequired      = failure.BadRequestFromString("Tipe lapangan wajib diisi")
	ErrInvalidLength     = failure.BadRequestFromString("Panjang lapangan harus angka > 0")
	ErrInvalidWidth      = failure.BadRequestFromString("Lebar lapangan harus angka > 0")
	ErrInvalidDayType    = failure.BadRequestFromString("Tipe hari harus WEEKDAY atau WEEKEND")
	ErrInvalidStartHour  = failure.BadRequestFromString("Jam mulai harus 0-23")
	ErrInvalidEndHour    = failure.BadRequestFromString("Jam selesai harus 0-23")
	ErrInvalidHourOrder  = failure.BadRequestFromString("Jam mulai harus < jam selesai")
	ErrInvalidPrice      = failure.BadRequestFromString("Harga harus angka > 0")
	ErrPricesRequired    = failure.BadRequestFromString("Minimal 1 harga harus diisi")
	ErrDuplicateImageURL = failure.BadRequestFromString("URL gambar sudah ditambahkan")
)

type Field struct {
	ID          string          `db:"id"`
	VenueID     string          `db:"venue_id"`
	Name        string          `db:"name"`
	Type        string          `db:"type"`
	IsActive    bool            `db:"is_active"`
	LengthMeter float64         `db:"length_meter"`
	WidthMeter  float64         `db:"width_meter"`
	ImageURLs   pq.StringArray  `db:"image_urls"`
	model.Metadata
}

type FieldPrice struct {
	ID        string          `db:"id"`
	FieldID   string          `db:"field_id"`
	DayType   string          `db:"day_type"`
	StartHour int             `db:"start_hour"`
	EndHour   int             `db:"end_hour"`
	Price     decimal.Decimal `db:"price"`
	model.Metadata
}
