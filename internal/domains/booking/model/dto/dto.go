package dto

import (
	"arena/internal/domains/booking/model"
	"arena/shared"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/timezone"

	"github.com/shopspring/decimal"
)

type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VenueResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FieldResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Venue VenueResponse `json:"venue"`
}

type PaymentResponse struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	ProofURL   *string `json:"proof_url,omitempty"`
	Note       *string `json:"note,omitempty"`
	VerifiedAt *string `json:"verified_at,omitempty"`
	VerifiedBy *string `json:"verified_by,omitempty"`
}

type BookingResponse struct {
	ID             string           `json:"id"`
	StartTime      string           `json:"start_time"`
	EndTime        string           `json:"end_time"`
	TotalPrice     decimal.Decimal  `json:"total_price"`
	Status         string           `json:"status"`
	StatusLabel    string           `json:"status_label"`
	StatusSeverity string           `json:"status_severity"`
	CanVerify      bool             `json:"can_verify"`
	Customer       CustomerResponse `json:"customer"`
	Field          FieldResponse    `json:"field"`
	Payment        *PaymentResponse `json:"payment,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.StartTime = timezone.Format(mod.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(mod.EndTime, constant.DateFormat)
	r.TotalPrice = mod.TotalPrice
	r.Status = string(mod.Status)
	r.StatusLabel = mod.Status.Label()
	r.StatusSeverity = mod.Status.Severity()
	r.CanVerify = mod.EligibleForVerification()

	r.Customer = CustomerResponse{
		ID:    mod.CustomerID,
		Name:  mod.CustomerName,
		Email: mod.CustomerEmail,
	}

	r.Field = FieldResponse{
		ID:   mod.FieldID,
		Name: mod.FieldName,
		Venue: VenueResponse{
			ID:   mod.VenueID,
			Name: mod.VenueName,
		},
	}

	if mod.PaymentID != nil {
		payment := PaymentResponse{
			ID:         *mod.PaymentID,
			ProofURL:   mod.ProofURL,
			Note:       mod.PaymentNote,
			VerifiedBy: mod.VerifiedBy,
		}
		if mod.VerifiedAt != nil {
			verifiedAt := timezone.Format(*mod.VerifiedAt, constant.DateFormat)
			payment.VerifiedAt = &verifiedAt
		}
		if mod.PaymentStatus != nil {
			payment.Status = *mod.PaymentStatus
		}

		r.Payment = &payment
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type VerifyPaymentRequest struct {
	Approved *bool   `json:"approved" validate:"required"`
	Note     *string `json:"note,omitempty"`
}

// ResolvedNote picks the admin's note or the default wording for the outcome.
func (r *VerifyPaymentRequest) ResolvedNote() string {
	if r.Note != nil && *r.Note != "" {
		return *r.Note
	}

	if r.Approved != nil && *r.Approved {
		return model.DefaultApproveNote
	}

	return model.DefaultRejectNote
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type StatsResponse struct {
	TodayBookings       int             `json:"today_bookings"`
	ActiveBookings      int             `json:"active_bookings"`
	PendingVerification int             `json:"pending_verification"`
	MonthlyRevenue      decimal.Decimal `json:"monthly_revenue"`
	RevenueGrowth       *float64        `json:"revenue_growth,omitempty"`
}

// FromModel copies the aggregate and derives the growth percentage against
// the previous month. Growth is omitted when there is no previous revenue to
// compare against.
func (r *StatsResponse) FromModel(stats model.Stats) {
	r.TodayBookings = stats.TodayBookings
	r.ActiveBookings = stats.ActiveBookings
	r.PendingVerification = stats.PendingVerification
	r.MonthlyRevenue = stats.MonthlyRevenue

	if stats.PrevMonthRevenue.IsPositive() {
		growth := stats.MonthlyRevenue.
			Sub(stats.PrevMonthRevenue).
			Div(stats.PrevMonthRevenue).
			Mul(decimal.NewFromInt(100)).
			InexactFloat64()
		r.RevenueGrowth = &growth
	}
}
