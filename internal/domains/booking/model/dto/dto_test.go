package dto_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"arena/internal/domains/booking/model"
	"arena/internal/domains/booking/model/dto"
	gModel "arena/shared/model"
	"arena/shared/timezone"
)

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	paymentID := "payment-1"
	paymentStatus := string(model.PaymentWaitingVerification)
	proofURL := "https://cdn.example.com/proof.jpg"

	booking := model.Booking{
		ID:            "booking-1",
		CustomerID:    "customer-1",
		FieldID:       "field-1",
		StartTime:     now,
		EndTime:       now.Add(2 * time.Hour),
		TotalPrice:    decimal.NewFromInt(250000),
		Status:        model.StatusWaitingVerification,
		CustomerName:  "Afrizal Rahman",
		CustomerEmail: "afrizal@example.com",
		FieldName:     "Lapangan A",
		VenueID:       "venue-1",
		VenueName:     "Arena Senayan",
		PaymentID:     &paymentID,
		PaymentStatus: &paymentStatus,
		ProofURL:      &proofURL,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, "WAITING_VERIFICATION", response.Status)
	assert.Equal(t, "Menunggu Verifikasi", response.StatusLabel)
	assert.Equal(t, model.SeverityWarning, response.StatusSeverity)
	assert.True(t, response.CanVerify)
	assert.True(t, booking.TotalPrice.Equal(response.TotalPrice))

	assert.Equal(t, "customer-1", response.Customer.ID)
	assert.Equal(t, "Afrizal Rahman", response.Customer.Name)
	assert.Equal(t, "afrizal@example.com", response.Customer.Email)

	assert.Equal(t, "field-1", response.Field.ID)
	assert.Equal(t, "Lapangan A", response.Field.Name)
	assert.Equal(t, "venue-1", response.Field.Venue.ID)
	assert.Equal(t, "Arena Senayan", response.Field.Venue.Name)

	assert.NotNil(t, response.Payment)
	assert.Equal(t, paymentID, response.Payment.ID)
	assert.Equal(t, paymentStatus, response.Payment.Status)
	assert.Equal(t, &proofURL, response.Payment.ProofURL)
	assert.Nil(t, response.Payment.VerifiedAt)
}

func TestBookingResponse_FromModelWithoutPayment(t *testing.T) {
	booking := model.Booking{
		ID:     "booking-1",
		Status: model.StatusWaitingPayment,
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Nil(t, response.Payment)
	assert.False(t, response.CanVerify)
	assert.Equal(t, "Menunggu Pembayaran", response.StatusLabel)
}

func TestBookingResponse_FromModelVerifiedPayment(t *testing.T) {
	paymentID := "payment-1"
	paymentStatus := string(model.PaymentApproved)
	verifiedAt := timezone.Now()
	verifiedBy := "admin-1"

	booking := model.Booking{
		ID:            "booking-1",
		Status:        model.StatusConfirmed,
		PaymentID:     &paymentID,
		PaymentStatus: &paymentStatus,
		VerifiedAt:    &verifiedAt,
		VerifiedBy:    &verifiedBy,
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.NotNil(t, response.Payment)
	assert.NotNil(t, response.Payment.VerifiedAt)
	assert.NotEmpty(t, *response.Payment.VerifiedAt)
	assert.Equal(t, &verifiedBy, response.Payment.VerifiedBy)
	assert.False(t, response.CanVerify)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "booking-1", Status: model.StatusWaitingPayment},
		{ID: "booking-2", Status: model.StatusConfirmed},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 25, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
	assert.Equal(t, "booking-2", response.Bookings[1].ID)
}

func TestGetBookingsResponse_FromModelsEmpty(t *testing.T) {
	var response dto.GetBookingsResponse
	response.FromModels([]model.Booking{}, 0, 10)

	assert.NotNil(t, response.Bookings)
	assert.Empty(t, response.Bookings)
	assert.Equal(t, 1, response.TotalPage)
}

func TestVerifyPaymentRequest_ResolvedNote(t *testing.T) {
	approve := true
	reject := false
	customNote := "Transfer sudah dicek manual"
	emptyNote := ""

	tests := []struct {
		name     string
		req      dto.VerifyPaymentRequest
		expected string
	}{
		{
			name:     "approved without note uses default",
			req:      dto.VerifyPaymentRequest{Approved: &approve},
			expected: model.DefaultApproveNote,
		},
		{
			name:     "rejected without note uses default",
			req:      dto.VerifyPaymentRequest{Approved: &reject},
			expected: model.DefaultRejectNote,
		},
		{
			name:     "custom note wins",
			req:      dto.VerifyPaymentRequest{Approved: &approve, Note: &customNote},
			expected: customNote,
		},
		{
			name:     "empty note falls back to default",
			req:      dto.VerifyPaymentRequest{Approved: &reject, Note: &emptyNote},
			expected: model.DefaultRejectNote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.ResolvedNote())
		})
	}
}

func TestStatsResponse_FromModel(t *testing.T) {
	stats := model.Stats{
		TodayBookings:       4,
		ActiveBookings:      12,
		PendingVerification: 3,
		MonthlyRevenue:      decimal.NewFromInt(1500000),
		PrevMonthRevenue:    decimal.NewFromInt(1000000),
	}

	var response dto.StatsResponse
	response.FromModel(stats)

	assert.Equal(t, 4, response.TodayBookings)
	assert.Equal(t, 12, response.ActiveBookings)
	assert.Equal(t, 3, response.PendingVerification)
	assert.True(t, stats.MonthlyRevenue.Equal(response.MonthlyRevenue))

	assert.NotNil(t, response.RevenueGrowth)
	assert.InDelta(t, 50.0, *response.RevenueGrowth, 0.001)
}

func TestStatsResponse_FromModelNegativeGrowth(t *testing.T) {
	stats := model.Stats{
		MonthlyRevenue:   decimal.NewFromInt(500000),
		PrevMonthRevenue: decimal.NewFromInt(1000000),
	}

	var response dto.StatsResponse
	response.FromModel(stats)

	assert.NotNil(t, response.RevenueGrowth)
	assert.InDelta(t, -50.0, *response.RevenueGrowth, 0.001)
}

func TestStatsResponse_FromModelNoPreviousRevenue(t *testing.T) {
	stats := model.Stats{
		MonthlyRevenue:   decimal.NewFromInt(500000),
		PrevMonthRevenue: decimal.Zero,
	}

	var response dto.StatsResponse
	response.FromModel(stats)

	assert.Nil(t, response.RevenueGrowth, "growth should be omitted without a baseline")
}
