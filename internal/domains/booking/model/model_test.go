package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arena/internal/domains/booking/model"
)

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status   model.Status
		expected string
	}{
		{model.StatusWaitingPayment, "Menunggu Pembayaran"},
		{model.StatusWaitingVerification, "Menunggu Verifikasi"},
		{model.StatusConfirmed, "Dikonfirmasi"},
		{model.StatusPaid, "PAID"},
		{model.StatusCompleted, "Selesai"},
		{model.StatusRejected, "Ditolak"},
		{model.StatusCancelled, "Dibatalkan"},
		{model.Status("SOMETHING_ELSE"), "SOMETHING_ELSE"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Label())
		})
	}
}

func TestStatus_Severity(t *testing.T) {
	tests := []struct {
		status   model.Status
		expected string
	}{
		{model.StatusWaitingPayment, model.SeverityWarning},
		{model.StatusWaitingVerification, model.SeverityWarning},
		{model.StatusConfirmed, model.SeveritySuccess},
		{model.StatusPaid, model.SeverityInfo},
		{model.StatusCompleted, model.SeveritySuccess},
		{model.StatusRejected, model.SeverityError},
		{model.StatusCancelled, model.SeverityError},
		{model.Status("UNKNOWN"), model.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Severity())
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []model.Status{
		model.StatusCompleted,
		model.StatusRejected,
		model.StatusCancelled,
	}
	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), "expected %s to be terminal", status)
	}

	active := []model.Status{
		model.StatusWaitingPayment,
		model.StatusWaitingVerification,
		model.StatusConfirmed,
		model.StatusPaid,
	}
	for _, status := range active {
		assert.False(t, status.IsTerminal(), "expected %s to not be terminal", status)
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, status := range model.Statuses {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, model.Status("").IsValid())
	assert.False(t, model.Status("PENDING").IsValid())
	assert.False(t, model.Status("waiting_payment").IsValid())
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusWaitingPayment:      {model.StatusWaitingVerification, model.StatusCancelled},
		model.StatusWaitingVerification: {model.StatusConfirmed, model.StatusPaid, model.StatusRejected, model.StatusCancelled},
		model.StatusConfirmed:           {model.StatusCompleted, model.StatusCancelled},
		model.StatusPaid:                {model.StatusCompleted, model.StatusCancelled},
		model.StatusCompleted:           {},
		model.StatusRejected:            {},
		model.StatusCancelled:           {},
	}

	for from, targets := range allowed {
		allowedSet := make(map[model.Status]bool, len(targets))
		for _, to := range targets {
			allowedSet[to] = true
		}

		for _, to := range model.Statuses {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestBooking_EligibleForVerification(t *testing.T) {
	paymentID := "payment-id"
	waiting := string(model.PaymentWaitingVerification)
	approved := string(model.PaymentApproved)
	proofURL := "https://cdn.example.com/proof.jpg"
	emptyProof := ""

	tests := []struct {
		name     string
		booking  model.Booking
		expected bool
	}{
		{
			name: "eligible booking",
			booking: model.Booking{
				Status:        model.StatusWaitingVerification,
				PaymentID:     &paymentID,
				PaymentStatus: &waiting,
				ProofURL:      &proofURL,
			},
			expected: true,
		},
		{
			name: "wrong booking status",
			booking: model.Booking{
				Status:        model.StatusConfirmed,
				PaymentID:     &paymentID,
				PaymentStatus: &waiting,
				ProofURL:      &proofURL,
			},
			expected: false,
		},
		{
			name: "no payment row",
			booking: model.Booking{
				Status: model.StatusWaitingVerification,
			},
			expected: false,
		},
		{
			name: "payment already approved",
			booking: model.Booking{
				Status:        model.StatusWaitingVerification,
				PaymentID:     &paymentID,
				PaymentStatus: &approved,
				ProofURL:      &proofURL,
			},
			expected: false,
		},
		{
			name: "missing proof",
			booking: model.Booking{
				Status:        model.StatusWaitingVerification,
				PaymentID:     &paymentID,
				PaymentStatus: &waiting,
			},
			expected: false,
		},
		{
			name: "empty proof",
			booking: model.Booking{
				Status:        model.StatusWaitingVerification,
				PaymentID:     &paymentID,
				PaymentStatus: &waiting,
				ProofURL:      &emptyProof,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.booking.EligibleForVerification())
		})
	}
}

func TestBooking_GetJoinQuery(t *testing.T) {
	query := model.Booking{}.GetJoinQuery()

	assert.Contains(t, query, "JOIN users ON users.id = bookings.customer_id")
	assert.Contains(t, query, "JOIN fields ON fields.id = bookings.field_id")
	assert.Contains(t, query, "JOIN venues ON venues.id = fields.venue_id")
	assert.Contains(t, query, "LEFT JOIN payments ON payments.booking_id = bookings.id")
}

func TestDefaultNotes(t *testing.T) {
	assert.Equal(t, "Pembayaran diverifikasi", model.DefaultApproveNote)
	assert.Equal(t, "Pembayaran ditolak oleh admin", model.DefaultRejectNote)
}

func TestVerificationUpdateFields(t *testing.T) {
	now := time.Now()
	update := model.VerificationUpdate{
		BookingID:     "booking-id",
		BookingStatus: model.StatusConfirmed,
		PaymentStatus: model.PaymentApproved,
		Note:          model.DefaultApproveNote,
		VerifiedAt:    now,
		VerifiedBy:    "admin-id",
	}

	assert.Equal(t, model.StatusConfirmed, update.BookingStatus)
	assert.Equal(t, model.PaymentApproved, update.PaymentStatus)
	assert.Equal(t, now, update.VerifiedAt)
}
