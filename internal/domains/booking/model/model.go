package model

import (
	"time"

	"arena/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldFieldID    = "field_id"
	FieldStartTime  = "start_time"
	FieldEndTime    = "end_time"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

const (
	PaymentTableName  = "payments"
	PaymentEntityName = "payment"

	PaymentFieldID         = "id"
	PaymentFieldBookingID  = "booking_id"
	PaymentFieldProofURL   = "proof_url"
	PaymentFieldStatus     = "status"
	PaymentFieldNote       = "note"
	PaymentFieldVerifiedAt = "verified_at"
	PaymentFieldVerifiedBy = "verified_by"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusWaitingPayment      Status = "WAITING_PAYMENT"
	StatusWaitingVerification Status = "WAITING_VERIFICATION"
	StatusConfirmed           Status = "CONFIRMED"
	StatusPaid                Status = "PAID"
	StatusCompleted           Status = "COMPLETED"
	StatusRejected            Status = "REJECTED"
	StatusCancelled           Status = "CANCELLED"
)

// Statuses lists every known booking status.
var Statuses = []Status{
	StatusWaitingPayment,
	StatusWaitingVerification,
	StatusConfirmed,
	StatusPaid,
	StatusCompleted,
	StatusRejected,
	StatusCancelled,
}

const (
	SeverityWarning = "warning"
	SeveritySuccess = "success"
	SeverityError   = "error"
	SeverityInfo    = "info"
)

// Label returns the user-facing name of the status. PAID and unknown values
// fall back to the raw value so the UI never shows an empty badge.
func (s Status) Label() string {
	switch s {
	case StatusWaitingPayment:
		return "Menunggu Pembayaran"
	case StatusWaitingVerification:
		return "Menunggu Verifikasi"
	case StatusConfirmed:
		return "Dikonfirmasi"
	case StatusCompleted:
		return "Selesai"
	case StatusRejected:
		return "Ditolak"
	case StatusCancelled:
		return "Dibatalkan"
	default:
		return string(s)
	}
}

// Severity returns the badge severity for the status. PAID carries no badge
// styling of its own and maps to info.
func (s Status) Severity() string {
	switch s {
	case StatusWaitingPayment, StatusWaitingVerification:
		return SeverityWarning
	case StatusConfirmed, StatusCompleted:
		return SeveritySuccess
	case StatusRejected, StatusCancelled:
		return SeverityError
	default:
		return SeverityInfo
	}
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsValid reports whether the status is a known lifecycle state.
func (s Status) IsValid() bool {
	switch s {
	case StatusWaitingPayment, StatusWaitingVerification, StatusConfirmed,
		StatusPaid, StatusCompleted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo encodes the lifecycle transition table.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusWaitingPayment:
		return next == StatusWaitingVerification || next == StatusCancelled
	case StatusWaitingVerification:
		return next == StatusConfirmed || next == StatusPaid ||
			next == StatusRejected || next == StatusCancelled
	case StatusConfirmed, StatusPaid:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// PaymentStatus is the payment verification state.
type PaymentStatus string

const (
	PaymentWaitingPayment      PaymentStatus = "WAITING_PAYMENT"
	PaymentWaitingVerification PaymentStatus = "WAITING_VERIFICATION"
	PaymentApproved            PaymentStatus = "APPROVED"
	PaymentRejected            PaymentStatus = "REJECTED"
)

const (
	DefaultApproveNote = "Pembayaran diverifikasi"
	DefaultRejectNote  = "Pembayaran ditolak oleh admin"
)

// Booking is the admin view of a booking: the row itself plus the joined
// customer, field, venue, and payment columns.
type Booking struct {
	ID         string          `db:"id"`
	CustomerID string          `db:"customer_id"`
	FieldID    string          `db:"field_id"`
	StartTime  time.Time       `db:"start_time"`
	EndTime    time.Time       `db:"end_time"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Status     Status          `db:"status"`

	CustomerName  string     `db:"customer_name" table:"users"     column:"full_name"`
	CustomerEmail string     `db:"customer_email" table:"users"    column:"email"`
	FieldName     string     `db:"field_name" table:"fields"       column:"name"`
	VenueID       string     `db:"field_venue_id" table:"fields"   column:"venue_id"`
	VenueName     string     `db:"venue_name" table:"venues"       column:"name"`
	PaymentID     *string    `db:"payment_id" table:"payments"     column:"id"`
	PaymentStatus *string    `db:"payment_status" table:"payments" column:"status"`
	ProofURL      *string    `db:"proof_url" table:"payments"`
	PaymentNote   *string    `db:"payment_note" table:"payments"   column:"note"`
	VerifiedAt    *time.Time `db:"verified_at" table:"payments"`
	VerifiedBy    *string    `db:"verified_by" table:"payments"`

	model.Metadata
}

func (b Booking) GetJoinQuery() string {
	return `JOIN users ON users.id = bookings.customer_id
		JOIN fields ON fields.id = bookings.field_id
		JOIN venues ON venues.id = fields.venue_id
		LEFT JOIN payments ON payments.booking_id = bookings.id`
}

// EligibleForVerification reports whether the verify action applies: the
// booking awaits verification, a payment exists in the same state, and a
// proof has been uploaded.
func (b Booking) EligibleForVerification() bool {
	return b.Status == StatusWaitingVerification &&
		b.PaymentID != nil &&
		b.PaymentStatus != nil && PaymentStatus(*b.PaymentStatus) == PaymentWaitingVerification &&
		b.ProofURL != nil && *b.ProofURL != ""
}

// VerificationUpdate carries the resolved outcome of a verify action into the
// conditional booking+payment update.
type VerificationUpdate struct {
	BookingID     string
	BookingStatus Status
	PaymentStatus PaymentStatus
	Note          string
	VerifiedAt    time.Time
	VerifiedBy    string
}

// StatusEvent is published to the booking events topic whenever a booking
// changes status, keyed by booking id so events for one booking stay ordered.
type StatusEvent struct {
	BookingID      string    `json:"booking_id"`
	PreviousStatus Status    `json:"previous_status"`
	NewStatus      Status    `json:"new_status"`
	Actor          string    `json:"actor"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Stats is the derived dashboard aggregate; it is never persisted.
type Stats struct {
	TodayBookings       int             `db:"today_bookings"`
	ActiveBookings      int             `db:"active_bookings"`
	PendingVerification int             `db:"pending_verification"`
	MonthlyRevenue      decimal.Decimal `db:"monthly_revenue"`
	PrevMonthRevenue    decimal.Decimal `db:"prev_month_revenue"`
}
