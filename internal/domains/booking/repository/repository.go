package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/booking/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/logger"
	gRepo "arena/shared/repository"
	"arena/shared/timezone"
)

const statsQuery = `
SELECT
	COUNT(*) FILTER (WHERE start_time::date = CURRENT_DATE) AS today_bookings,
	COUNT(*) FILTER (WHERE status IN ('CONFIRMED', 'PAID')) AS active_bookings,
	COUNT(*) FILTER (WHERE status = 'WAITING_VERIFICATION') AS pending_verification,
	COALESCE(SUM(total_price) FILTER (
		WHERE status IN ('CONFIRMED', 'PAID', 'COMPLETED')
		AND date_trunc('month', start_time) = date_trunc('month', CURRENT_DATE)
	), 0) AS monthly_revenue,
	COALESCE(SUM(total_price) FILTER (
		WHERE status IN ('CONFIRMED', 'PAID', 'COMPLETED')
		AND date_trunc('month', start_time) = date_trunc('month', CURRENT_DATE - INTERVAL '1 month')
	), 0) AS prev_month_revenue
FROM bookings`

const verifyBookingQuery = `
UPDATE bookings
SET status = :status, modified_at = :modified_at, modified_by = :modified_by
WHERE id = :id AND status = :expected_status`

const verifyPaymentQuery = `
UPDATE payments
SET status = :status, note = :note, verified_at = :verified_at, verified_by = :verified_by,
	modified_at = :modified_at, modified_by = :modified_by
WHERE booking_id = :booking_id`

const updateStatusQuery = `
UPDATE bookings
SET status = :status, modified_at = :modified_at, modified_by = :modified_by
WHERE id = :id AND status = :expected_status`

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetStats(ctx context.Context) (model.Stats, error)
	ResolveVerification(ctx context.Context, req model.VerificationUpdate) (int64, error)
	UpdateStatusConditional(ctx context.Context, id string, expected, next model.Status, username string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetStats computes the dashboard aggregate in a single pass over bookings.
func (repo *repositoryImpl) GetStats(ctx context.Context) (stats model.Stats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, statsQuery)

	if err = repo.db.Read.GetContext(ctx, &stats, statsQuery); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get booking stats: %w", err)
	}

	return stats, nil
}

// ResolveVerification moves the booking and its payment to the verification
// outcome in one transaction. The booking update is conditional on the
// booking still awaiting verification; when another admin got there first the
// update touches zero rows and the whole transaction is abandoned, payment
// included. The number of booking rows updated is returned.
func (repo *repositoryImpl) ResolveVerification(ctx context.Context, req model.VerificationUpdate) (rows int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ResolveVerification")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to begin transaction (booking): %w", err)
	}

	defer func() {
		if err != nil || rows == 0 {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	scope.SetAttribute(constant.OtelQueryAttributeKey, verifyBookingQuery)

	result, err := tx.NamedExecContext(ctx, verifyBookingQuery, map[string]any{
		"id":              req.BookingID,
		"status":          req.BookingStatus,
		"expected_status": model.StatusWaitingVerification,
		"modified_at":     req.VerifiedAt,
		"modified_by":     req.VerifiedBy,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if rows == 0 {
		return 0, nil
	}

	if _, err = tx.NamedExecContext(ctx, verifyPaymentQuery, map[string]any{
		"booking_id":  req.BookingID,
		"status":      req.PaymentStatus,
		"note":        req.Note,
		"verified_at": req.VerifiedAt,
		"verified_by": req.VerifiedBy,
		"modified_at": req.VerifiedAt,
		"modified_by": req.VerifiedBy,
	}); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to update payment status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to commit transaction (booking): %w", err)
	}

	return rows, nil
}

// UpdateStatusConditional applies a status transition only when the booking
// is still in the expected state, and returns the number of rows updated.
func (repo *repositoryImpl) UpdateStatusConditional(ctx context.Context, id string, expected, next model.Status, username string) (rows int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatusConditional")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, updateStatusQuery)

	result, err := repo.db.Write.NamedExecContext(ctx, updateStatusQuery, map[string]any{
		"id":              id,
		"status":          next,
		"expected_status": expected,
		"modified_at":     timezone.Now(),
		"modified_by":     username,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err = result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rows, nil
}
