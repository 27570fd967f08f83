package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/internal/domains/field/model"
	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/logger"
	gRepo "arena/shared/repository"
)

type Field interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Field, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Field, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetPrices(ctx context.Context, filter gDto.FilterGroup) ([]model.FieldPrice, error)
	CreateWithPrices(ctx context.Context, field model.Field, prices []model.FieldPrice) error
	UpdateWithPrices(ctx context.Context, updatedFields map[string]any, fieldID string, prices []model.FieldPrice) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Field]
	priceRepo gRepo.Repository[model.FieldPrice]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Field {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Field](model.EntityName, model.TableName, model.FieldID, db, otel),
		priceRepo:  gRepo.NewRepository[model.FieldPrice](model.PriceEntityName, model.PriceTableName, model.PriceFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetPrices(ctx context.Context, filter gDto.FilterGroup) ([]model.FieldPrice, error) {
	return repo.priceRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.PriceFieldStartHour, SortDir: gDto.SortDirAsc}, filter) //nolint:wrapcheck
}

// CreateWithPrices inserts the field and its price rows in one transaction.
func (repo *repositoryImpl) CreateWithPrices(ctx context.Context, field model.Field, prices []model.FieldPrice) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".field.CreateWithPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (field): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	if err = repo.InsertTx(ctx, tx, field); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.priceRepo.InsertBulkTx(ctx, tx, prices); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (field): %w", err)
	}

	return nil
}

// UpdateWithPrices updates the field row and replaces its price rows in one
// transaction.
func (repo *repositoryImpl) UpdateWithPrices(ctx context.Context, updatedFields map[string]any, fieldID string, prices []model.FieldPrice) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".field.UpdateWithPrices")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (field): %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	fieldFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    fieldID,
				Table:    model.TableName,
			},
		},
	}

	if err = repo.UpdateTx(ctx, tx, updatedFields, fieldFilter); err != nil {
		return err //nolint:wrapcheck
	}

	priceFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.PriceFieldFieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    fieldID,
				Table:    model.PriceTableName,
			},
		},
	}

	if err = repo.priceRepo.DeleteTx(ctx, tx, priceFilter); err != nil {
		return err //nolint:wrapcheck
	}

	if err = repo.priceRepo.InsertBulkTx(ctx, tx, prices); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (field): %w", err)
	}

	return nil
}
