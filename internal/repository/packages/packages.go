package packages

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/packages"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const packageColumns = `id, package_id, tracking_number, customer_id, status, description, vendor,
	weight_grams, declared_value_cents, shipment_id, delivery_auth_code,
	auth_code_generated_at, auth_code_used_at, auth_code_used_by, received_at,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)
	query := `INSERT INTO packages (package_id, tracking_number, customer_id, status, description, vendor, weight_grams, declared_value_cents)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), COALESCE($7, 0), COALESCE($8, 0))
		RETURNING ` + packageColumns

	var packageModel PackageDB
	err := r.querier.QueryRow(
		ctx,
		query,
		packageModifyModel.PackageID,
		packageModifyModel.TrackingNumber,
		packageModifyModel.CustomerID,
		packageModifyModel.Status,
		packageModifyModel.Description,
		packageModifyModel.Vendor,
		packageModifyModel.WeightGrams,
		packageModifyModel.DeclaredValueCents,
	).Scan(scanTargets(&packageModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, packages.ErrConflict
		}
		return nil, fmt.Errorf("unexpected packages repository create error: %w", err)
	}

	return ToDomain(&packageModel), nil
}

func (r *Repository) Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error) {
	packageModifyModel := FromDomainModify(&packageModifyEntity)

	builder := qb.
		Update("packages")

	// опциональные поля
	if packageModifyModel.Status != nil {
		builder = builder.Set("status", packageModifyModel.Status)
	}
	if packageModifyModel.Description != nil {
		builder = builder.Set("description", packageModifyModel.Description)
	}
	if packageModifyModel.Vendor != nil {
		builder = builder.Set("vendor", packageModifyModel.Vendor)
	}
	if packageModifyModel.WeightGrams != nil {
		builder = builder.Set("weight_grams", packageModifyModel.WeightGrams)
	}
	if packageModifyModel.DeclaredValueCents != nil {
		builder = builder.Set("declared_value_cents", packageModifyModel.DeclaredValueCents)
	}
	if packageModifyModel.ShipmentID != nil {
		builder = builder.Set("shipment_id", packageModifyModel.ShipmentID)
	}
	if packageModifyModel.DeliveryAuthCode != nil {
		builder = builder.Set("delivery_auth_code", packageModifyModel.DeliveryAuthCode)
	}
	if packageModifyModel.AuthCodeGeneratedAt != nil {
		builder = builder.Set("auth_code_generated_at", packageModifyModel.AuthCodeGeneratedAt)
	}
	if packageModifyModel.AuthCodeUsedAt != nil {
		builder = builder.Set("auth_code_used_at", packageModifyModel.AuthCodeUsedAt)
	}
	if packageModifyModel.AuthCodeUsedBy != nil {
		builder = builder.Set("auth_code_used_by", packageModifyModel.AuthCodeUsedBy)
	}
	if packageModifyModel.ReceivedAt != nil {
		builder = builder.Set("received_at", packageModifyModel.ReceivedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"ID": packageModifyModel.ID}).
		Suffix("RETURNING " + packageColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected packages repository update error: %w", err)
	}

	var packageModel PackageDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(scanTargets(&packageModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packages.ErrPackageNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, packages.ErrConflict
		}

		return nil, fmt.Errorf("unexpected packages repository update error: %w", err)
	}

	return ToDomain(&packageModel), nil
}

func (r *Repository) GetByPackageID(ctx context.Context, packageID string) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE package_id = $1`

	return r.getOne(ctx, query, packageID)
}

// GetByPackageIDForUpdate читает посылку под блокировкой строки.
// Вызывается только внутри транзакции.
func (r *Repository) GetByPackageIDForUpdate(ctx context.Context, packageID string) (*entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE package_id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, packageID)
}

func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) ([]entities.Package, error) {
	query := `SELECT ` + packageColumns + `
		FROM packages
		WHERE customer_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected packages repository getbycustomer error: %w", err)
	}
	defer rows.Close()

	packageModels := make([]PackageDB, 0, 8)
	for rows.Next() {
		var packageModel PackageDB
		err := rows.Scan(scanTargets(&packageModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected packages repository getbycustomer error: %w", err)
		}
		packageModels = append(packageModels, packageModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected packages repository getbycustomer error: %w", err)
	}

	return ToDomainList(packageModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Package, error) {
	var packageModel PackageDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(scanTargets(&packageModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, packages.ErrPackageNotFound
		}

		return nil, fmt.Errorf("unexpected packages repository get error: %w", err)
	}

	return ToDomain(&packageModel), nil
}

func scanTargets(packageModel *PackageDB) []interface{} {
	return []interface{}{
		&packageModel.ID,
		&packageModel.PackageID,
		&packageModel.TrackingNumber,
		&packageModel.CustomerID,
		&packageModel.Status,
		&packageModel.Description,
		&packageModel.Vendor,
		&packageModel.WeightGrams,
		&packageModel.DeclaredValueCents,
		&packageModel.ShipmentID,
		&packageModel.DeliveryAuthCode,
		&packageModel.AuthCodeGeneratedAt,
		&packageModel.AuthCodeUsedAt,
		&packageModel.AuthCodeUsedBy,
		&packageModel.ReceivedAt,
		&packageModel.CreatedAt,
		&packageModel.UpdatedAt,
	}
}
