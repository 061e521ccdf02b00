package shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const shipmentColumns = `id, tracking_number, customer_id, status, total_weight_grams,
	total_declared_value_cents, estimated_delivery, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)
	query := `INSERT INTO shipments (tracking_number, customer_id, status, total_weight_grams, total_declared_value_cents, estimated_delivery)
		VALUES ($1, $2, $3, COALESCE($4, 0), COALESCE($5, 0), $6)
		RETURNING ` + shipmentColumns

	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyModel.TrackingNumber,
		shipmentModifyModel.CustomerID,
		shipmentModifyModel.Status,
		shipmentModifyModel.TotalWeightGrams,
		shipmentModifyModel.TotalDeclaredValueCents,
		shipmentModifyModel.EstimatedDelivery,
	).Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyModel := FromDomainModify(&shipmentModifyEntity)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyModel.Status != nil {
		builder = builder.Set("status", shipmentModifyModel.Status)
	}
	if shipmentModifyModel.TotalWeightGrams != nil {
		builder = builder.Set("total_weight_grams", shipmentModifyModel.TotalWeightGrams)
	}
	if shipmentModifyModel.TotalDeclaredValueCents != nil {
		builder = builder.Set("total_declared_value_cents", shipmentModifyModel.TotalDeclaredValueCents)
	}
	if shipmentModifyModel.EstimatedDelivery != nil {
		builder = builder.Set("estimated_delivery", shipmentModifyModel.EstimatedDelivery)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"ID": shipmentModifyModel.ID}).
		Suffix("RETURNING " + shipmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrConflict
		}

		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_number = $1`

	return r.getOne(ctx, query, trackingNumber)
}

func (r *Repository) GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE tracking_number = $1
		FOR UPDATE`

	return r.getOne(ctx, query, trackingNumber)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	query := `SELECT ` + shipmentColumns + `
		FROM shipments
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, shipmentID)
}

// MemberStatuses возвращает срез статусов всех посылок отправления.
// Читается внутри транзакции сверки, после блокировки строки отправления.
func (r *Repository) MemberStatuses(ctx context.Context, shipmentID int64) ([]entities.PackageStatusType, error) {
	query := `SELECT status
		FROM packages
		WHERE shipment_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository memberstatuses error: %w", err)
	}
	defer rows.Close()

	statuses := make([]entities.PackageStatusType, 0, 8)
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository memberstatuses error: %w", err)
		}
		statuses = append(statuses, entities.PackageStatusType(status))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository memberstatuses error: %w", err)
	}

	return statuses, nil
}

func (r *Repository) MemberPackages(ctx context.Context, shipmentID int64) ([]entities.Package, error) {
	query := `SELECT id, package_id, tracking_number, customer_id, status, description, vendor,
			weight_grams, declared_value_cents, received_at, created_at, updated_at
		FROM packages
		WHERE shipment_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository memberpackages error: %w", err)
	}
	defer rows.Close()

	memberModels := make([]MemberPackageDB, 0, 8)
	for rows.Next() {
		var memberModel MemberPackageDB
		err := rows.Scan(
			&memberModel.ID,
			&memberModel.PackageID,
			&memberModel.TrackingNumber,
			&memberModel.CustomerID,
			&memberModel.Status,
			&memberModel.Description,
			&memberModel.Vendor,
			&memberModel.WeightGrams,
			&memberModel.DeclaredValueCents,
			&memberModel.ReceivedAt,
			&memberModel.CreatedAt,
			&memberModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository memberpackages error: %w", err)
		}
		memberModels = append(memberModels, memberModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository memberpackages error: %w", err)
	}

	return MemberToDomainList(memberModels), nil
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Shipment, error) {
	var shipmentModel ShipmentDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(scanTargets(&shipmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}

		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

func scanTargets(shipmentModel *ShipmentDB) []interface{} {
	return []interface{}{
		&shipmentModel.ID,
		&shipmentModel.TrackingNumber,
		&shipmentModel.CustomerID,
		&shipmentModel.Status,
		&shipmentModel.TotalWeightGrams,
		&shipmentModel.TotalDeclaredValueCents,
		&shipmentModel.EstimatedDelivery,
		&shipmentModel.CreatedAt,
		&shipmentModel.UpdatedAt,
	}
}
