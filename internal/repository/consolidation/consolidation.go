package consolidation

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/consolidation"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetPackageByPackageIDForUpdate читает привязочное состояние посылки
// под блокировкой строки. Вызывается только внутри транзакции.
func (r *Repository) GetPackageByPackageIDForUpdate(ctx context.Context, packageID string) (*entities.Package, error) {
	query := `SELECT id, package_id, customer_id, status, shipment_id
		FROM packages
		WHERE package_id = $1
		FOR UPDATE`

	var packageModel PackageLinkStateDB
	err := r.querier.QueryRow(ctx, query, packageID).
		Scan(
			&packageModel.ID,
			&packageModel.PackageID,
			&packageModel.CustomerID,
			&packageModel.Status,
			&packageModel.ShipmentID,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, consolidation.ErrPackageNotFound
		}

		return nil, fmt.Errorf("unexpected consolidation repository get error: %w", err)
	}

	return ToDomainPackage(&packageModel), nil
}

func (r *Repository) InsertLink(ctx context.Context, packageID int64, shipmentID int64) (*entities.PackageShipmentLink, error) {
	query := `INSERT INTO package_shipment_links (package_id, shipment_id)
		VALUES ($1, $2)
		RETURNING id, package_id, shipment_id, linked_at`

	var linkModel PackageShipmentLinkDB
	err := r.querier.QueryRow(ctx, query, packageID, shipmentID).
		Scan(
			&linkModel.ID,
			&linkModel.PackageID,
			&linkModel.ShipmentID,
			&linkModel.LinkedAt,
		)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, consolidation.ErrConflict
		}
		return nil, fmt.Errorf("unexpected consolidation repository insertlink error: %w", err)
	}

	return ToDomainLink(&linkModel), nil
}

func (r *Repository) SetPackageShipment(ctx context.Context, packageID int64, shipmentID int64) error {
	query := `UPDATE packages
		SET shipment_id = $2, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, packageID, shipmentID)
	if err != nil {
		return fmt.Errorf("unexpected consolidation repository setpackageshipment error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return consolidation.ErrPackageNotFound
	}

	return nil
}
