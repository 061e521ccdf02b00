package identifier

import (
	"context"
	"fmt"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// MaxSuiteSequence возвращает наибольший занятый порядковый номер среди
// suite-номеров формата VC-NNN, 0 если номеров еще нет.
func (r *Repository) MaxSuiteSequence(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(SUBSTRING(suite_number FROM 4) AS INTEGER)), 0)
		FROM customers
		WHERE suite_number IS NOT NULL`

	var maxSequence int
	err := r.querier.QueryRow(ctx, query).Scan(&maxSequence)
	if err != nil {
		return 0, fmt.Errorf("unexpected identifier repository maxsuitesequence error: %w", err)
	}

	return maxSequence, nil
}

func (r *Repository) SuiteNumberExists(ctx context.Context, suiteNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE suite_number = $1)`

	return r.exists(ctx, query, suiteNumber)
}

// MaxPackageSequence возвращает наибольший занятый порядковый номер
// среди package_id текущего года (формат PKGYYNNNN).
func (r *Repository) MaxPackageSequence(ctx context.Context, year int) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(RIGHT(package_id, 4) AS INTEGER)), 0)
		FROM packages
		WHERE SUBSTRING(package_id FROM 4 FOR 2) = $1`

	return r.maxSequence(ctx, query, fmt.Sprintf("%02d", year))
}

func (r *Repository) PackageIDExists(ctx context.Context, packageID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM packages WHERE package_id = $1)`

	return r.exists(ctx, query, packageID)
}

func (r *Repository) MaxTrackingSequence(ctx context.Context, year int) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(RIGHT(tracking_number, 4) AS INTEGER)), 0)
		FROM packages
		WHERE SUBSTRING(tracking_number FROM 4 FOR 2) = $1`

	return r.maxSequence(ctx, query, fmt.Sprintf("%02d", year))
}

func (r *Repository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM packages WHERE tracking_number = $1)`

	return r.exists(ctx, query, trackingNumber)
}

func (r *Repository) MaxShipmentTrackingSequence(ctx context.Context, year int) (int, error) {
	query := `SELECT COALESCE(MAX(CAST(RIGHT(tracking_number, 4) AS INTEGER)), 0)
		FROM shipments
		WHERE SUBSTRING(tracking_number FROM 4 FOR 2) = $1`

	return r.maxSequence(ctx, query, fmt.Sprintf("%02d", year))
}

func (r *Repository) ShipmentTrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM shipments WHERE tracking_number = $1)`

	return r.exists(ctx, query, trackingNumber)
}

func (r *Repository) maxSequence(ctx context.Context, query string, yearSuffix string) (int, error) {
	var maxSequence int
	err := r.querier.QueryRow(ctx, query, yearSuffix).Scan(&maxSequence)
	if err != nil {
		return 0, fmt.Errorf("unexpected identifier repository maxsequence error: %w", err)
	}

	return maxSequence, nil
}

func (r *Repository) exists(ctx context.Context, query string, candidate string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, query, candidate).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected identifier repository exists error: %w", err)
	}

	return exists, nil
}
