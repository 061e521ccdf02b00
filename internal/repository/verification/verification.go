package verification

import (
	"context"
	"fmt"

	"service/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет одну запись аудита попытки выдачи. Записи никогда не
// изменяются и не удаляются.
func (r *Repository) Append(ctx context.Context, entry entities.VerificationLogEntry) (*entities.VerificationLogEntry, error) {
	query := `INSERT INTO verification_log (package_id, staff_id, suite_entered, code_entered, verified, failure_reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, package_id, staff_id, suite_entered, code_entered, verified, failure_reason, created_at`

	var entryModel VerificationLogEntryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.PackageID,
		entry.StaffID,
		entry.SuiteEntered,
		entry.CodeEntered,
		entry.Verified,
		entry.FailureReason,
	).Scan(
		&entryModel.ID,
		&entryModel.PackageID,
		&entryModel.StaffID,
		&entryModel.SuiteEntered,
		&entryModel.CodeEntered,
		&entryModel.Verified,
		&entryModel.FailureReason,
		&entryModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected verification repository append error: %w", err)
	}

	return ToDomain(&entryModel), nil
}
