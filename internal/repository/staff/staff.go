package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/service/deliveryauth"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, staffID int64) (*entities.Staff, error) {
	query := `SELECT id, name, email, created_at
		FROM staff
		WHERE id = $1`

	var staffModel StaffDB
	err := r.querier.QueryRow(ctx, query, staffID).
		Scan(
			&staffModel.ID,
			&staffModel.Name,
			&staffModel.Email,
			&staffModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryauth.ErrActorNotFound
		}

		return nil, fmt.Errorf("unexpected staff repository getbyid error: %w", err)
	}

	return ToDomain(&staffModel), nil
}
