package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/customer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)
	query := `INSERT INTO customers (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, suite_number, created_at, updated_at`

	var customerModel CustomerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyModel.Name,
		customerModifyModel.Email,
	).Scan(
		&customerModel.ID,
		&customerModel.Name,
		&customerModel.Email,
		&customerModel.SuiteNumber,
		&customerModel.CreatedAt,
		&customerModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	// опциональные поля
	if customerModifyModel.Name != nil {
		builder = builder.Set("name", customerModifyModel.Name)
	}
	if customerModifyModel.Email != nil {
		builder = builder.Set("email", customerModifyModel.Email)
	}
	if customerModifyModel.SuiteNumber != nil {
		builder = builder.Set("suite_number", customerModifyModel.SuiteNumber)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"ID": customerModifyModel.ID}).
		Suffix("RETURNING id, name, email, suite_number, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Email,
			&customerModel.SuiteNumber,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, customerID int64) (*entities.Customer, error) {
	query := `SELECT id, name, email, suite_number, created_at, updated_at
		FROM customers
		WHERE id = $1`

	return r.getOne(ctx, query, customerID)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, customerID int64) (*entities.Customer, error) {
	query := `SELECT id, name, email, suite_number, created_at, updated_at
		FROM customers
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, customerID)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Customer, error) {
	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, args...).
		Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Email,
			&customerModel.SuiteNumber,
			&customerModel.CreatedAt,
			&customerModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository get error: %w", err)
	}

	return ToDomain(&customerModel), nil
}
