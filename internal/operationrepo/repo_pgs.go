// Package operationrepo manages repository layer of account operations.
package operationrepo

import (
	"context"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"ebank/internal/domain"
	"ebank/pkg/dbpkg"
	"ebank/pkg/errorspkg"
)

// RepoPGS facilitates operation repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns operation RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    operations (account_id, operation_type, amount, description)
VALUES
    ($1, $2, $3, $4)
RETURNING id, account_id, operation_type, amount, description, created_at
`

// Create appends the operation to the account's log and then returns it.
func (r *RepoPGS) Create(ctx context.Context, accountID string, opType domain.OperationType, amount, description string) (domain.Operation, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, accountID, opType, amount, description)

	var o domain.Operation

	err := row.Scan(
		&o.ID,
		&o.AccountID,
		&o.Type,
		&o.Amount,
		&o.Description,
		&o.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "operations_account_id_fkey":
				return o, domain.ErrAccountNotFound
			case "operations_amount_check":
				return o, domain.ErrInvalidAmount
			}
		}

		return o, errorspkg.ErrInternal
	}

	return o, nil
}

const listQuery = `
SELECT id, account_id, operation_type, amount, description, created_at FROM operations
WHERE account_id = $1
`

// List returns the account's full operation log in no particular order.
func (r *RepoPGS) List(ctx context.Context, accountID string) ([]domain.Operation, error) {
	return r.query(ctx, listQuery, accountID)
}

const listPagedQuery = `
SELECT id, account_id, operation_type, amount, description, created_at FROM operations
WHERE account_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// ListPaged returns one page of the account's operation log ordered by
// operation date descending.
func (r *RepoPGS) ListPaged(ctx context.Context, accountID string, limit, offset int32) ([]domain.Operation, error) {
	return r.query(ctx, listPagedQuery, accountID, limit, offset)
}

const countQuery = `
SELECT count(*) FROM operations
WHERE account_id = $1
`

// Count returns the total number of operations logged for the account.
func (r *RepoPGS) Count(ctx context.Context, accountID string) (int64, error) {
	l := zerolog.Ctx(ctx)

	var count int64

	if err := r.db.QueryRowContext(ctx, countQuery, accountID).Scan(&count); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

func (r *RepoPGS) query(ctx context.Context, query string, args ...interface{}) ([]domain.Operation, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Operation{}

	for rows.Next() {
		var o domain.Operation
		if err := rows.Scan(
			&o.ID,
			&o.AccountID,
			&o.Type,
			&o.Amount,
			&o.Description,
			&o.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, o)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
