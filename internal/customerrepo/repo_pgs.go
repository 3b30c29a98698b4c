// Package customerrepo manages repository layer of customers.
package customerrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"ebank/internal/domain"
	"ebank/pkg/dbpkg"
	"ebank/pkg/errorspkg"
)

// RepoPGS facilitates customer repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns customer RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const createQuery = `
INSERT INTO
    customers (name, email)
VALUES
    ($1, $2)
RETURNING id, name, email, created_at
`

// Create creates the customer and then returns it.
func (r *RepoPGS) Create(ctx context.Context, name, email string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, name, email)

	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const getQuery = `
SELECT
	id, name, email, created_at
FROM customers
WHERE id = $1
`

// Get returns the customer with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCustomerNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const updateQuery = `
UPDATE customers
SET name = $2, email = $3
WHERE id = $1
RETURNING id, name, email, created_at
`

// Update overwrites the customer's name and email and returns the updated
// customer. It never inserts: an absent id fails with ErrCustomerNotFound.
func (r *RepoPGS) Update(ctx context.Context, id int64, name, email string) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, id, name, email)

	var c domain.Customer

	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return c, domain.ErrCustomerNotFound
		}

		return c, errorspkg.ErrInternal
	}

	return c, nil
}

const deleteQuery = `
DELETE FROM customers
WHERE id = $1
`

// Delete removes the customer with the given id. Deleting a customer that
// still owns accounts fails with ErrCustomerHasAccounts.
func (r *RepoPGS) Delete(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, deleteQuery, id)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_customer_id_fkey" {
				return domain.ErrCustomerHasAccounts
			}
		}

		return errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if n == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

const listQuery = `
SELECT
	id, name, email, created_at
FROM customers
ORDER BY id
`

// List returns all customers.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Customer, error) {
	return r.query(ctx, listQuery)
}

const searchQuery = `
SELECT
	id, name, email, created_at
FROM customers
WHERE name ILIKE '%' || $1 || '%'
ORDER BY id
`

// Search returns the customers whose name contains the given keyword.
func (r *RepoPGS) Search(ctx context.Context, keyword string) ([]domain.Customer, error) {
	return r.query(ctx, searchQuery, keyword)
}

func (r *RepoPGS) query(ctx context.Context, query string, args ...interface{}) ([]domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Customer{}

	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, c)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
