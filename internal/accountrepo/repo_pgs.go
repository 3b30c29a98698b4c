// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"ebank/internal/domain"
	"ebank/pkg/dbpkg"
	"ebank/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an ongoing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns account RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var (
		a            domain.Account
		overdraft    sql.NullString
		interestRate sql.NullString
	)

	err := row.Scan(
		&a.ID,
		&a.Type,
		&a.Balance,
		&a.Status,
		&overdraft,
		&interestRate,
		&a.CustomerID,
		&a.CreatedAt,
	)
	if err != nil {
		return a, err
	}

	a.Overdraft = overdraft.String
	a.InterestRate = interestRate.String

	return a, nil
}

const createQuery = `
INSERT INTO
    accounts (id, account_type, balance, status, overdraft, interest_rate, customer_id)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, account_type, balance, status, overdraft, interest_rate, customer_id, created_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.ID,
		arg.Type,
		arg.Balance,
		arg.Status,
		nullable(arg.Overdraft),
		nullable(arg.InterestRate),
		arg.CustomerID,
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_customer_id_fkey" {
				return a, domain.ErrCustomerNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, account_type, balance, status, overdraft, interest_rate, customer_id, created_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT
	id, account_type, balance, status, overdraft, interest_rate, customer_id, created_at
FROM accounts
ORDER BY created_at
`

// List returns all accounts.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var (
			a            domain.Account
			overdraft    sql.NullString
			interestRate sql.NullString
		)

		if err := rows.Scan(
			&a.ID,
			&a.Type,
			&a.Balance,
			&a.Status,
			&overdraft,
			&interestRate,
			&a.CustomerID,
			&a.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		a.Overdraft = overdraft.String
		a.InterestRate = interestRate.String

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING id, account_type, balance, status, overdraft, interest_rate, customer_id, created_at
`

// AddBalance changes the account's balance by the given signed amount and
// returns the changed account.
func (r *RepoPGS) AddBalance(ctx context.Context, amount string, id string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, addBalanceQuery, amount, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
