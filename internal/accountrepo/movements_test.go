package accountrepo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"ebank/internal/domain"
)

// Fixed ids so the lexicographic balance-update order is predictable.
const (
	fromID = "11111111-1111-1111-1111-111111111111"
	toID   = "22222222-2222-2222-2222-222222222222"
)

func newMockTxRepo(t *testing.T) (*RepoPGS, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewRepoPGS(db), mock
}

func movementOperationRows(o domain.Operation) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "account_id", "operation_type", "amount", "description", "created_at"}).
		AddRow(o.ID, o.AccountID, o.Type, o.Amount, o.Description, o.CreatedAt)
}

func TestApplyOperation(t *testing.T) {
	now := time.Now().Truncate(time.Second).UTC()

	account := domain.Account{
		ID:         fromID,
		Type:       domain.AccountTypeCurrent,
		Balance:    "800",
		Status:     domain.AccountStatusCreated,
		Overdraft:  "500",
		CustomerID: 1,
		CreatedAt:  now,
	}

	operation := domain.Operation{
		ID:          1,
		AccountID:   fromID,
		Type:        domain.OperationDebit,
		Amount:      "200",
		Description: "rent",
		CreatedAt:   now,
	}

	t.Run("OK", func(t *testing.T) {
		repo, mock := newMockTxRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(fromID, domain.OperationDebit, "200", "rent").
			WillReturnRows(movementOperationRows(operation))
		mock.ExpectQuery(`UPDATE accounts`).
			WithArgs("-200", fromID).
			WillReturnRows(accountRows(account))
		mock.ExpectCommit()

		gotAccount, gotOperation, err := repo.ApplyOperation(context.Background(), fromID, domain.OperationDebit, "200", "rent")
		require.NoError(t, err)
		require.Equal(t, account, gotAccount)
		require.Equal(t, operation, gotOperation)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AccountNotFoundRollsBack", func(t *testing.T) {
		repo, mock := newMockTxRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(fromID, domain.OperationCredit, "200", "salary").
			WillReturnError(&pq.Error{Constraint: "operations_account_id_fkey"})
		mock.ExpectRollback()

		_, _, err := repo.ApplyOperation(context.Background(), fromID, domain.OperationCredit, "200", "salary")
		require.EqualError(t, err, domain.ErrAccountNotFound.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransfer(t *testing.T) {
	now := time.Now().Truncate(time.Second).UTC()

	fromAccount := domain.Account{
		ID: fromID, Type: domain.AccountTypeCurrent, Balance: "200",
		Status: domain.AccountStatusCreated, Overdraft: "500", CustomerID: 1, CreatedAt: now,
	}
	toAccount := domain.Account{
		ID: toID, Type: domain.AccountTypeSaving, Balance: "400",
		Status: domain.AccountStatusCreated, InterestRate: "5.5", CustomerID: 2, CreatedAt: now,
	}

	fromOperation := domain.Operation{
		ID: 1, AccountID: fromID, Type: domain.OperationDebit, Amount: "300",
		Description: "Transfer to " + toID, CreatedAt: now,
	}
	toOperation := domain.Operation{
		ID: 2, AccountID: toID, Type: domain.OperationCredit, Amount: "300",
		Description: "Transfer from " + fromID, CreatedAt: now,
	}

	arg := domain.TransferParams{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        "300",
	}

	t.Run("OK", func(t *testing.T) {
		repo, mock := newMockTxRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(fromID, domain.OperationDebit, "300", fromOperation.Description).
			WillReturnRows(movementOperationRows(fromOperation))
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(toID, domain.OperationCredit, "300", toOperation.Description).
			WillReturnRows(movementOperationRows(toOperation))
		// fromID < toID, so the source balance is updated first
		mock.ExpectQuery(`UPDATE accounts`).
			WithArgs("-300", fromID).
			WillReturnRows(accountRows(fromAccount))
		mock.ExpectQuery(`UPDATE accounts`).
			WithArgs("300", toID).
			WillReturnRows(accountRows(toAccount))
		mock.ExpectCommit()

		result, err := repo.Transfer(context.Background(), arg, fromOperation.Description, toOperation.Description)
		require.NoError(t, err)
		require.Equal(t, fromAccount, result.FromAccount)
		require.Equal(t, toAccount, result.ToAccount)
		require.Equal(t, fromOperation, result.FromOperation)
		require.Equal(t, toOperation, result.ToOperation)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DestinationNotFoundRollsBack", func(t *testing.T) {
		repo, mock := newMockTxRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(fromID, domain.OperationDebit, "300", fromOperation.Description).
			WillReturnRows(movementOperationRows(fromOperation))
		mock.ExpectQuery(`INSERT INTO\s+operations`).
			WithArgs(toID, domain.OperationCredit, "300", toOperation.Description).
			WillReturnError(&pq.Error{Constraint: "operations_account_id_fkey"})
		mock.ExpectRollback()

		_, err := repo.Transfer(context.Background(), arg, fromOperation.Description, toOperation.Description)
		require.EqualError(t, err, domain.ErrAccountNotFound.Error())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
