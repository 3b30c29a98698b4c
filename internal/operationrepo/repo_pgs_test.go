package operationrepo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"ebank/internal/domain"
	"ebank/pkg/randompkg"
)

func newMockRepo(t *testing.T) (*RepoPGS, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return NewRepoPGS(db), mock
}

func operationRows(operations ...domain.Operation) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "account_id", "operation_type", "amount", "description", "created_at"})
	for _, o := range operations {
		rows.AddRow(o.ID, o.AccountID, o.Type, o.Amount, o.Description, o.CreatedAt)
	}

	return rows
}

func testOperation(id int64, accountID string, opType domain.OperationType) domain.Operation {
	return domain.Operation{
		ID:          id,
		AccountID:   accountID,
		Type:        opType,
		Amount:      randompkg.MoneyAmountBetween(10, 1_000),
		Description: randompkg.String(12),
		CreatedAt:   time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	accountID := randompkg.AccountID()
	want := testOperation(1, accountID, domain.OperationDebit)

	testCases := []struct {
		name          string
		buildStubs    func(mock sqlmock.Sqlmock)
		checkResponse func(got domain.Operation, err error)
	}{
		{
			name: "OK",
			buildStubs: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(createQuery).
					WithArgs(accountID, want.Type, want.Amount, want.Description).
					WillReturnRows(operationRows(want))
			},
			checkResponse: func(got domain.Operation, err error) {
				require.NoError(t, err)
				require.Equal(t, want, got)
			},
		},
		{
			name: "AccountNotFound",
			buildStubs: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(createQuery).
					WithArgs(accountID, want.Type, want.Amount, want.Description).
					WillReturnError(&pq.Error{Constraint: "operations_account_id_fkey"})
			},
			checkResponse: func(got domain.Operation, err error) {
				require.EqualError(t, err, domain.ErrAccountNotFound.Error())
			},
		},
		{
			name: "InvalidAmount",
			buildStubs: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(createQuery).
					WithArgs(accountID, want.Type, want.Amount, want.Description).
					WillReturnError(&pq.Error{Constraint: "operations_amount_check"})
			},
			checkResponse: func(got domain.Operation, err error) {
				require.EqualError(t, err, domain.ErrInvalidAmount.Error())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tc.buildStubs(mock)

			got, err := repo.Create(context.Background(), accountID, want.Type, want.Amount, want.Description)
			tc.checkResponse(got, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestList(t *testing.T) {
	repo, mock := newMockRepo(t)

	accountID := randompkg.AccountID()
	operations := []domain.Operation{
		testOperation(1, accountID, domain.OperationCredit),
		testOperation(2, accountID, domain.OperationDebit),
	}

	mock.ExpectQuery(listQuery).
		WithArgs(accountID).
		WillReturnRows(operationRows(operations...))

	got, err := repo.List(context.Background(), accountID)
	require.NoError(t, err)
	require.Equal(t, operations, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPaged(t *testing.T) {
	repo, mock := newMockRepo(t)

	accountID := randompkg.AccountID()
	operations := []domain.Operation{
		testOperation(7, accountID, domain.OperationDebit),
		testOperation(6, accountID, domain.OperationCredit),
	}

	mock.ExpectQuery(listPagedQuery).
		WithArgs(accountID, int32(5), int32(5)).
		WillReturnRows(operationRows(operations...))

	got, err := repo.ListPaged(context.Background(), accountID, 5, 5)
	require.NoError(t, err)
	require.Equal(t, operations, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	repo, mock := newMockRepo(t)

	accountID := randompkg.AccountID()

	mock.ExpectQuery(countQuery).
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	got, err := repo.Count(context.Background(), accountID)
	require.NoError(t, err)
	require.Equal(t, int64(12), got)
	require.NoError(t, mock.ExpectationsWereMet())
}
