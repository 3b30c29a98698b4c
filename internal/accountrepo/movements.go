package accountrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"ebank/internal/domain"
	"ebank/internal/operationrepo"
	"ebank/pkg/errorspkg"
)

func sign(opType domain.OperationType, amount string) string {
	if opType == domain.OperationDebit {
		return "-" + amount
	}

	return amount
}

// ApplyOperation appends an operation to the account's log and applies the
// corresponding balance change within a single db transaction.
func (r *RepoPGS) ApplyOperation(ctx context.Context, accountID string, opType domain.OperationType, amount, description string) (domain.Account, domain.Operation, error) {
	l := zerolog.Ctx(ctx)

	var (
		account   domain.Account
		operation domain.Operation
	)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return account, operation, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	operationRepo := operationrepo.NewRepoPGS(tx)
	accountRepo := NewTxRepoPGS(tx)

	operation, err = operationRepo.Create(ctx, accountID, opType, amount, description)
	if err != nil {
		return account, operation, err
	}

	account, err = accountRepo.AddBalance(ctx, sign(opType, amount), accountID)
	if err != nil {
		return account, operation, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return account, operation, errorspkg.ErrInternal
	}

	return account, operation, nil
}

// Transfer moves money between two accounts.
//
// It appends a debit operation to the source, a credit operation to the
// destination, and applies both balance changes within a single db
// transaction, so a failure on either side rolls back the whole movement.
func (r *RepoPGS) Transfer(ctx context.Context, arg domain.TransferParams, fromDescription, toDescription string) (domain.TransferResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.TransferResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	operationRepo := operationrepo.NewRepoPGS(tx)
	accountRepo := NewTxRepoPGS(tx)

	result.FromOperation, err = operationRepo.Create(ctx, arg.FromAccountID, domain.OperationDebit, arg.Amount, fromDescription)
	if err != nil {
		return result, err
	}

	result.ToOperation, err = operationRepo.Create(ctx, arg.ToAccountID, domain.OperationCredit, arg.Amount, toDescription)
	if err != nil {
		return result, err
	}

	// To avoid deadlocks execute balance updates in consistent id order
	if arg.FromAccountID < arg.ToAccountID {
		result.FromAccount, err = accountRepo.AddBalance(ctx, "-"+arg.Amount, arg.FromAccountID)
		if err == nil {
			result.ToAccount, err = accountRepo.AddBalance(ctx, arg.Amount, arg.ToAccountID)
		}
	} else {
		result.ToAccount, err = accountRepo.AddBalance(ctx, arg.Amount, arg.ToAccountID)
		if err == nil {
			result.FromAccount, err = accountRepo.AddBalance(ctx, "-"+arg.Amount, arg.FromAccountID)
		}
	}

	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	return result, nil
}
