// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"ebank/internal/customerdelivery"
	"ebank/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ApplyOperation(ctx context.Context, accountID string, opType domain.OperationType, amount, description string) (domain.Account, domain.Operation, error)
	Transfer(ctx context.Context, arg domain.TransferParams, fromDescription, toDescription string) (domain.TransferResult, error)
}

// OperationRepo provides the operation log access needed by account service layer.
type OperationRepo interface {
	List(ctx context.Context, accountID string) ([]domain.Operation, error)
	ListPaged(ctx context.Context, accountID string, limit, offset int32) ([]domain.Operation, error)
	Count(ctx context.Context, accountID string) (int64, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo            Repo
	operationRepo   OperationRepo
	customerService customerdelivery.Service
}

// New returns account service struct to manage account business logic.
func New(ar Repo, or OperationRepo, cs customerdelivery.Service) *Service {
	return &Service{
		repo:            ar,
		operationRepo:   or,
		customerService: cs,
	}
}

// CreateCurrent creates a current account for the given customer and returns it.
func (s *Service) CreateCurrent(ctx context.Context, customerID int64, initialBalance, overdraft string) (domain.AccountDTO, error) {
	return s.create(ctx, domain.CreateAccountParams{
		ID:         uuid.NewString(),
		Type:       domain.AccountTypeCurrent,
		Balance:    initialBalance,
		Status:     domain.AccountStatusCreated,
		Overdraft:  overdraft,
		CustomerID: customerID,
	})
}

// CreateSaving creates a savings account for the given customer and returns it.
func (s *Service) CreateSaving(ctx context.Context, customerID int64, initialBalance, interestRate string) (domain.AccountDTO, error) {
	return s.create(ctx, domain.CreateAccountParams{
		ID:           uuid.NewString(),
		Type:         domain.AccountTypeSaving,
		Balance:      initialBalance,
		Status:       domain.AccountStatusCreated,
		InterestRate: interestRate,
		CustomerID:   customerID,
	})
}

func (s *Service) create(ctx context.Context, arg domain.CreateAccountParams) (domain.AccountDTO, error) {
	customer, err := s.customerService.Get(ctx, arg.CustomerID)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	account, err := s.repo.Create(ctx, arg)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	return domain.NewAccountDTO(account, customer), nil
}

// Get returns the account with the given ID together with its owning customer.
func (s *Service) Get(ctx context.Context, id string) (domain.AccountDTO, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	customer, err := s.customerService.Get(ctx, account.CustomerID)
	if err != nil {
		return domain.AccountDTO{}, err
	}

	return domain.NewAccountDTO(account, customer), nil
}

// List returns all accounts.
func (s *Service) List(ctx context.Context) ([]domain.AccountDTO, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := []domain.AccountDTO{}

	for _, account := range accounts {
		customer, err := s.customerService.Get(ctx, account.CustomerID)
		if err != nil {
			return nil, err
		}

		items = append(items, domain.NewAccountDTO(account, customer))
	}

	return items, nil
}

func validAmount(ctx context.Context, amount string) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return amountDecimal, domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return amountDecimal, domain.ErrNegativeAmount
	}

	return amountDecimal, nil
}

// checkBalance fails with ErrInsufficientBalance when the account's balance is
// strictly less than the amount. The overdraft limit of current accounts is
// stored but never consulted here.
func checkBalance(ctx context.Context, account domain.Account, amount decimal.Decimal) error {
	l := zerolog.Ctx(ctx)

	balance, err := decimal.NewFromString(account.Balance)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if balance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}

	return nil
}

// Debit withdraws the given amount from the account and logs a debit operation.
func (s *Service) Debit(ctx context.Context, accountID, amount, description string) (domain.Account, domain.Operation, error) {
	amountDecimal, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, domain.Operation{}, err
	}

	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.Account{}, domain.Operation{}, err
	}

	if err := checkBalance(ctx, account, amountDecimal); err != nil {
		return domain.Account{}, domain.Operation{}, err
	}

	return s.repo.ApplyOperation(ctx, accountID, domain.OperationDebit, amountDecimal.String(), description)
}

// Credit deposits the given amount into the account and logs a credit operation.
func (s *Service) Credit(ctx context.Context, accountID, amount, description string) (domain.Account, domain.Operation, error) {
	amountDecimal, err := validAmount(ctx, amount)
	if err != nil {
		return domain.Account{}, domain.Operation{}, err
	}

	return s.repo.ApplyOperation(ctx, accountID, domain.OperationCredit, amountDecimal.String(), description)
}

// Transfer debits the source account and credits the destination account in a
// single transaction. Both sides reference the counterpart account in their
// operation descriptions.
func (s *Service) Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferResult, error) {
	amountDecimal, err := validAmount(ctx, arg.Amount)
	if err != nil {
		return domain.TransferResult{}, err
	}

	// Canonical decimal form so the repo can derive the balance delta from it
	arg.Amount = amountDecimal.String()

	fromAccount, err := s.repo.Get(ctx, arg.FromAccountID)
	if err != nil {
		return domain.TransferResult{}, err
	}

	if err := checkBalance(ctx, fromAccount, amountDecimal); err != nil {
		return domain.TransferResult{}, err
	}

	if _, err := s.repo.Get(ctx, arg.ToAccountID); err != nil {
		return domain.TransferResult{}, err
	}

	fromDescription := fmt.Sprintf("Transfer to %s", arg.ToAccountID)
	toDescription := fmt.Sprintf("Transfer from %s", arg.FromAccountID)

	return s.repo.Transfer(ctx, arg, fromDescription, toDescription)
}

// History returns the account's full operation log, unordered and unpaginated.
// An unknown account yields an empty log, not an error.
func (s *Service) History(ctx context.Context, accountID string) ([]domain.OperationDTO, error) {
	operations, err := s.operationRepo.List(ctx, accountID)
	if err != nil {
		return nil, err
	}

	items := []domain.OperationDTO{}
	for _, o := range operations {
		items = append(items, domain.NewOperationDTO(o))
	}

	return items, nil
}

const defaultPageSize = 5

// PagedHistory returns one page of the account's operation log ordered by
// operation date descending, together with total-page metadata. A non-positive
// size falls back to the default page size.
func (s *Service) PagedHistory(ctx context.Context, accountID string, page, size int32) (domain.AccountHistory, error) {
	if size <= 0 {
		size = defaultPageSize
	}

	account, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.AccountHistory{}, err
	}

	count, err := s.operationRepo.Count(ctx, accountID)
	if err != nil {
		return domain.AccountHistory{}, err
	}

	operations, err := s.operationRepo.ListPaged(ctx, accountID, size, page*size)
	if err != nil {
		return domain.AccountHistory{}, err
	}

	items := []domain.OperationDTO{}
	for _, o := range operations {
		items = append(items, domain.NewOperationDTO(o))
	}

	totalPages := int32((count + int64(size) - 1) / int64(size))

	return domain.AccountHistory{
		AccountID:   account.ID,
		Balance:     account.Balance,
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		Operations:  items,
	}, nil
}
