package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
)

// AccountType discriminates the account variants sharing one table.
type AccountType string

// Supported account types.
const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSaving  AccountType = "SAVING"
)

// AccountStatus is the lifecycle status of an account. It is informational:
// no transition rules are enforced on it.
type AccountStatus string

// Supported account statuses.
const (
	AccountStatusCreated   AccountStatus = "CREATED"
	AccountStatusActivated AccountStatus = "ACTIVATED"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account holds bank account data for both variants. Overdraft is set only
// for CURRENT accounts and InterestRate only for SAVING accounts; the unused
// attribute is empty.
type Account struct {
	ID           string
	Type         AccountType
	Balance      string
	Status       AccountStatus
	Overdraft    string
	InterestRate string
	CustomerID   int64
	CreatedAt    time.Time
}

// CreateAccountParams is the input data to persist a new account.
type CreateAccountParams struct {
	ID           string
	Type         AccountType
	Balance      string
	Status       AccountStatus
	Overdraft    string
	InterestRate string
	CustomerID   int64
}

// AccountDTO is the wire shape of an account. It exposes only the forward
// direction of the customer relation.
type AccountDTO struct {
	ID           string        `json:"id"`
	Type         AccountType   `json:"type"`
	Balance      string        `json:"balance"`
	Status       AccountStatus `json:"status"`
	Overdraft    string        `json:"overdraft,omitempty"`
	InterestRate string        `json:"interest_rate,omitempty"`
	CustomerID   int64         `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	CreatedAt    time.Time     `json:"created_at"`
}

// NewAccountDTO maps an account and its owning customer to the wire shape.
func NewAccountDTO(a Account, c Customer) AccountDTO {
	return AccountDTO{
		ID:           a.ID,
		Type:         a.Type,
		Balance:      a.Balance,
		Status:       a.Status,
		Overdraft:    a.Overdraft,
		InterestRate: a.InterestRate,
		CustomerID:   c.ID,
		CustomerName: c.Name,
		CreatedAt:    a.CreatedAt,
	}
}
