package domain

import "time"

// OperationType determines the sign of the balance change.
type OperationType string

// Supported operation types.
const (
	OperationDebit  OperationType = "DEBIT"
	OperationCredit OperationType = "CREDIT"
)

// Operation holds one balance change of an account. Operations are
// append-only and immutable once created.
type Operation struct {
	ID          int64
	AccountID   string
	Type        OperationType
	Amount      string // always positive, sign is carried by Type
	Description string
	CreatedAt   time.Time
}

// OperationDTO is the wire shape of an operation.
type OperationDTO struct {
	ID          int64         `json:"id"`
	AccountID   string        `json:"account_id"`
	Type        OperationType `json:"type"`
	Amount      string        `json:"amount"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
}

// NewOperationDTO maps an operation to the wire shape.
func NewOperationDTO(o Operation) OperationDTO {
	return OperationDTO{
		ID:          o.ID,
		AccountID:   o.AccountID,
		Type:        o.Type,
		Amount:      o.Amount,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
	}
}

// TransferParams is the input data for the transfer transaction.
type TransferParams struct {
	FromAccountID string `json:"from_account_id"`
	ToAccountID   string `json:"to_account_id"`
	Amount        string `json:"amount"` // must be positive
}

// TransferResult is the result of the transfer transaction.
type TransferResult struct {
	FromAccount   Account
	ToAccount     Account
	FromOperation Operation
	ToOperation   Operation
}

// AccountHistory is one page of an account's operation log, ordered by
// operation date descending.
type AccountHistory struct {
	AccountID   string         `json:"account_id"`
	Balance     string         `json:"balance"`
	CurrentPage int32          `json:"current_page"`
	TotalPages  int32          `json:"total_pages"`
	PageSize    int32          `json:"page_size"`
	Operations  []OperationDTO `json:"operations"`
}
