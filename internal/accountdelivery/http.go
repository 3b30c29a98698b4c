// Package accountdelivery manages delivery layer of accounts.
package accountdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ebank/internal/domain"
	"ebank/pkg/errorspkg"
	"ebank/pkg/web"
)

// Service provides service layer interface needed by account delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package accountdelivery
type Service interface {
	CreateCurrent(ctx context.Context, customerID int64, initialBalance, overdraft string) (domain.AccountDTO, error)
	CreateSaving(ctx context.Context, customerID int64, initialBalance, interestRate string) (domain.AccountDTO, error)
	Get(ctx context.Context, id string) (domain.AccountDTO, error)
	List(ctx context.Context) ([]domain.AccountDTO, error)
	Debit(ctx context.Context, accountID, amount, description string) (domain.Account, domain.Operation, error)
	Credit(ctx context.Context, accountID, amount, description string) (domain.Account, domain.Operation, error)
	Transfer(ctx context.Context, arg domain.TransferParams) (domain.TransferResult, error)
	History(ctx context.Context, accountID string) ([]domain.OperationDTO, error)
	PagedHistory(ctx context.Context, accountID string, page, size int32) (domain.AccountHistory, error)
}

// Handler facilitates account delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns account handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type data struct {
	Account domain.AccountDTO `json:"account"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return ""
}

func errStatus(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrAccountNotFound, domain.ErrCustomerNotFound:
		gctx.JSON(http.StatusNotFound, web.Error(err))
		return
	case domain.ErrInsufficientBalance, domain.ErrInvalidAmount, domain.ErrNegativeAmount:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

type createCurrentRequest struct {
	CustomerID     int64  `json:"customer_id" binding:"required,min=1"`
	InitialBalance string `json:"initial_balance" binding:"required"`
	Overdraft      string `json:"overdraft" binding:"required"`
}

// CreateCurrent handles http request to create a current account.
func (h *Handler) CreateCurrent(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createCurrentRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := h.service.CreateCurrent(ctx, req.CustomerID, req.InitialBalance, req.Overdraft)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type createSavingRequest struct {
	CustomerID     int64  `json:"customer_id" binding:"required,min=1"`
	InitialBalance string `json:"initial_balance" binding:"required"`
	InterestRate   string `json:"interest_rate" binding:"required"`
}

// CreateSaving handles http request to create a savings account.
func (h *Handler) CreateSaving(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createSavingRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := h.service.CreateSaving(ctx, req.CustomerID, req.InitialBalance, req.InterestRate)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get an account.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, err := h.service.Get(ctx, req.ID)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{account}})
}

type dataAccounts struct {
	Accounts []domain.AccountDTO `json:"accounts"`
}
type responseAccounts struct {
	Data dataAccounts `json:"data,omitempty"`
}

// List handles http request to list all accounts.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	accounts, err := h.service.List(ctx)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseAccounts{Data: dataAccounts{accounts}})
}

type movementRequest struct {
	AccountID   string `json:"account_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type movementData struct {
	AccountID string              `json:"account_id"`
	Balance   string              `json:"balance"`
	Operation domain.OperationDTO `json:"operation"`
}
type responseMovement struct {
	Data movementData `json:"data,omitempty"`
}

func (h *Handler) movement(gctx *gin.Context, apply func(ctx context.Context, accountID, amount, description string) (domain.Account, domain.Operation, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req movementRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	account, operation, err := apply(ctx, req.AccountID, req.Amount, req.Description)
	if err != nil {
		l.Info().Err(err).Send()
		errStatus(gctx, err)

		return
	}

	res := responseMovement{
		Data: movementData{
			AccountID: account.ID,
			Balance:   account.Balance,
			Operation: domain.NewOperationDTO(operation),
		},
	}

	gctx.JSON(http.StatusOK, res)
}

// Debit handles http request to withdraw money from an account.
func (h *Handler) Debit(gctx *gin.Context) {
	h.movement(gctx, h.service.Debit)
}

// Credit handles http request to deposit money into an account.
func (h *Handler) Credit(gctx *gin.Context) {
	h.movement(gctx, h.service.Credit)
}

type transferRequest struct {
	FromAccountID string `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string `json:"to_account_id" binding:"required,uuid"`
	Amount        string `json:"amount" binding:"required"`
}

type transferData struct {
	FromAccountID string              `json:"from_account_id"`
	FromBalance   string              `json:"from_balance"`
	ToAccountID   string              `json:"to_account_id"`
	ToBalance     string              `json:"to_balance"`
	FromOperation domain.OperationDTO `json:"from_operation"`
	ToOperation   domain.OperationDTO `json:"to_operation"`
}
type responseTransfer struct {
	Data transferData `json:"data,omitempty"`
}

// Transfer handles http request to transfer money between two accounts.
func (h *Handler) Transfer(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req transferRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	arg := domain.TransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount,
	}

	result, err := h.service.Transfer(ctx, arg)
	if err != nil {
		l.Info().Err(err).Send()
		errStatus(gctx, err)

		return
	}

	res := responseTransfer{
		Data: transferData{
			FromAccountID: result.FromAccount.ID,
			FromBalance:   result.FromAccount.Balance,
			ToAccountID:   result.ToAccount.ID,
			ToBalance:     result.ToAccount.Balance,
			FromOperation: domain.NewOperationDTO(result.FromOperation),
			ToOperation:   domain.NewOperationDTO(result.ToOperation),
		},
	}

	gctx.JSON(http.StatusOK, res)
}

type dataOperations struct {
	Operations []domain.OperationDTO `json:"operations"`
}
type responseOperations struct {
	Data dataOperations `json:"data,omitempty"`
}

// History handles http request to get an account's full operation history.
func (h *Handler) History(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	operations, err := h.service.History(ctx, req.ID)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseOperations{Data: dataOperations{operations}})
}

type pagedHistoryRequest struct {
	Page int32 `form:"page,default=0" binding:"min=0"`
	Size int32 `form:"size,default=5" binding:"min=1,max=100"`
}

type dataHistory struct {
	History domain.AccountHistory `json:"history"`
}
type responseHistory struct {
	Data dataHistory `json:"data,omitempty"`
}

// PagedHistory handles http request to get one page of an account's operation
// history, ordered by operation date descending.
func (h *Handler) PagedHistory(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req pagedHistoryRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	history, err := h.service.PagedHistory(ctx, uri.ID, req.Page, req.Size)
	if err != nil {
		errStatus(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseHistory{Data: dataHistory{history}})
}
