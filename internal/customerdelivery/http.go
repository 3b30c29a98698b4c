// Package customerdelivery manages delivery layer of customers.
package customerdelivery

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

// Service provides service layer interface needed by customer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package customerdelivery
type Service interface {
	Create(ctx context.Context, name, email string) (domain.Customer, error)
	Get(ctx context.Context, id int64) (domain.Customer, error)
	Update(ctx context.Context, id int64, name, email string) (domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, keyword string) ([]domain.Customer, error)
}

// Handler facilitates customer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns customer handler.
func NewHandler(cs Service) *Handler {
	return &Handler{service: cs}
}

type data struct {
	Customer domain.Customer `json:"customer"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type dataCustomers struct {
	Customers []domain.Customer `json:"customers"`
}
type responseCustomers struct {
	Data dataCustomers `json:"data,omitempty"`
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return ""
}

type createRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Create handles http request to create a customer.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	customer, err := h.service.Create(ctx, req.Name, req.Email)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

type uriRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// Get handles http request to get a customer.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	customer, err := h.service.Get(ctx, req.ID)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

type updateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Update handles http request to update a customer.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri uriRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req updateRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	customer, err := h.service.Update(ctx, uri.ID, req.Name, req.Email)
	if err != nil {
		if err == domain.ErrCustomerNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, response{Data: data{customer}})
}

// Delete handles http request to delete a customer.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, req.ID); err != nil {
		switch err {
		case domain.ErrCustomerNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrCustomerHasAccounts:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.Status(http.StatusNoContent)
}

// List handles http request to list all customers.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	customers, err := h.service.List(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseCustomers{Data: dataCustomers{customers}})
}

type searchRequest struct {
	Keyword string `form:"keyword"`
}

// Search handles http request to search customers by name keyword.
func (h *Handler) Search(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req searchRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	customers, err := h.service.Search(ctx, req.Keyword)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, responseCustomers{Data: dataCustomers{customers}})
}
