// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	TopUp(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, description string) (domain.Transaction, error)
	MakePayment(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, description string) (domain.Transaction, error)
	Refund(ctx context.Context, transactionID uuid.UUID) (domain.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, page, size int32) (web.PagedResult[domain.Transaction], error)
	ListRecent(ctx context.Context, walletID uuid.UUID, limit int32) ([]domain.Transaction, error)
	ListRefundsByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
	RecordGatewayLog(ctx context.Context, transactionID uuid.UUID, gatewayName, requestPayload, responsePayload, statusCode string) (domain.PaymentGatewayLog, error)
	ListGatewayLogs(ctx context.Context, transactionID uuid.UUID) ([]domain.PaymentGatewayLog, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transaction handler.
func NewHandler(ts Service) *Handler {
	return &Handler{service: ts}
}

type transactionData struct {
	Transaction domain.Transaction `json:"transaction"`
}

type moveMoneyRequest struct {
	WalletID    string `json:"wallet_id" binding:"required,uuid"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"max=200"`
}

// TopUp handles http request to credit funds to a wallet.
func (h *Handler) TopUp(gctx *gin.Context) {
	h.moveMoney(gctx, h.service.TopUp)
}

// MakePayment handles http request to debit funds from a wallet.
func (h *Handler) MakePayment(gctx *gin.Context) {
	h.moveMoney(gctx, h.service.MakePayment)
}

func (h *Handler) moveMoney(gctx *gin.Context, op func(context.Context, uuid.UUID, decimal.Decimal, string) (domain.Transaction, error)) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req moveMoneyRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrNonPositiveAmount))

		return
	}

	tx, err := op(ctx, uuid.MustParse(req.WalletID), amount, req.Description)
	if err != nil {
		switch err {
		case domain.ErrWalletNotFound, domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrNonPositiveAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrInsufficientBalance,
			domain.ErrWalletNotActive,
			domain.ErrPaymentWalletNotActive,
			domain.ErrUserNotActive:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionData{tx}})
}

type idRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Refund handles http request to reverse a completed transaction.
func (h *Handler) Refund(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	tx, err := h.service.Refund(ctx, uuid.MustParse(req.ID))
	if err != nil {
		switch err {
		case domain.ErrTransactionNotFound, domain.ErrWalletNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrTransactionNotCompleted,
			domain.ErrRefundWindowExpired,
			domain.ErrUserNotActive:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionData{tx}})
}

// Get handles http request to get a transaction.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	tx, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactionData{tx}})
}

type listRequest struct {
	WalletID string `form:"wallet_id" binding:"required,uuid"`
	Page     int32  `form:"page" binding:"required,min=1"`
	Size     int32  `form:"size" binding:"required,min=1,max=100"`
}

// ListByWallet handles http request to list wallet transactions page by page.
func (h *Handler) ListByWallet(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	transactions, err := h.service.ListByWallet(ctx, uuid.MustParse(req.WalletID), req.Page, req.Size)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: transactions})
}

type listRecentRequest struct {
	WalletID string `form:"wallet_id" binding:"required,uuid"`
	Limit    int32  `form:"limit" binding:"required,min=1,max=100"`
}

// ListRecent handles http request to list the latest wallet transactions.
func (h *Handler) ListRecent(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRecentRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	transactions, err := h.service.ListRecent(ctx, uuid.MustParse(req.WalletID), req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"transactions": transactions}})
}

type listRefundsRequest struct {
	WalletID string `form:"wallet_id" binding:"required,uuid"`
}

// ListRefunds handles http request to list reversed wallet transactions.
func (h *Handler) ListRefunds(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRefundsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	transactions, err := h.service.ListRefundsByWallet(ctx, uuid.MustParse(req.WalletID))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"transactions": transactions}})
}

type recordGatewayLogRequest struct {
	GatewayName     string `json:"gateway_name" binding:"required"`
	RequestPayload  string `json:"request_payload"`
	ResponsePayload string `json:"response_payload"`
	StatusCode      string `json:"status_code"`
}

// RecordGatewayLog handles http request to attach a gateway exchange record to a transaction.
func (h *Handler) RecordGatewayLog(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri idRequest
	if err := gctx.ShouldBindUri(&uri); err != nil {
		handleBindError(gctx, err)
		return
	}

	var req recordGatewayLogRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	log, err := h.service.RecordGatewayLog(ctx, uuid.MustParse(uri.ID),
		req.GatewayName, req.RequestPayload, req.ResponsePayload, req.StatusCode)
	if err != nil {
		if err == domain.ErrTransactionNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"gateway_log": log}})
}

// ListGatewayLogs handles http request to list gateway exchange records of a transaction.
func (h *Handler) ListGatewayLogs(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req idRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	logs, err := h.service.ListGatewayLogs(ctx, uuid.MustParse(req.ID))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"gateway_logs": logs}})
}

func handleBindError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())
	l.Info().Err(err).Send()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		gctx.JSON(http.StatusBadRequest, web.Response{Error: field.Field() + web.GetErrorMsg(field)})

		return
	}

	gctx.JSON(http.StatusBadRequest, web.Error(err))
}
