// Package walletdelivery manages delivery layer of wallets.
package walletdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/web"
)

// Service provides service layer interface needed by wallet delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package walletdelivery
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, currencyCode string) (domain.Wallet, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Wallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	Balance(ctx context.Context, id uuid.UUID) (domain.Money, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Freeze(ctx context.Context, id uuid.UUID) error
	Close(ctx context.Context, id uuid.UUID) error
}

// Handler facilitates wallet delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns wallet handler.
func NewHandler(ws Service) *Handler {
	return &Handler{service: ws}
}

type walletData struct {
	Wallet domain.Wallet `json:"wallet"`
}

type createRequest struct {
	UserID   string `json:"user_id" binding:"required,uuid"`
	Currency string `json:"currency" binding:"required,currency"`
}

// Create handles http request to open a new wallet for a user.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	wallet, err := h.service.Create(ctx, uuid.MustParse(req.UserID), req.Currency)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrWalletCurrencyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrUserNotActive, domain.ErrUserPendingActivation:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: walletData{wallet}})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a wallet.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	wallet, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if err == domain.ErrWalletNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: walletData{wallet}})
}

type listRequest struct {
	UserID string `form:"user_id" binding:"required,uuid"`
}

// ListByUser handles http request to list all wallets of a user.
func (h *Handler) ListByUser(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	wallets, err := h.service.ListByUser(ctx, uuid.MustParse(req.UserID))
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"wallets": wallets}})
}

// Balance handles http request to get the current balance of a wallet.
func (h *Handler) Balance(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	balance, err := h.service.Balance(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if err == domain.ErrWalletNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: gin.H{"balance": balance}})
}

// Activate handles http request to activate a wallet.
func (h *Handler) Activate(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Activate)
}

// Freeze handles http request to freeze a wallet.
func (h *Handler) Freeze(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Freeze)
}

// Close handles http request to disable a wallet.
func (h *Handler) Close(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Close)
}

func (h *Handler) setStatus(gctx *gin.Context, op func(context.Context, uuid.UUID) error) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	id := uuid.MustParse(req.ID)

	if err := op(ctx, id); err != nil {
		switch err {
		case domain.ErrWalletNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrWalletAlreadyActive,
			domain.ErrWalletDisabled,
			domain.ErrWalletFrozen,
			domain.ErrWalletAlreadyFrozen,
			domain.ErrWalletDisabledFreeze,
			domain.ErrWalletAlreadyDisabled,
			domain.ErrUserNotActive:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	wallet, err := h.service.Get(ctx, id)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: walletData{wallet}})
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
