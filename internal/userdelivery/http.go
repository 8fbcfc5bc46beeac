// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/web"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Register(ctx context.Context, fullName, email, phoneNumber, password string) (domain.User, error)
	CheckPassword(ctx context.Context, email, password string) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, page, size int32) (web.PagedResult[domain.User], error)
	Activate(ctx context.Context, id uuid.UUID) error
	Freeze(ctx context.Context, id uuid.UUID) error
	Disable(ctx context.Context, id uuid.UUID) error
	Close(ctx context.Context, id uuid.UUID) error
}

// SessionMaker facilitates session creation.
type SessionMaker interface {
	Create(ctx context.Context, arg domain.CreateSessionParams) (string, time.Time, domain.Session, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service      Service
	sessionMaker SessionMaker
}

// NewHandler returns user handler.
func NewHandler(us Service, sm SessionMaker) *Handler {
	return &Handler{
		service:      us,
		sessionMaker: sm,
	}
}

type userData struct {
	User domain.User `json:"user"`
}

type registerRequest struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
}

// Register handles http request to register a user and open a session.
func (h *Handler) Register(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req registerRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	user, err := h.service.Register(ctx, req.FullName, req.Email, req.PhoneNumber, req.Password)
	if err != nil {
		switch err {
		case domain.ErrEmailAlreadyExists, domain.ErrPhoneAlreadyExists:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	arg := domain.CreateSessionParams{
		UserID:    user.ID,
		UserAgent: gctx.Request.UserAgent(),
		ClientIP:  gctx.ClientIP(),
	}

	accessToken, accessTokenExpiresAt, session, err := h.sessionMaker.Create(ctx, arg)
	if err != nil {
		l.Warn().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessTokenExpiresAt,
		RefreshToken:          session.RefreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		Data:                  userData{user},
	}

	gctx.JSON(http.StatusOK, res)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles http login request and returns user and session data.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	user, err := h.service.CheckPassword(ctx, req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrWrongPassword:
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	arg := domain.CreateSessionParams{
		UserID:    user.ID,
		UserAgent: gctx.Request.UserAgent(),
		ClientIP:  gctx.ClientIP(),
	}

	accessToken, accessTokenExpiresAt, session, err := h.sessionMaker.Create(ctx, arg)
	if err != nil {
		l.Warn().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := web.Response{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessTokenExpiresAt,
		RefreshToken:          session.RefreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		Data:                  userData{user},
	}

	gctx.JSON(http.StatusOK, res)
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get a user.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	user, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		if err == domain.ErrUserNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: userData{user}})
}

type listRequest struct {
	Page int32 `form:"page" binding:"required,min=1"`
	Size int32 `form:"size" binding:"required,min=1,max=100"`
}

// List handles http request to list users page by page.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		handleBindError(gctx, err)
		return
	}

	users, err := h.service.List(ctx, req.Page, req.Size)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: users})
}

// Activate handles http request to activate a user.
func (h *Handler) Activate(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Activate)
}

// Freeze handles http request to freeze a user.
func (h *Handler) Freeze(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Freeze)
}

// Disable handles http request to disable a user.
func (h *Handler) Disable(gctx *gin.Context) {
	h.setStatus(gctx, h.service.Disable)
}

// Close handles http request to close a user.
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
		case domain.ErrUserNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case domain.ErrUserAlreadyActive,
			domain.ErrUserClosedReactivation,
			domain.ErrUserNotActive,
			domain.ErrUserPendingActivation,
			domain.ErrUserAlreadyClosed:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	user, err := h.service.Get(ctx, id)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: userData{user}})
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
