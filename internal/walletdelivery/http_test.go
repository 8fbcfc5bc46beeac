package walletdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			os.Exit(1)
		}
	}

	os.Exit(m.Run())
}

func randomWallet(t *testing.T, status domain.WalletStatus) domain.Wallet {
	t.Helper()

	usd, err := currencypkg.FromCode(currencypkg.USD)
	require.NoError(t, err)

	wallet, err := domain.NewWallet(uuid.New(), usd)
	require.NoError(t, err)

	wallet.Status = status

	return wallet
}

func newServer(t *testing.T) (*gin.Engine, *MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := NewHandler(service)

	server := gin.New()
	server.POST("/wallets", handler.Create)
	server.GET("/wallets", handler.ListByUser)
	server.GET("/wallets/:id", handler.Get)
	server.GET("/wallets/:id/balance", handler.Balance)
	server.POST("/wallets/:id/activate", handler.Activate)
	server.POST("/wallets/:id/freeze", handler.Freeze)
	server.POST("/wallets/:id/close", handler.Close)

	return server, service
}

func TestCreate(t *testing.T) {
	wallet := randomWallet(t, domain.WalletPendingActivation)

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name:        "OK",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": currencypkg.USD},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(wallet.UserID), gomock.Eq(currencypkg.USD)).
					Times(1).
					Return(wallet, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "UnsupportedCurrency",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": "XYZ"},
			buildStubs: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "DuplicateCurrency",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": currencypkg.USD},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Wallet{}, domain.ErrWalletCurrencyExists)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:        "UserNotFound",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": currencypkg.USD},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Wallet{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:        "OwnerNotActive",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": currencypkg.USD},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Wallet{}, domain.ErrUserNotActive)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name:        "InternalError",
			requestBody: gin.H{"user_id": wallet.UserID.String(), "currency": currencypkg.USD},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Wallet{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service := newServer(t)
			tc.buildStubs(service)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/wallets", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestGet(t *testing.T) {
	wallet := randomWallet(t, domain.WalletActive)

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			id:   wallet.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			id:   uuid.NewString(),
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).
					Times(1).Return(domain.Wallet{}, domain.ErrWalletNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			id:   "not-a-uuid",
			buildStubs: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/wallets/"+tc.id, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestListByUser(t *testing.T) {
	userID := uuid.New()
	wallets := []domain.Wallet{randomWallet(t, domain.WalletActive), randomWallet(t, domain.WalletFrozen)}

	server, service := newServer(t)
	service.EXPECT().ListByUser(gomock.Any(), gomock.Eq(userID)).Times(1).Return(wallets, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/wallets?user_id="+userID.String(), nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestBalance(t *testing.T) {
	wallet := randomWallet(t, domain.WalletActive)

	usd, err := currencypkg.FromCode(currencypkg.USD)
	require.NoError(t, err)

	balance, err := domain.NewMoney(decimal.NewFromInt(250), usd)
	require.NoError(t, err)

	server, service := newServer(t)
	service.EXPECT().Balance(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(balance, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/wallets/"+wallet.ID.String()+"/balance", nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetStatus(t *testing.T) {
	wallet := randomWallet(t, domain.WalletActive)

	testCases := []struct {
		name           string
		path           string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "ActivateOK",
			path: "/wallets/" + wallet.ID.String() + "/activate",
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(nil)
				service.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "ActivateAlreadyActive",
			path: "/wallets/" + wallet.ID.String() + "/activate",
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Eq(wallet.ID)).
					Times(1).Return(domain.ErrWalletAlreadyActive)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "FreezeDisabled",
			path: "/wallets/" + wallet.ID.String() + "/freeze",
			buildStubs: func(service *MockService) {
				service.EXPECT().Freeze(gomock.Any(), gomock.Eq(wallet.ID)).
					Times(1).Return(domain.ErrWalletDisabledFreeze)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "CloseNotFound",
			path: "/wallets/" + wallet.ID.String() + "/close",
			buildStubs: func(service *MockService) {
				service.EXPECT().Close(gomock.Any(), gomock.Eq(wallet.ID)).
					Times(1).Return(domain.ErrWalletNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service := newServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, tc.path, nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}
