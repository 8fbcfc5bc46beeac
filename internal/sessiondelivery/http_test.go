package sessiondelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/randompkg"
	"github.com/go-petr/pet-wallet/pkg/tokenpkg"
	"github.com/go-petr/pet-wallet/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestRenewAccessToken(t *testing.T) {
	refreshToken := randompkg.String(40)

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: gin.H{"refresh_token": refreshToken},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return(randompkg.String(40), time.Now().Add(time.Minute), nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "MissingRefreshToken",
			requestBody: gin.H{},
			buildStubs: func(service *MockService) {
				service.EXPECT().RenewAccessToken(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "ExpiredToken",
			requestBody: gin.H{"refresh_token": refreshToken},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, tokenpkg.ErrExpiredToken)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      tokenpkg.ErrExpiredToken.Error(),
		},
		{
			name:        "BlockedSession",
			requestBody: gin.H{"refresh_token": refreshToken},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, domain.ErrBlockedSession)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrBlockedSession.Error(),
		},
		{
			name:        "ExpiredSession",
			requestBody: gin.H{"refresh_token": refreshToken},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, domain.ErrExpiredSession)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      domain.ErrExpiredSession.Error(),
		},
		{
			name:        "InternalError",
			requestBody: gin.H{"refresh_token": refreshToken},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					RenewAccessToken(gomock.Any(), gomock.Eq(refreshToken)).
					Times(1).
					Return("", time.Time{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			tc.buildStubs(service)

			handler := NewHandler(service)
			server := gin.New()
			server.POST("/sessions/renew", handler.RenewAccessToken)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/sessions/renew", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)

			if tc.wantError != "" {
				var res web.Response
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))
				require.Equal(t, tc.wantError, res.Error)
			}
		})
	}
}
