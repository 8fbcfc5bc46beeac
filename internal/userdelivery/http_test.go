package userdelivery

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
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func randomUser(t *testing.T) domain.User {
	t.Helper()

	user, err := domain.NewUser(randompkg.Owner(), randompkg.Email(), randompkg.PhoneNumber(), randompkg.String(32))
	require.NoError(t, err)

	user.Status = domain.UserActive

	return user
}

func newServer(t *testing.T) (*gin.Engine, *MockService, *MockSessionMaker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	sessionMaker := NewMockSessionMaker(ctrl)
	handler := NewHandler(service, sessionMaker)

	server := gin.New()
	server.POST("/users", handler.Register)
	server.POST("/users/login", handler.Login)
	server.GET("/users/:id", handler.Get)
	server.GET("/users", handler.List)
	server.POST("/users/:id/activate", handler.Activate)
	server.POST("/users/:id/freeze", handler.Freeze)
	server.POST("/users/:id/disable", handler.Disable)
	server.POST("/users/:id/close", handler.Close)

	return server, service, sessionMaker
}

func TestRegister(t *testing.T) {
	user := randomUser(t)
	password := randompkg.String(10)

	testCases := []struct {
		name           string
		requestBody    gin.H
		buildStubs     func(service *MockService, sessionMaker *MockSessionMaker)
		wantStatusCode int
	}{
		{
			name: "OK",
			requestBody: gin.H{
				"full_name":    user.FullName,
				"email":        user.Email,
				"phone_number": user.PhoneNumber,
				"password":     password,
			},
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Eq(user.FullName), gomock.Eq(user.Email), gomock.Eq(user.PhoneNumber), gomock.Eq(password)).
					Times(1).
					Return(user, nil)
				sessionMaker.EXPECT().
					Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateSessionParams{})).
					Times(1).
					Return("access", time.Now().Add(time.Minute), domain.Session{UserID: user.ID}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "DuplicateEmail",
			requestBody: gin.H{
				"full_name":    user.FullName,
				"email":        user.Email,
				"phone_number": user.PhoneNumber,
				"password":     password,
			},
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrEmailAlreadyExists)
				sessionMaker.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "InvalidEmail",
			requestBody: gin.H{
				"full_name":    user.FullName,
				"email":        "not-an-email",
				"phone_number": user.PhoneNumber,
				"password":     password,
			},
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "ShortPassword",
			requestBody: gin.H{
				"full_name":    user.FullName,
				"email":        user.Email,
				"phone_number": user.PhoneNumber,
				"password":     "123",
			},
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "InternalError",
			requestBody: gin.H{
				"full_name":    user.FullName,
				"email":        user.Email,
				"phone_number": user.PhoneNumber,
				"password":     password,
			},
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, sessionMaker := newServer(t)
			tc.buildStubs(service, sessionMaker)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	user := randomUser(t)
	password := randompkg.String(10)

	testCases := []struct {
		name           string
		buildStubs     func(service *MockService, sessionMaker *MockSessionMaker)
		wantStatusCode int
	}{
		{
			name: "OK",
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					CheckPassword(gomock.Any(), gomock.Eq(user.Email), gomock.Eq(password)).
					Times(1).
					Return(user, nil)
				sessionMaker.EXPECT().
					Create(gomock.Any(), gomock.AssignableToTypeOf(domain.CreateSessionParams{})).
					Times(1).
					Return("access", time.Now().Add(time.Minute), domain.Session{UserID: user.ID}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "UserNotFound",
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					CheckPassword(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "WrongPassword",
			buildStubs: func(service *MockService, sessionMaker *MockSessionMaker) {
				service.EXPECT().
					CheckPassword(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.User{}, domain.ErrWrongPassword)
			},
			wantStatusCode: http.StatusUnauthorized,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, sessionMaker := newServer(t)
			tc.buildStubs(service, sessionMaker)

			body, err := json.Marshal(gin.H{"email": user.Email, "password": password})
			require.NoError(t, err)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/users/login", bytes.NewReader(body))
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestActivate(t *testing.T) {
	user := randomUser(t)

	testCases := []struct {
		name           string
		id             string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			id:   user.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(nil)
				service.EXPECT().Get(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "AlreadyActive",
			id:   user.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).Return(domain.ErrUserAlreadyActive)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "NotFound",
			id:   user.ID.String(),
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Eq(user.ID)).
					Times(1).Return(domain.ErrUserNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			id:   "not-a-uuid",
			buildStubs: func(service *MockService) {
				service.EXPECT().Activate(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			server, service, _ := newServer(t)
			tc.buildStubs(service)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodPost, "/users/"+tc.id+"/activate", nil)
			require.NoError(t, err)

			server.ServeHTTP(recorder, request)
			require.Equal(t, tc.wantStatusCode, recorder.Code)
		})
	}
}

func TestGet(t *testing.T) {
	user := randomUser(t)

	server, service, _ := newServer(t)

	service.EXPECT().Get(gomock.Any(), gomock.Eq(user.ID)).Times(1).Return(user, nil)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	service.EXPECT().Get(gomock.Any(), gomock.Any()).Times(1).Return(domain.User{}, domain.ErrUserNotFound)

	recorder = httptest.NewRecorder()
	request, err = http.NewRequest(http.MethodGet, "/users/"+uuid.NewString(), nil)
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}
