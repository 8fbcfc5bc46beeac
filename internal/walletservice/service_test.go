package walletservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
)

func randomWallet(t *testing.T, status domain.WalletStatus, currencyCode string) domain.Wallet {
	t.Helper()

	currency, err := currencypkg.FromCode(currencyCode)
	require.NoError(t, err)

	return domain.Wallet{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Balance:   domain.ZeroMoney(currency),
		Status:    status,
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	testCases := []struct {
		name          string
		currencyCode  string
		buildStubs    func(repo *MockRepo, validator *MockUserValidator)
		checkResponse func(got domain.Wallet, err error)
	}{
		{
			name:         "OK",
			currencyCode: "usd",
			buildStubs: func(repo *MockRepo, validator *MockUserValidator) {
				validator.EXPECT().EnsureUserIsActive(gomock.Any(), gomock.Eq(userID)).
					Times(1).Return(nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, w domain.Wallet) (domain.Wallet, error) {
						require.Equal(t, userID, w.UserID)
						require.Equal(t, currencypkg.USD, w.Balance.Currency.Code)
						require.Equal(t, domain.WalletPendingActivation, w.Status)
						require.True(t, w.Balance.Amount.IsZero())
						return w, nil
					})
			},
			checkResponse: func(got domain.Wallet, err error) {
				require.NoError(t, err)
				require.Equal(t, userID, got.UserID)
			},
		},
		{
			name:         "Unsupported currency",
			currencyCode: "ABC",
			buildStubs: func(repo *MockRepo, validator *MockUserValidator) {
				validator.EXPECT().EnsureUserIsActive(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.Wallet, err error) {
				require.ErrorIs(t, err, currencypkg.ErrUnsupportedCode)
			},
		},
		{
			name:         "Owner not active",
			currencyCode: "USD",
			buildStubs: func(repo *MockRepo, validator *MockUserValidator) {
				validator.EXPECT().EnsureUserIsActive(gomock.Any(), gomock.Eq(userID)).
					Times(1).Return(domain.ErrUserNotActive)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(got domain.Wallet, err error) {
				require.ErrorIs(t, err, domain.ErrUserNotActive)
			},
		},
		{
			name:         "Currency already exists",
			currencyCode: "USD",
			buildStubs: func(repo *MockRepo, validator *MockUserValidator) {
				validator.EXPECT().EnsureUserIsActive(gomock.Any(), gomock.Eq(userID)).
					Times(1).Return(nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).Return(domain.Wallet{}, domain.ErrWalletCurrencyExists)
			},
			checkResponse: func(got domain.Wallet, err error) {
				require.ErrorIs(t, err, domain.ErrWalletCurrencyExists)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			validator := NewMockUserValidator(ctrl)
			tc.buildStubs(repo, validator)

			got, err := New(repo, validator).Create(context.Background(), userID, tc.currencyCode)
			tc.checkResponse(got, err)
		})
	}
}

func TestActivate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  domain.WalletStatus
		wantErr error
	}{
		{name: "OK", status: domain.WalletPendingActivation},
		{name: "Already active", status: domain.WalletActive, wantErr: domain.ErrWalletAlreadyActive},
		{name: "Disabled", status: domain.WalletDisabled, wantErr: domain.ErrWalletDisabled},
		{name: "Frozen", status: domain.WalletFrozen, wantErr: domain.ErrWalletFrozen},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wallet := randomWallet(t, tc.status, currencypkg.EGP)

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)

			if tc.wantErr == nil {
				repo.EXPECT().SetStatus(gomock.Any(), gomock.Eq(wallet.ID), gomock.Eq(domain.WalletActive)).
					Times(1).Return(nil)
			} else {
				repo.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			err := New(repo, NewMockUserValidator(ctrl)).Activate(context.Background(), wallet.ID)

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestActivateNotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(id)).
		Times(1).Return(domain.Wallet{}, domain.ErrWalletNotFound)

	err := New(repo, NewMockUserValidator(ctrl)).Activate(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestFreeze(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  domain.WalletStatus
		wantErr error
	}{
		{name: "OK from Active", status: domain.WalletActive},
		{name: "OK from PendingActivation", status: domain.WalletPendingActivation},
		{name: "Already frozen", status: domain.WalletFrozen, wantErr: domain.ErrWalletAlreadyFrozen},
		{name: "Disabled", status: domain.WalletDisabled, wantErr: domain.ErrWalletDisabledFreeze},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wallet := randomWallet(t, tc.status, currencypkg.EGP)

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)

			if tc.wantErr == nil {
				repo.EXPECT().SetStatus(gomock.Any(), gomock.Eq(wallet.ID), gomock.Eq(domain.WalletFrozen)).
					Times(1).Return(nil)
			}

			err := New(repo, NewMockUserValidator(ctrl)).Freeze(context.Background(), wallet.ID)

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCloseWallet(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		status  domain.WalletStatus
		wantErr error
	}{
		{name: "OK", status: domain.WalletActive},
		{name: "Already disabled", status: domain.WalletDisabled, wantErr: domain.ErrWalletAlreadyDisabled},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wallet := randomWallet(t, tc.status, currencypkg.EGP)

			repo := NewMockRepo(ctrl)
			repo.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)

			if tc.wantErr == nil {
				repo.EXPECT().SetStatus(gomock.Any(), gomock.Eq(wallet.ID), gomock.Eq(domain.WalletDisabled)).
					Times(1).Return(nil)
			}

			err := New(repo, NewMockUserValidator(ctrl)).Close(context.Background(), wallet.ID)

			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := randomWallet(t, domain.WalletActive, currencypkg.USD)

	repo := NewMockRepo(ctrl)
	repo.EXPECT().Get(gomock.Any(), gomock.Eq(wallet.ID)).Times(1).Return(wallet, nil)

	got, err := New(repo, NewMockUserValidator(ctrl)).Balance(context.Background(), wallet.ID)
	require.NoError(t, err)
	require.True(t, got.Equal(wallet.Balance))
}
