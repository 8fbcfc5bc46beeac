//go:build integration

package walletrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/integrationtest"
	"github.com/go-petr/pet-wallet/internal/integrationtest/helpers"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/configpkg"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func newWallet(t *testing.T, userID uuid.UUID, currencyCode string) domain.Wallet {
	t.Helper()

	currency, err := currencypkg.FromCode(currencyCode)
	require.NoError(t, err)

	wallet, err := domain.NewWallet(userID, currency)
	require.NoError(t, err)

	return wallet
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name       string
		wantWallet func(tx *sql.Tx) domain.Wallet
		wantErr    error
	}{
		{
			name: "OK",
			wantWallet: func(tx *sql.Tx) domain.Wallet {
				user := helpers.SeedUser(t, tx)
				return newWallet(t, user.ID, "USD")
			},
		},
		{
			name: "ConstraintViolation:wallets_user_id_fkey",
			wantWallet: func(tx *sql.Tx) domain.Wallet {
				return newWallet(t, uuid.New(), "USD")
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "ConstraintViolation:wallets_user_id_currency_key",
			wantWallet: func(tx *sql.Tx) domain.Wallet {
				user := helpers.SeedUser(t, tx)
				helpers.SeedWallet(t, tx, user.ID, "USD", domain.WalletActive)

				return newWallet(t, user.ID, "USD")
			},
			wantErr: domain.ErrWalletCurrencyExists,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			want := tc.wantWallet(tx)
			repo := walletrepo.NewRepoPGS(tx)

			got, err := repo.Create(context.Background(), want)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("repo.Create(ctx, wallet) returned error: %v", err)
			}

			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
				t.Errorf("repo.Create(ctx, wallet) returned unexpected difference (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet(t *testing.T) {
	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	repo := walletrepo.NewRepoPGS(tx)

	user := helpers.SeedUser(t, tx)
	want := helpers.SeedWallet(t, tx, user.ID, "USD", domain.WalletActive)

	got, err := repo.Get(context.Background(), want.ID)
	require.NoError(t, err)

	compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
	if diff := cmp.Diff(want, got, compareCreatedAt); diff != "" {
		t.Errorf("repo.Get(ctx, id) returned unexpected difference (-want +got):\n%s", diff)
	}

	_, err = repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestListByUser(t *testing.T) {
	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	repo := walletrepo.NewRepoPGS(tx)

	user := helpers.SeedUser(t, tx)
	helpers.SeedWallet(t, tx, user.ID, "USD", domain.WalletActive)
	helpers.SeedWallet(t, tx, user.ID, "EUR", domain.WalletActive)
	helpers.SeedWallet(t, tx, user.ID, "EGP", domain.WalletFrozen)

	wallets, err := repo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, wallets, 3)

	for _, w := range wallets {
		require.Equal(t, user.ID, w.UserID)
	}

	wallets, err = repo.ListByUser(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Empty(t, wallets)
}

func TestSetStatus(t *testing.T) {
	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	repo := walletrepo.NewRepoPGS(tx)

	user := helpers.SeedUser(t, tx)
	wallet := helpers.SeedWallet(t, tx, user.ID, "USD", domain.WalletPendingActivation)

	err := repo.SetStatus(context.Background(), wallet.ID, domain.WalletActive)
	require.NoError(t, err)

	got, err := repo.Get(context.Background(), wallet.ID)
	require.NoError(t, err)
	require.Equal(t, domain.WalletActive, got.Status)

	err = repo.SetStatus(context.Background(), uuid.New(), domain.WalletActive)
	require.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestAddBalance(t *testing.T) {
	testCases := []struct {
		name        string
		delta       decimal.Decimal
		wantBalance string
		wantErr     error
	}{
		{
			name:        "Credit",
			delta:       decimal.RequireFromString("250.50"),
			wantBalance: "1250.50",
		},
		{
			name:        "Debit",
			delta:       decimal.RequireFromString("-400"),
			wantBalance: "600",
		},
		{
			name:    "ConstraintViolation:wallets_balance_check",
			delta:   decimal.RequireFromString("-1500"),
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			repo := walletrepo.NewRepoPGS(tx)

			user := helpers.SeedUser(t, tx)
			wallet := helpers.SeedActiveWalletWith1000USD(t, tx, user.ID)

			got, err := repo.AddBalance(context.Background(), tc.delta, wallet.ID)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf("repo.AddBalance(ctx, %v, id) returned error: %v", tc.delta, err)
			}

			require.True(t, got.Balance.Amount.Equal(decimal.RequireFromString(tc.wantBalance)),
				"balance = %v, want %v", got.Balance.Amount, tc.wantBalance)
		})
	}

	t.Run("WalletNotFound", func(t *testing.T) {
		tx := integrationtest.SetupTX(t, dbDriver, dbSource)
		repo := walletrepo.NewRepoPGS(tx)

		_, err := repo.AddBalance(context.Background(), decimal.NewFromInt(10), uuid.New())
		require.ErrorIs(t, err, domain.ErrWalletNotFound)
	})
}
