// Package helpers provides seed data builders used in integration tests.
package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/transactionrepo"
	"github.com/go-petr/pet-wallet/internal/userrepo"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/passpkg"
	"github.com/go-petr/pet-wallet/pkg/randompkg"
)

// SeedUser creates an Active user with random details.
func SeedUser(t *testing.T, db dbpkg.SQLInterface) domain.User {
	t.Helper()

	return SeedUserWithStatus(t, db, domain.UserActive)
}

// SeedUserWithStatus creates a user with random details in the given status.
func SeedUserWithStatus(t *testing.T, db dbpkg.SQLInterface, status domain.UserStatus) domain.User {
	t.Helper()

	hash, err := passpkg.Hash(randompkg.String(10))
	if err != nil {
		t.Fatalf("passpkg.Hash() returned error: %v", err)
	}

	user, err := domain.NewUser(randompkg.Owner(), randompkg.Email(), randompkg.PhoneNumber(), hash)
	if err != nil {
		t.Fatalf("domain.NewUser() returned error: %v", err)
	}

	user.Status = status

	created, err := userrepo.NewRepoPGS(db).Create(context.Background(), user)
	if err != nil {
		t.Fatalf("userRepo.Create() returned error: %v", err)
	}

	return created
}

// SeedWallet creates a wallet in the given status with zero balance.
func SeedWallet(t *testing.T, db dbpkg.SQLInterface, userID uuid.UUID, currencyCode string, status domain.WalletStatus) domain.Wallet {
	t.Helper()

	currency, err := currencypkg.FromCode(currencyCode)
	if err != nil {
		t.Fatalf("currencypkg.FromCode(%q) returned error: %v", currencyCode, err)
	}

	wallet, err := domain.NewWallet(userID, currency)
	if err != nil {
		t.Fatalf("domain.NewWallet() returned error: %v", err)
	}

	wallet.Status = status

	created, err := walletrepo.NewRepoPGS(db).Create(context.Background(), wallet)
	if err != nil {
		t.Fatalf("walletRepo.Create() returned error: %v", err)
	}

	return created
}

// SeedActiveWalletWith1000USD creates an Active USD wallet holding a 1000 balance.
func SeedActiveWalletWith1000USD(t *testing.T, db dbpkg.SQLInterface, userID uuid.UUID) domain.Wallet {
	t.Helper()

	wallet := SeedWallet(t, db, userID, "USD", domain.WalletActive)

	funded, err := walletrepo.NewRepoPGS(db).AddBalance(context.Background(), decimal.NewFromInt(1000), wallet.ID)
	if err != nil {
		t.Fatalf("walletRepo.AddBalance() returned error: %v", err)
	}

	return funded
}

// SeedCompletedTransaction creates a Completed payment transaction for the
// wallet with the given amount and creation time.
func SeedCompletedTransaction(t *testing.T, db dbpkg.SQLInterface, wallet domain.Wallet, amount string, createdAt time.Time) domain.Transaction {
	t.Helper()

	money, err := domain.NewMoney(decimal.RequireFromString(amount), wallet.Balance.Currency)
	if err != nil {
		t.Fatalf("domain.NewMoney() returned error: %v", err)
	}

	tx, err := domain.NewTransactionAt(wallet.ID, money, domain.TransactionPayment, "", randompkg.String(10), createdAt)
	if err != nil {
		t.Fatalf("domain.NewTransactionAt() returned error: %v", err)
	}

	if err := tx.MarkCompleted(); err != nil {
		t.Fatalf("tx.MarkCompleted() returned error: %v", err)
	}

	created, err := transactionrepo.NewTxRepoPGS(db).Create(context.Background(), tx)
	if err != nil {
		t.Fatalf("transactionRepo.Create() returned error: %v", err)
	}

	return created
}
