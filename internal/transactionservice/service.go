// Package transactionservice manages business logic layer of the transaction ledger.
package transactionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/web"
)

// Repo provides data access layer interface needed by transaction service layer.
//
// CreateWithBalance and UpdateWithBalance must commit the ledger write and
// the wallet balance delta as one database transaction.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error)
	CreateWithBalance(ctx context.Context, tx domain.Transaction, balanceDelta decimal.Decimal) (domain.Transaction, error)
	UpdateWithBalance(ctx context.Context, tx domain.Transaction, balanceDelta decimal.Decimal) (domain.Transaction, error)
	ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int32) ([]domain.Transaction, error)
	CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error)
	ListRecent(ctx context.Context, walletID uuid.UUID, limit int32) ([]domain.Transaction, error)
	ListReversedByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error)
}

// WalletRepo provides the wallet lookups needed by the transaction service layer.
type WalletRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Wallet, error)
}

// UserRepo provides the user lookup needed by the top up command.
type UserRepo interface {
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// UserValidator asserts that a user exists and is in the Active status.
type UserValidator interface {
	EnsureUserIsActive(ctx context.Context, userID uuid.UUID) error
}

// GatewayLogRepo provides data access for payment gateway audit records.
type GatewayLogRepo interface {
	Create(ctx context.Context, log domain.PaymentGatewayLog) (domain.PaymentGatewayLog, error)
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.PaymentGatewayLog, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo           Repo
	walletRepo     WalletRepo
	userRepo       UserRepo
	userValidator  UserValidator
	gatewayLogRepo GatewayLogRepo
}

// New returns transaction service struct to manage ledger business logic.
func New(tr Repo, wr WalletRepo, ur UserRepo, uv UserValidator, gr GatewayLogRepo) *Service {
	return &Service{
		repo:           tr,
		walletRepo:     wr,
		userRepo:       ur,
		userValidator:  uv,
		gatewayLogRepo: gr,
	}
}

// TopUp credits an active wallet of an active user and records a completed
// TopUp transaction. The balance and ledger writes commit atomically.
func (s *Service) TopUp(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, description string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	wallet, err := s.walletRepo.Get(ctx, walletID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if wallet.Status != domain.WalletActive {
		return domain.Transaction{}, domain.ErrWalletNotActive
	}

	user, err := s.userRepo.Get(ctx, wallet.UserID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if user.Status != domain.UserActive {
		return domain.Transaction{}, domain.ErrUserNotActive
	}

	if err := wallet.TopUp(amount); err != nil {
		return domain.Transaction{}, err
	}

	money, err := domain.NewMoney(amount, wallet.Balance.Currency)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx, err := domain.NewTransaction(walletID, money, domain.TransactionTopUp, "", description)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := tx.MarkCompleted(); err != nil {
		return domain.Transaction{}, err
	}

	created, err := s.repo.CreateWithBalance(ctx, tx, amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	return created, nil
}

// MakePayment debits an active wallet of an active user and records a
// completed Payment transaction. The balance and ledger writes commit
// atomically.
func (s *Service) MakePayment(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, description string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	wallet, err := s.walletRepo.Get(ctx, walletID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if wallet.Status != domain.WalletActive {
		return domain.Transaction{}, domain.ErrPaymentWalletNotActive
	}

	if err := wallet.Deduct(amount); err != nil {
		return domain.Transaction{}, err
	}

	if err := s.userValidator.EnsureUserIsActive(ctx, wallet.UserID); err != nil {
		return domain.Transaction{}, err
	}

	money, err := domain.NewMoney(amount, wallet.Balance.Currency)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx, err := domain.NewTransaction(walletID, money, domain.TransactionPayment, "", description)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := tx.MarkCompleted(); err != nil {
		return domain.Transaction{}, err
	}

	created, err := s.repo.CreateWithBalance(ctx, tx, amount.Neg())
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	return created, nil
}

// Refund reverses a completed transaction created within the refund window
// and credits the amount back to the wallet.
func (s *Service) Refund(ctx context.Context, transactionID uuid.UUID) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	tx, err := s.repo.Get(ctx, transactionID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if tx.Status != domain.TransactionCompleted {
		return domain.Transaction{}, domain.ErrTransactionNotCompleted
	}

	if !tx.Refundable(time.Now().UTC()) {
		return domain.Transaction{}, domain.ErrRefundWindowExpired
	}

	wallet, err := s.walletRepo.Get(ctx, tx.WalletID)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := s.userValidator.EnsureUserIsActive(ctx, wallet.UserID); err != nil {
		return domain.Transaction{}, err
	}

	if err := tx.MarkReversed("Refund requested"); err != nil {
		return domain.Transaction{}, err
	}

	if err := wallet.TopUp(tx.Amount.Amount); err != nil {
		return domain.Transaction{}, err
	}

	updated, err := s.repo.UpdateWithBalance(ctx, tx, tx.Amount.Amount)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	return updated, nil
}

// Get returns the transaction with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	return s.repo.Get(ctx, id)
}

// ListByWallet returns one page of the wallet's transactions.
func (s *Service) ListByWallet(ctx context.Context, walletID uuid.UUID, page, size int32) (web.PagedResult[domain.Transaction], error) {
	limit := size
	offset := (page - 1) * size

	transactions, err := s.repo.ListByWallet(ctx, walletID, limit, offset)
	if err != nil {
		return web.PagedResult[domain.Transaction]{}, err
	}

	total, err := s.repo.CountByWallet(ctx, walletID)
	if err != nil {
		return web.PagedResult[domain.Transaction]{}, err
	}

	return web.NewPagedResult(transactions, total, page, size), nil
}

// ListRecent returns the wallet's most recent transactions.
func (s *Service) ListRecent(ctx context.Context, walletID uuid.UUID, limit int32) ([]domain.Transaction, error) {
	return s.repo.ListRecent(ctx, walletID, limit)
}

// ListRefundsByWallet returns the wallet's reversed transactions.
func (s *Service) ListRefundsByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	return s.repo.ListReversedByWallet(ctx, walletID)
}

// RecordGatewayLog stores an audit record of a gateway exchange for the
// given transaction.
func (s *Service) RecordGatewayLog(ctx context.Context, transactionID uuid.UUID, gatewayName, requestPayload, responsePayload, statusCode string) (domain.PaymentGatewayLog, error) {
	if _, err := s.repo.Get(ctx, transactionID); err != nil {
		return domain.PaymentGatewayLog{}, err
	}

	log, err := domain.NewPaymentGatewayLog(transactionID, gatewayName, requestPayload, responsePayload, statusCode)
	if err != nil {
		return domain.PaymentGatewayLog{}, err
	}

	return s.gatewayLogRepo.Create(ctx, log)
}

// ListGatewayLogs returns the gateway audit records for the given transaction.
func (s *Service) ListGatewayLogs(ctx context.Context, transactionID uuid.UUID) ([]domain.PaymentGatewayLog, error) {
	return s.gatewayLogRepo.ListByTransaction(ctx, transactionID)
}
