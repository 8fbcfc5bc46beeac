// Package walletservice manages business logic layer of wallets.
package walletservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
)

// Repo provides data access layer interface needed by wallet service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package walletservice
type Repo interface {
	Create(ctx context.Context, w domain.Wallet) (domain.Wallet, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Wallet, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus) error
}

// UserValidator asserts that a user exists and is in the Active status.
type UserValidator interface {
	EnsureUserIsActive(ctx context.Context, userID uuid.UUID) error
}

// Service facilitates wallet service layer logic.
type Service struct {
	repo          Repo
	userValidator UserValidator
}

// New returns wallet service struct to manage wallet business logic.
func New(wr Repo, uv UserValidator) *Service {
	return &Service{
		repo:          wr,
		userValidator: uv,
	}
}

// Create creates a wallet for the given user and currency code.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, currencyCode string) (domain.Wallet, error) {
	currency, err := currencypkg.FromCode(currencyCode)
	if err != nil {
		return domain.Wallet{}, err
	}

	if err := s.userValidator.EnsureUserIsActive(ctx, userID); err != nil {
		return domain.Wallet{}, err
	}

	wallet, err := domain.NewWallet(userID, currency)
	if err != nil {
		return domain.Wallet{}, err
	}

	return s.repo.Create(ctx, wallet)
}

// Get returns the wallet with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Wallet, error) {
	return s.repo.Get(ctx, id)
}

// ListByUser returns all wallets owned by the given user.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Balance returns the current balance of the wallet with the given id.
func (s *Service) Balance(ctx context.Context, id uuid.UUID) (domain.Money, error) {
	wallet, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Money{}, err
	}

	return wallet.Balance, nil
}

// Activate activates a pending wallet.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	wallet, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	switch wallet.Status {
	case domain.WalletActive:
		return domain.ErrWalletAlreadyActive
	case domain.WalletDisabled:
		return domain.ErrWalletDisabled
	case domain.WalletFrozen:
		return domain.ErrWalletFrozen
	}

	wallet.Activate()

	return s.repo.SetStatus(ctx, id, wallet.Status)
}

// Freeze freezes the wallet with the given id.
func (s *Service) Freeze(ctx context.Context, id uuid.UUID) error {
	wallet, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	switch wallet.Status {
	case domain.WalletFrozen:
		return domain.ErrWalletAlreadyFrozen
	case domain.WalletDisabled:
		return domain.ErrWalletDisabledFreeze
	}

	wallet.Freeze()

	return s.repo.SetStatus(ctx, id, wallet.Status)
}

// Close disables the wallet with the given id.
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	wallet, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if wallet.Status == domain.WalletDisabled {
		return domain.ErrWalletAlreadyDisabled
	}

	wallet.Disable()

	return s.repo.SetStatus(ctx, id, wallet.Status)
}
