package domain

import (
	"errors"
	"time"

	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrWalletNotFound indicates that the wallet is not found.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletCurrencyExists indicates that the user already has a wallet with the given currency.
	ErrWalletCurrencyExists = errors.New("wallet with this currency already exists")
	// ErrEmptyUserID indicates a missing wallet owner id.
	ErrEmptyUserID = errors.New("user id is required")
	// ErrNonPositiveAmount indicates a zero or negative operation amount.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	// ErrInsufficientBalance indicates that the wallet does not hold enough funds.
	ErrInsufficientBalance = errors.New("Insufficient balance.")

	// ErrWalletAlreadyActive indicates an activation request for an active wallet.
	ErrWalletAlreadyActive = errors.New("Wallet is already active.")
	// ErrWalletDisabled indicates an activation request for a disabled wallet.
	ErrWalletDisabled = errors.New("Wallet is disabled and cannot be reactivated.")
	// ErrWalletFrozen indicates an activation request for a frozen wallet.
	ErrWalletFrozen = errors.New("Wallet is frozen and must be unfrozen before activation.")
	// ErrWalletAlreadyFrozen indicates a freeze request for a frozen wallet.
	ErrWalletAlreadyFrozen = errors.New("Wallet is already frozen.")
	// ErrWalletDisabledFreeze indicates a freeze request for a disabled wallet.
	ErrWalletDisabledFreeze = errors.New("Wallet is disabled and cannot be frozen.")
	// ErrWalletAlreadyDisabled indicates a close request for a disabled wallet.
	ErrWalletAlreadyDisabled = errors.New("Wallet is already disabled.")
	// ErrWalletNotActive indicates a top up request for an inactive wallet.
	ErrWalletNotActive = errors.New("Wallet is not active.")
	// ErrPaymentWalletNotActive indicates a payment request for an inactive wallet.
	ErrPaymentWalletNotActive = errors.New("Only active wallets can make payments.")
)

// WalletStatus is the lifecycle status of a wallet.
type WalletStatus string

// All wallet statuses.
const (
	WalletPendingActivation WalletStatus = "PendingActivation"
	WalletActive            WalletStatus = "Active"
	WalletFrozen            WalletStatus = "Frozen"
	WalletDisabled          WalletStatus = "Disabled"
)

// Wallet holds a user balance in a single currency.
//
// Balance arithmetic is guarded here; status-based business policy
// belongs to the service layer.
type Wallet struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"user_id"`
	Balance   Money        `json:"balance"`
	Status    WalletStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewWallet returns a wallet with zero balance in the PendingActivation status.
func NewWallet(userID uuid.UUID, currency currencypkg.Currency) (Wallet, error) {
	if userID == uuid.Nil {
		return Wallet{}, ErrEmptyUserID
	}

	if currency.Code == "" {
		return Wallet{}, ErrCurrencyRequired
	}

	return Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Balance:   ZeroMoney(currency),
		Status:    WalletPendingActivation,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// TopUp increases the balance by the given positive amount.
func (w *Wallet) TopUp(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	credit, err := NewMoney(amount, w.Balance.Currency)
	if err != nil {
		return err
	}

	balance, err := w.Balance.Add(credit)
	if err != nil {
		return err
	}

	w.Balance = balance

	return nil
}

// Deduct decreases the balance by the given positive amount.
func (w *Wallet) Deduct(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrNonPositiveAmount
	}

	debit, err := NewMoney(amount, w.Balance.Currency)
	if err != nil {
		return err
	}

	balance, err := w.Balance.Subtract(debit)
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return ErrInsufficientBalance
		}

		return err
	}

	w.Balance = balance

	return nil
}

// Activate sets the Active status. Transition legality is enforced by the service layer.
func (w *Wallet) Activate() { w.Status = WalletActive }

// Freeze sets the Frozen status.
func (w *Wallet) Freeze() { w.Status = WalletFrozen }

// Disable sets the Disabled status.
func (w *Wallet) Disable() { w.Status = WalletDisabled }
