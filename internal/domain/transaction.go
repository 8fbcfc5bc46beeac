package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrEmptyWalletID indicates a missing transaction wallet id.
	ErrEmptyWalletID = errors.New("wallet id is required")
	// ErrTransactionNotPending indicates a settlement attempt on a non-pending transaction.
	ErrTransactionNotPending = errors.New("transaction is not pending")
	// ErrTransactionNotCompleted indicates a reversal attempt on a non-completed transaction.
	ErrTransactionNotCompleted = errors.New("transaction is not completed")
	// ErrRefundWindowExpired indicates a refund attempt after the refund window.
	ErrRefundWindowExpired = errors.New("refund window has expired")
)

// RefundWindow is how long after creation a completed transaction can be refunded.
const RefundWindow = 7 * 24 * time.Hour

// TransactionType is the kind of balance-affecting event.
type TransactionType string

// All transaction types.
const (
	TransactionTopUp    TransactionType = "TopUp"
	TransactionPayment  TransactionType = "Payment"
	TransactionTransfer TransactionType = "Transfer"
	TransactionReversal TransactionType = "Reversal"
)

// TransactionStatus is the lifecycle status of a transaction.
type TransactionStatus string

// All transaction statuses. Failed and Reversed are terminal.
const (
	TransactionPending   TransactionStatus = "Pending"
	TransactionCompleted TransactionStatus = "Completed"
	TransactionFailed    TransactionStatus = "Failed"
	TransactionReversed  TransactionStatus = "Reversed"
)

// Transaction is a record of a balance-affecting event against a wallet.
// Once settled it never changes amount or type; only Completed
// transactions can be reversed.
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	WalletID    uuid.UUID         `json:"wallet_id"`
	Amount      Money             `json:"amount"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	ReferenceID string            `json:"reference_id,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// NewTransaction returns a pending transaction created now.
func NewTransaction(walletID uuid.UUID, amount Money, txType TransactionType, referenceID, description string) (Transaction, error) {
	return NewTransactionAt(walletID, amount, txType, referenceID, description, time.Now().UTC())
}

// NewTransactionAt returns a pending transaction with an explicit creation time.
func NewTransactionAt(walletID uuid.UUID, amount Money, txType TransactionType, referenceID, description string, createdAt time.Time) (Transaction, error) {
	if walletID == uuid.Nil {
		return Transaction{}, ErrEmptyWalletID
	}

	return Transaction{
		ID:          uuid.New(),
		WalletID:    walletID,
		Amount:      amount,
		Type:        txType,
		Status:      TransactionPending,
		ReferenceID: referenceID,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// MarkCompleted settles a pending transaction.
func (t *Transaction) MarkCompleted() error {
	if t.Status != TransactionPending {
		return ErrTransactionNotPending
	}

	t.Status = TransactionCompleted
	t.UpdatedAt = time.Now().UTC()

	return nil
}

// MarkFailed fails a pending transaction and records the reason.
func (t *Transaction) MarkFailed(reason string) error {
	if t.Status != TransactionPending {
		return ErrTransactionNotPending
	}

	t.Status = TransactionFailed
	t.Description = appendReason(t.Description, "Failed: "+reason)
	t.UpdatedAt = time.Now().UTC()

	return nil
}

// MarkReversed reverses a completed transaction and records the reason.
func (t *Transaction) MarkReversed(reason string) error {
	if t.Status != TransactionCompleted {
		return ErrTransactionNotCompleted
	}

	t.Status = TransactionReversed
	t.Description = appendReason(t.Description, "Reversed: "+reason)
	t.UpdatedAt = time.Now().UTC()

	return nil
}

// Refundable reports whether the transaction is still within the refund window at now.
func (t *Transaction) Refundable(now time.Time) bool {
	return now.Sub(t.CreatedAt) <= RefundWindow
}

func appendReason(description, reason string) string {
	if description == "" {
		return reason
	}

	return description + " | " + reason
}
