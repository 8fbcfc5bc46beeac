// Package transactionrepo manages repository layer of the transaction ledger.
package transactionrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/internal/walletrepo"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns transaction RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO transactions (
    id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10
) RETURNING id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
`

// Create creates the transaction record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		t.ID,
		t.WalletID,
		t.Amount.Amount,
		t.Amount.Currency.Code,
		t.Type,
		t.Status,
		t.ReferenceID,
		t.Description,
		t.CreatedAt,
		t.UpdatedAt,
	)

	created, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "transactions_wallet_id_fkey":
				return created, domain.ErrWalletNotFound
			case "transactions_amount_check":
				return created, domain.ErrNonPositiveAmount
			}
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const updateQuery = `
UPDATE transactions
SET status = $1, description = $2, updated_at = $3
WHERE id = $4
RETURNING id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
`

// Update persists the transaction's status, description, and update time.
func (r *RepoPGS) Update(ctx context.Context, t domain.Transaction) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, t.Status, t.Description, t.UpdatedAt, t.ID)

	updated, err := scanTransaction(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return updated, domain.ErrTransactionNotFound
		}

		return updated, errorspkg.ErrInternal
	}

	return updated, nil
}

// CreateWithBalance creates the transaction record and applies balanceDelta
// to the wallet within a single database transaction.
func (r *RepoPGS) CreateWithBalance(ctx context.Context, t domain.Transaction, balanceDelta decimal.Decimal) (domain.Transaction, error) {
	var created domain.Transaction

	err := r.withTx(ctx, func(txRepo *RepoPGS, walletRepo *walletrepo.RepoPGS) error {
		var err error

		if created, err = txRepo.Create(ctx, t); err != nil {
			return err
		}

		if _, err = walletRepo.AddBalance(ctx, balanceDelta, t.WalletID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return created, nil
}

// UpdateWithBalance persists the transaction's settlement fields and applies
// balanceDelta to the wallet within a single database transaction.
func (r *RepoPGS) UpdateWithBalance(ctx context.Context, t domain.Transaction, balanceDelta decimal.Decimal) (domain.Transaction, error) {
	var updated domain.Transaction

	err := r.withTx(ctx, func(txRepo *RepoPGS, walletRepo *walletrepo.RepoPGS) error {
		var err error

		if updated, err = txRepo.Update(ctx, t); err != nil {
			return err
		}

		if _, err = walletRepo.AddBalance(ctx, balanceDelta, t.WalletID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return updated, nil
}

func (r *RepoPGS) withTx(ctx context.Context, fn func(*RepoPGS, *walletrepo.RepoPGS) error) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	if err := fn(NewTxRepoPGS(tx), walletrepo.NewRepoPGS(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

const getQuery = `
SELECT
	id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
FROM transactions
WHERE id = $1
`

// Get returns the transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	t, err := scanTransaction(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listByWalletQuery = `
SELECT
	id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
FROM transactions
WHERE wallet_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

// ListByWallet returns the specified page of the wallet's transactions,
// newest first.
func (r *RepoPGS) ListByWallet(ctx context.Context, walletID uuid.UUID, limit, offset int32) ([]domain.Transaction, error) {
	return r.list(ctx, listByWalletQuery, walletID, limit, offset)
}

const countByWalletQuery = `
SELECT count(*) FROM transactions WHERE wallet_id = $1
`

// CountByWallet returns the total number of the wallet's transactions.
func (r *RepoPGS) CountByWallet(ctx context.Context, walletID uuid.UUID) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countByWalletQuery, walletID).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const listRecentQuery = `
SELECT
	id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
FROM transactions
WHERE wallet_id = $1
ORDER BY created_at DESC, id
LIMIT $2
`

// ListRecent returns the wallet's most recent transactions.
func (r *RepoPGS) ListRecent(ctx context.Context, walletID uuid.UUID, limit int32) ([]domain.Transaction, error) {
	return r.list(ctx, listRecentQuery, walletID, limit)
}

const listReversedQuery = `
SELECT
	id, wallet_id, amount, currency, type, status, reference_id, description, created_at, updated_at
FROM transactions
WHERE wallet_id = $1 AND status = 'Reversed'
ORDER BY created_at DESC, id
`

// ListReversedByWallet returns the wallet's reversed transactions, newest first.
func (r *RepoPGS) ListReversedByWallet(ctx context.Context, walletID uuid.UUID) ([]domain.Transaction, error) {
	return r.list(ctx, listReversedQuery, walletID)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Transaction{}

	for rows.Next() {
		var (
			t            domain.Transaction
			amount       decimal.Decimal
			currencyCode string
		)

		if err := rows.Scan(
			&t.ID,
			&t.WalletID,
			&amount,
			&currencyCode,
			&t.Type,
			&t.Status,
			&t.ReferenceID,
			&t.Description,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if t.Amount, err = buildAmount(amount, currencyCode); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

func scanTransaction(row *sql.Row) (domain.Transaction, error) {
	var (
		t            domain.Transaction
		amount       decimal.Decimal
		currencyCode string
	)

	err := row.Scan(
		&t.ID,
		&t.WalletID,
		&amount,
		&currencyCode,
		&t.Type,
		&t.Status,
		&t.ReferenceID,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return t, err
	}

	if t.Amount, err = buildAmount(amount, currencyCode); err != nil {
		return t, err
	}

	return t, nil
}

func buildAmount(amount decimal.Decimal, currencyCode string) (domain.Money, error) {
	currency, err := currencypkg.FromCode(currencyCode)
	if err != nil {
		return domain.Money{}, err
	}

	return domain.NewMoney(amount, currency)
}
