// Package walletrepo manages repository layer of wallets.
package walletrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/currencypkg"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
)

// RepoPGS facilitates wallet repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns wallet RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO wallets (
    id, user_id, balance, currency, status, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6
) RETURNING id, user_id, balance, currency, status, created_at
`

// Create creates the wallet and then returns it.
func (r *RepoPGS) Create(ctx context.Context, w domain.Wallet) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		w.ID,
		w.UserID,
		w.Balance.Amount,
		w.Balance.Currency.Code,
		w.Status,
		w.CreatedAt,
	)

	created, err := scanWallet(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "wallets_user_id_fkey":
				return created, domain.ErrUserNotFound
			case "wallets_user_id_currency_key":
				return created, domain.ErrWalletCurrencyExists
			}
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const getQuery = `
SELECT
	id, user_id, balance, currency, status, created_at
FROM wallets
WHERE id = $1
`

// Get returns the wallet with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	w, err := scanWallet(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

const listByUserQuery = `
SELECT
	id, user_id, balance, currency, status, created_at
FROM wallets
WHERE user_id = $1
ORDER BY created_at, id
`

// ListByUser returns all wallets owned by the given user.
func (r *RepoPGS) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByUserQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Wallet{}

	for rows.Next() {
		var (
			w            domain.Wallet
			amount       decimal.Decimal
			currencyCode string
		)

		if err := rows.Scan(&w.ID, &w.UserID, &amount, &currencyCode, &w.Status, &w.CreatedAt); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		if w.Balance, err = buildBalance(amount, currencyCode); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, w)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setStatusQuery = `
UPDATE wallets
SET status = $1
WHERE id = $2
`

// SetStatus updates the wallet's lifecycle status.
func (r *RepoPGS) SetStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, setStatusQuery, status, id)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrWalletNotFound
	}

	return nil
}

const addBalanceQuery = `
UPDATE wallets
SET balance = balance + $1
WHERE id = $2
RETURNING id, user_id, balance, currency, status, created_at
`

// AddBalance changes the wallet's balance by the given delta and returns the
// changed wallet. A negative delta that would take the balance below zero
// fails with the insufficient balance error.
func (r *RepoPGS) AddBalance(ctx context.Context, delta decimal.Decimal, id uuid.UUID) (domain.Wallet, error) {
	l := zerolog.Ctx(ctx)

	w, err := scanWallet(r.db.QueryRowContext(ctx, addBalanceQuery, delta, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return w, domain.ErrWalletNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "wallets_balance_check" {
				return w, domain.ErrInsufficientBalance
			}
		}

		return w, errorspkg.ErrInternal
	}

	return w, nil
}

func scanWallet(row *sql.Row) (domain.Wallet, error) {
	var (
		w            domain.Wallet
		amount       decimal.Decimal
		currencyCode string
	)

	err := row.Scan(
		&w.ID,
		&w.UserID,
		&amount,
		&currencyCode,
		&w.Status,
		&w.CreatedAt,
	)
	if err != nil {
		return w, err
	}

	if w.Balance, err = buildBalance(amount, currencyCode); err != nil {
		return w, err
	}

	return w, nil
}

func buildBalance(amount decimal.Decimal, currencyCode string) (domain.Money, error) {
	currency, err := currencypkg.FromCode(currencyCode)
	if err != nil {
		return domain.Money{}, err
	}

	return domain.NewMoney(amount, currency)
}
