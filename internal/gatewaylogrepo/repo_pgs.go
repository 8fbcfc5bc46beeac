// Package gatewaylogrepo manages repository layer of payment gateway logs.
package gatewaylogrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
)

// RepoPGS facilitates gateway log repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns gateway log RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO payment_gateway_logs (
    id, transaction_id, gateway_name, request_payload, response_payload, status_code, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
) RETURNING id, transaction_id, gateway_name, request_payload, response_payload, status_code, created_at
`

// Create creates the gateway log record and then returns it.
func (r *RepoPGS) Create(ctx context.Context, log domain.PaymentGatewayLog) (domain.PaymentGatewayLog, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		log.ID,
		log.TransactionID,
		log.GatewayName,
		log.RequestPayload,
		log.ResponsePayload,
		log.StatusCode,
		log.CreatedAt,
	)

	var created domain.PaymentGatewayLog

	err := row.Scan(
		&created.ID,
		&created.TransactionID,
		&created.GatewayName,
		&created.RequestPayload,
		&created.ResponsePayload,
		&created.StatusCode,
		&created.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "payment_gateway_logs_transaction_id_fkey" {
				return created, domain.ErrTransactionNotFound
			}
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const listByTransactionQuery = `
SELECT
	id, transaction_id, gateway_name, request_payload, response_payload, status_code, created_at
FROM payment_gateway_logs
WHERE transaction_id = $1
ORDER BY created_at, id
`

// ListByTransaction returns the gateway log records for the given transaction.
func (r *RepoPGS) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]domain.PaymentGatewayLog, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByTransactionQuery, transactionID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.PaymentGatewayLog{}

	for rows.Next() {
		var log domain.PaymentGatewayLog
		if err := rows.Scan(
			&log.ID,
			&log.TransactionID,
			&log.GatewayName,
			&log.RequestPayload,
			&log.ResponsePayload,
			&log.StatusCode,
			&log.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, log)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
