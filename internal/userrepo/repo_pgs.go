// Package userrepo manages repository layer of users.
package userrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/dbpkg"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const createQuery = `
INSERT INTO users (
    id, full_name, email, phone_number, password_hash, status, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7
) RETURNING id, full_name, email, phone_number, password_hash, status, created_at
`

// Create creates the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, u domain.User) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		u.ID,
		u.FullName,
		u.Email,
		u.PhoneNumber,
		u.PasswordHash,
		u.Status,
		u.CreatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "users_email_key":
				return created, domain.ErrEmailAlreadyExists
			case "users_phone_number_key":
				return created, domain.ErrPhoneAlreadyExists
			}
		}

		return created, errorspkg.ErrInternal
	}

	return created, nil
}

const getQuery = `
SELECT
	id, full_name, email, phone_number, password_hash, status, created_at
FROM users
WHERE id = $1
`

// Get returns the user with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const getByEmailQuery = `
SELECT
	id, full_name, email, phone_number, password_hash, status, created_at
FROM users
WHERE email = $1
`

// GetByEmail returns the user with the given email.
func (r *RepoPGS) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx, getByEmailQuery, email))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const getByPhoneQuery = `
SELECT
	id, full_name, email, phone_number, password_hash, status, created_at
FROM users
WHERE phone_number = $1
`

// GetByPhone returns the user with the given phone number.
func (r *RepoPGS) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx, getByPhoneQuery, phone))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const existsByEmailQuery = `
SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
`

// ExistsByEmail reports whether a user with the given email exists.
func (r *RepoPGS) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsByEmailQuery, email).Scan(&exists); err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return exists, nil
}

const existsByPhoneQuery = `
SELECT EXISTS (SELECT 1 FROM users WHERE phone_number = $1)
`

// ExistsByPhone reports whether a user with the given phone number exists.
func (r *RepoPGS) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	l := zerolog.Ctx(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, existsByPhoneQuery, phone).Scan(&exists); err != nil {
		l.Error().Err(err).Send()
		return false, errorspkg.ErrInternal
	}

	return exists, nil
}

const listQuery = `
SELECT
	id, full_name, email, phone_number, password_hash, status, created_at
FROM users
ORDER BY created_at, id
LIMIT $1 OFFSET $2
`

// List returns the specified page of users.
func (r *RepoPGS) List(ctx context.Context, limit, offset int32) ([]domain.User, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.User{}

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID,
			&u.FullName,
			&u.Email,
			&u.PhoneNumber,
			&u.PasswordHash,
			&u.Status,
			&u.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, u)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countQuery = `
SELECT count(*) FROM users
`

// Count returns the total number of users.
func (r *RepoPGS) Count(ctx context.Context) (int64, error) {
	l := zerolog.Ctx(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}

const setStatusQuery = `
UPDATE users
SET status = $1
WHERE id = $2
`

// SetStatus updates the user's lifecycle status.
func (r *RepoPGS) SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error {
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
		return domain.ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PhoneNumber,
		&u.PasswordHash,
		&u.Status,
		&u.CreatedAt,
	)

	return u, err
}
