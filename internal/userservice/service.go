// Package userservice manages business logic layer of users.
package userservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-wallet/internal/domain"
	"github.com/go-petr/pet-wallet/pkg/errorspkg"
	"github.com/go-petr/pet-wallet/pkg/passpkg"
	"github.com/go-petr/pet-wallet/pkg/web"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByPhone(ctx context.Context, phone string) (domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	List(ctx context.Context, limit, offset int32) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error
}

// Service facilitates user service layer logic.
type Service struct {
	repo Repo
}

// New returns user service struct to manage user business logic.
func New(ur Repo) *Service {
	return &Service{repo: ur}
}

// Register creates a user in the PendingActivation status.
func (s *Service) Register(ctx context.Context, fullName, email, phoneNumber, password string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	if taken {
		return domain.User{}, domain.ErrEmailAlreadyExists
	}

	taken, err = s.repo.ExistsByPhone(ctx, phoneNumber)
	if err != nil {
		return domain.User{}, err
	}

	if taken {
		return domain.User{}, domain.ErrPhoneAlreadyExists
	}

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	user, err := domain.NewUser(fullName, email, phoneNumber, hashedPassword)
	if err != nil {
		return domain.User{}, err
	}

	return s.repo.Create(ctx, user)
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return s.repo.Get(ctx, id)
}

// GetByEmail returns the user with the given email.
func (s *Service) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// GetByPhone returns the user with the given phone number.
func (s *Service) GetByPhone(ctx context.Context, phone string) (domain.User, error) {
	return s.repo.GetByPhone(ctx, phone)
}

// List returns one page of users.
func (s *Service) List(ctx context.Context, page, size int32) (web.PagedResult[domain.User], error) {
	limit := size
	offset := (page - 1) * size

	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return web.PagedResult[domain.User]{}, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return web.PagedResult[domain.User]{}, err
	}

	return web.NewPagedResult(users, total, page, size), nil
}

// CheckPassword checks the password for the user with the given email.
func (s *Service) CheckPassword(ctx context.Context, email, password string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	if err := passpkg.Check(password, user.PasswordHash); err != nil {
		l.Warn().Err(err).Send()
		return domain.User{}, domain.ErrWrongPassword
	}

	return user, nil
}

// Activate activates the user with the given id.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	switch user.Status {
	case domain.UserActive:
		return domain.ErrUserAlreadyActive
	case domain.UserClosed:
		return domain.ErrUserClosedReactivation
	}

	user.Activate()

	return s.repo.SetStatus(ctx, id, user.Status)
}

// Freeze freezes the user with the given id.
func (s *Service) Freeze(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if user.Status != domain.UserActive {
		return domain.ErrUserNotActive
	}

	user.Freeze()

	return s.repo.SetStatus(ctx, id, user.Status)
}

// Disable disables the user with the given id.
func (s *Service) Disable(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if user.Status != domain.UserActive {
		return domain.ErrUserNotActive
	}

	user.Disable()

	return s.repo.SetStatus(ctx, id, user.Status)
}

// Close closes the user with the given id.
func (s *Service) Close(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	switch user.Status {
	case domain.UserPendingActivation:
		return domain.ErrUserPendingActivation
	case domain.UserClosed:
		return domain.ErrUserAlreadyClosed
	}

	user.Close()

	return s.repo.SetStatus(ctx, id, user.Status)
}

// EnsureUserIsActive fails unless the user exists and is in the Active status.
func (s *Service) EnsureUserIsActive(ctx context.Context, id uuid.UUID) error {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if user.Status != domain.UserActive {
		return domain.ErrUserNotActive
	}

	return nil
}
