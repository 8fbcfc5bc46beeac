package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailAlreadyExists indicates that a user with the given email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrPhoneAlreadyExists indicates that a user with the given phone number already exists.
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	// ErrUserNotActive indicates that the user is not in the Active status.
	ErrUserNotActive = errors.New("user is not active")
	// ErrUserAlreadyActive indicates an activation request for an active user.
	ErrUserAlreadyActive = errors.New("User is already active.")
	// ErrUserAlreadyClosed indicates a close request for a closed user.
	ErrUserAlreadyClosed = errors.New("User is already closed.")
	// ErrUserPendingActivation indicates a close request for a user that was never activated.
	ErrUserPendingActivation = errors.New("User is pending activation and cannot be closed.")
	// ErrUserClosedReactivation indicates an activation request for a closed user.
	ErrUserClosedReactivation = errors.New("User is closed and cannot be reactivated.")
	// ErrWrongPassword indicates a wrong password for the given user.
	ErrWrongPassword = errors.New("wrong password")

	// ErrFullNameRequired indicates blank full name input.
	ErrFullNameRequired = errors.New("full name is required")
	// ErrEmailRequired indicates blank email input.
	ErrEmailRequired = errors.New("email is required")
	// ErrPhoneNumberRequired indicates blank phone number input.
	ErrPhoneNumberRequired = errors.New("phone number is required")
	// ErrPasswordRequired indicates blank password input.
	ErrPasswordRequired = errors.New("password is required")
)

// UserStatus is the lifecycle status of a user.
type UserStatus string

// All user statuses.
const (
	UserPendingActivation UserStatus = "PendingActivation"
	UserActive            UserStatus = "Active"
	UserFrozen            UserStatus = "Frozen"
	UserDisabled          UserStatus = "Disabled"
	UserClosed            UserStatus = "Closed"
)

// User holds account holder data.
type User struct {
	ID           uuid.UUID  `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	PasswordHash string     `json:"-"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewUser returns a User in the PendingActivation status.
func NewUser(fullName, email, phoneNumber, passwordHash string) (User, error) {
	switch {
	case strings.TrimSpace(fullName) == "":
		return User{}, ErrFullNameRequired
	case strings.TrimSpace(email) == "":
		return User{}, ErrEmailRequired
	case strings.TrimSpace(phoneNumber) == "":
		return User{}, ErrPhoneNumberRequired
	case strings.TrimSpace(passwordHash) == "":
		return User{}, ErrPasswordRequired
	}

	return User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phoneNumber,
		PasswordHash: passwordHash,
		Status:       UserPendingActivation,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// UpdateFullName sets a new full name.
func (u *User) UpdateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrFullNameRequired
	}

	u.FullName = fullName

	return nil
}

// UpdatePhoneNumber sets a new phone number.
func (u *User) UpdatePhoneNumber(phoneNumber string) error {
	if strings.TrimSpace(phoneNumber) == "" {
		return ErrPhoneNumberRequired
	}

	u.PhoneNumber = phoneNumber

	return nil
}

// UpdatePassword sets a new password hash.
func (u *User) UpdatePassword(passwordHash string) error {
	if strings.TrimSpace(passwordHash) == "" {
		return ErrPasswordRequired
	}

	u.PasswordHash = passwordHash

	return nil
}

// Activate sets the Active status. Transition legality is enforced by the service layer.
func (u *User) Activate() { u.Status = UserActive }

// Freeze sets the Frozen status.
func (u *User) Freeze() { u.Status = UserFrozen }

// Disable sets the Disabled status.
func (u *User) Disable() { u.Status = UserDisabled }

// Close sets the Closed status.
func (u *User) Close() { u.Status = UserClosed }
