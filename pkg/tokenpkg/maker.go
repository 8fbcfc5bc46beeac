package tokenpkg

import (
	"time"

	"github.com/google/uuid"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for the given user and duration.
	CreateToken(userID uuid.UUID, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid and returns its payload.
	VerifyToken(token string) (*Payload, error)
}
