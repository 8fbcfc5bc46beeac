package tokenpkg

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

func TestPasetoMaker(t *testing.T) {
	t.Parallel()

	secretKey := strings.Repeat("x", 32)

	maker, err := NewPasetoMaker(secretKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker(%v) returned error: %v", secretKey, err)
	}

	userID := uuid.New()
	duration := time.Minute

	token, payload, err := maker.CreateToken(userID, duration)
	if err != nil {
		t.Errorf("maker.CreateToken(%v, %v) returned error: %v", userID, duration, err)
	}

	_, err = maker.VerifyToken(token)
	if err != nil {
		t.Errorf("maker.VerifyToken(%v) returned error: %v", token, err)
	}

	want := &Payload{
		UserID:    userID,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	ignore := cmpopts.IgnoreFields(Payload{}, "ID")
	delta := cmpopts.EquateApproxTime(time.Minute)

	if diff := cmp.Diff(payload, want, ignore, delta); diff != "" {
		t.Errorf("maker.CreateToken(%v, %v) returned unexpected diff: %v", userID, duration, diff)
	}
}

func TestExpiredPasetoToken(t *testing.T) {
	t.Parallel()

	maker, err := NewPasetoMaker(strings.Repeat("x", 32))
	if err != nil {
		t.Fatalf("NewPasetoMaker() returned error: %v", err)
	}

	token, _, err := maker.CreateToken(uuid.New(), -time.Minute)
	if err != nil {
		t.Errorf("maker.CreateToken() returned error: %v", err)
	}

	_, err = maker.VerifyToken(token)
	if err != ErrExpiredToken {
		t.Errorf("maker.VerifyToken(%v) returned unexpected error: %v", token, err)
	}
}
