package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyTransactionID indicates a missing gateway log transaction id.
	ErrEmptyTransactionID = errors.New("transaction id is required")
	// ErrGatewayNameRequired indicates blank gateway name input.
	ErrGatewayNameRequired = errors.New("gateway name is required")
)

// PaymentGatewayLog is an audit record of one exchange with an external
// payment gateway, kept next to the transaction it settled.
type PaymentGatewayLog struct {
	ID              uuid.UUID `json:"id"`
	TransactionID   uuid.UUID `json:"transaction_id"`
	GatewayName     string    `json:"gateway_name"`
	RequestPayload  string    `json:"request_payload"`
	ResponsePayload string    `json:"response_payload"`
	StatusCode      string    `json:"status_code"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewPaymentGatewayLog returns a gateway log record.
// Missing payloads default to "{}" and a missing status code to "Unknown".
func NewPaymentGatewayLog(transactionID uuid.UUID, gatewayName, requestPayload, responsePayload, statusCode string) (PaymentGatewayLog, error) {
	if transactionID == uuid.Nil {
		return PaymentGatewayLog{}, ErrEmptyTransactionID
	}

	if strings.TrimSpace(gatewayName) == "" {
		return PaymentGatewayLog{}, ErrGatewayNameRequired
	}

	if requestPayload == "" {
		requestPayload = "{}"
	}

	if responsePayload == "" {
		responsePayload = "{}"
	}

	if statusCode == "" {
		statusCode = "Unknown"
	}

	return PaymentGatewayLog{
		ID:              uuid.New(),
		TransactionID:   transactionID,
		GatewayName:     gatewayName,
		RequestPayload:  requestPayload,
		ResponsePayload: responsePayload,
		StatusCode:      statusCode,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
