// Package web defines common components for a web application.
package web

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response envelope for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// Error wraps a given err into a json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a readable message for the failed binding field.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "gt":
		return " must be greater than " + fe.Param()
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must not exceed " + fe.Param()
	case "email":
		return " must be a valid email address"
	case "currency":
		return " must be a supported currency code"
	case "uuid":
		return " must be a valid UUID"
	}

	return " is invalid"
}
