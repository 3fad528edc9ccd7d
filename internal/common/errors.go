// Package common defines shared constants and sentinel errors used across
// bookit layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors for user supplied input.
	ErrInvalidInput = errors.New("invalid input")
)
