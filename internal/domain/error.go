package domain

import "errors"

var (
	// Validation errors (reported to the caller as 4xx)
	ErrInvalidAmount = errors.New("amount is not allowed")
	ErrMissingField  = errors.New("required field missing")

	// Unexpected errors (reported as 5xx, details stay in the logs)
	ErrNotConfigured = errors.New("payment gateway not configured")
	ErrUpstream      = errors.New("payment gateway request failed")
)
