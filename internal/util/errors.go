package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneRegistered    = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUnknownIndustry    = errors.New("unknown industry id")
	ErrUnknownFunction    = errors.New("unknown business function id")
	ErrSessionNotFound    = errors.New("chat session not found")
	ErrNoEntitlement      = errors.New("no active subscription")
	ErrPaymentNotFound    = errors.New("payment request not found")
	ErrPaymentReviewed    = errors.New("payment request already reviewed")
	ErrPaymentPending     = errors.New("a payment request is already under review")
	ErrEmptyMessage       = errors.New("message must not be empty")
)
