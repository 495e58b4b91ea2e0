package service

import "errors"

var (
	ErrUnknownEmail    = errors.New("unknown email")
	ErrPasswordUnknown = errors.New("unknown password")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrPhoneRegistered = errors.New("phone already registered")
	ErrInvalidDraft    = errors.New("driver draft failed validation")
)
