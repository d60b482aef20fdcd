package models

import "errors"

// Sentinel errors shared by the repositories and services. Handlers map
// them to HTTP statuses with errors.Is, so wrap rather than replace them.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentDeclined   = errors.New("payment declined")
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
)
