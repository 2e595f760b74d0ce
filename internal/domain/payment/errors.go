package payment

import "errors"

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentPositionNotFound = errors.New("payment position not found")
	ErrPaymentNotDraft         = errors.New("payment is not in draft status")
)
