package payperiod

import "errors"

var (
	ErrPayPeriodNotFound      = errors.New("pay period not found")
	ErrPayPeriodAlreadyClosed = errors.New("pay period already closed")
)
