package payfund

import "errors"

var (
	ErrPayFundNotFound  = errors.New("pay fund record not found")
	ErrFundTypeNotFound = errors.New("fund type not found")
)
