package paymenttype

import "errors"

var ErrPaymentTypeNotFound = errors.New("payment type not found")
