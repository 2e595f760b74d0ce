package position

import "errors"

var (
	ErrPositionNotFound  = errors.New("position not found")
	ErrCardNumberExists  = errors.New("position card number already exists")
	ErrPositionNotVacant = errors.New("position is not vacant")
	ErrInvalidDateRange  = errors.New("position date range is invalid")
)
