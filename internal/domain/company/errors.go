package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNameExists      = errors.New("company name already exists")
)
