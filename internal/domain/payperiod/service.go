package payperiod

import "context"

type PayPeriodService interface {
	// Current returns the company's current pay period.
	Current(ctx context.Context, companyID string) (PayPeriodResponse, error)
	ListByCompany(ctx context.Context, companyID string) ([]PayPeriodResponse, error)
	// Close closes the company's current period, opens the next calendar month
	// and moves the company's current-period pointer forward.
	Close(ctx context.Context, userID, companyID string) (PayPeriodResponse, error)
}
