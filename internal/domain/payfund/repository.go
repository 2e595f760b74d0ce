package payfund

import (
	"context"
	"time"
)

type FundTypeRepository interface {
	Create(ctx context.Context, ft FundType) (FundType, error)
	List(ctx context.Context) ([]FundType, error)
}

type PayFundRepository interface {
	Create(ctx context.Context, pf PayFund) (PayFund, error)
	ListByPosition(ctx context.Context, positionID string, payPeriod time.Time) ([]PayFund, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}
