package company

// Domain events published on the process-local event bus. Listeners re-enter
// the calculation engines (see internal/service/listener).

type CreatedEvent struct {
	UserID    string
	CompanyID string
}

func (CreatedEvent) Name() string { return "company.created" }

type UpdatedEvent struct {
	UserID    string
	CompanyID string
}

func (UpdatedEvent) Name() string { return "company.updated" }

type DeletedEvent struct {
	UserID    string
	CompanyID string
}

func (DeletedEvent) Name() string { return "company.deleted" }

// CalculateEvent requests a full recalculation without a preceding data change,
// e.g. after the current pay period advances.
type CalculateEvent struct {
	UserID    string
	CompanyID string
}

func (CalculateEvent) Name() string { return "company.calculate" }
