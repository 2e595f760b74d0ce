package position

type CreatedEvent struct {
	UserID     string
	PositionID string
	CompanyID  string
}

func (CreatedEvent) Name() string { return "position.created" }

type UpdatedEvent struct {
	UserID     string
	PositionID string
	CompanyID  string
}

func (UpdatedEvent) Name() string { return "position.updated" }

type DeletedEvent struct {
	UserID     string
	PositionID string
	CompanyID  string
}

func (DeletedEvent) Name() string { return "position.deleted" }
