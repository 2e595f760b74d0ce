package department

import "time"

// Department is an organizational unit of a company. The task engine only
// consults the department count; the rest is plain CRUD.
type Department struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
