package position

import "time"

// Position is an employment slot of a company: a vacancy when PersonID is nil,
// a filled position otherwise. Valid between DateFrom and DateTo.
type Position struct {
	ID         string
	CompanyID  string
	CardNumber string
	PersonID   *string
	DateFrom   time.Time
	DateTo     time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Employed reports whether the position is filled on the given date.
func (p Position) Employed(on time.Time) bool {
	return p.PersonID != nil && !p.DateFrom.After(on) && !p.DateTo.Before(on)
}
