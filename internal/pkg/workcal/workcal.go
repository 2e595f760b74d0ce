package workcal

import "time"

// DateUTC normalizes t to midnight UTC. All pay period and document dates are
// stored this way so that equality checks never depend on wall-clock components.
func DateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBegin returns the first day of t's month at midnight UTC.
func MonthBegin(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's month at midnight UTC.
func MonthEnd(t time.Time) time.Time {
	return MonthBegin(t).AddDate(0, 1, -1)
}

// WorkDayBeforeOrEqual steps backward from t to the nearest day that is not a
// Saturday or Sunday. Public holidays are not modeled.
func WorkDayBeforeOrEqual(t time.Time) time.Time {
	d := DateUTC(t)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// AdvancePaymentDate returns the scheduled advance payment day for a pay
// period starting at dateFrom: the 15th calendar day, pulled back to a working
// day.
func AdvancePaymentDate(dateFrom time.Time) time.Time {
	return WorkDayBeforeOrEqual(DateUTC(dateFrom).AddDate(0, 0, 14))
}
