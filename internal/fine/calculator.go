package fine

import "time"

// Marginal daily rates for the three overdue brackets.
const (
	tier1Rate = 100 // days 1-5
	tier2Rate = 200 // days 6-10
	tier3Rate = 500 // days 11 and beyond
)

// DaysOverdue returns the number of whole calendar days asOf is past dueDate.
// A due date in the future counts as zero, never negative.
func DaysOverdue(dueDate, asOf time.Time) int {
	days := int(dateOnly(asOf).Sub(dateOnly(dueDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Calculate computes the fine owed for a loan due on dueDate as of the given
// date. Callers closing a loan must pass the actual return date, not the
// current clock, so the amount does not drift if the call happens later.
func Calculate(dueDate, asOf time.Time) int64 {
	return ForDays(DaysOverdue(dueDate, asOf))
}

// ForDueDate computes the running fine of a still-open loan as of today.
func ForDueDate(dueDate time.Time) int64 {
	return Calculate(dueDate, time.Now())
}

// ForDays applies the tiered schedule to a number of overdue days.
func ForDays(days int) int64 {
	if days <= 0 {
		return 0
	}
	amount := int64(tier1Rate) * int64(min(days, 5))
	if days > 5 {
		amount += int64(tier2Rate) * int64(min(days, 10)-5)
	}
	if days > 10 {
		amount += int64(tier3Rate) * int64(days-10)
	}
	return amount
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
