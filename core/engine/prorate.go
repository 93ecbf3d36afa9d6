package engine

import "time"

// DaysInMonth returns the number of calendar days in the month of t,
// accounting for leap years.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Prorate computes the partial-month revenue for an activation. The
// activation day itself is unbilled: billed days are the calendar days in
// the month minus the day of month. An activation on the last day of its
// month therefore yields exactly 0, which is the billing policy rather than
// an off-by-one.
func Prorate(activationDate time.Time, monthlyValue float64) float64 {
	days := DaysInMonth(activationDate)
	billed := days - activationDate.Day()
	if billed <= 0 {
		return 0
	}
	return monthlyValue * float64(billed) / float64(days)
}
