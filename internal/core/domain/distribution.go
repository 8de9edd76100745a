package domain

import "time"

// DistributionDay returns midnight of the first Saturday of the given month.
func DistributionDay(year int, month time.Month, loc *time.Location) time.Time {
	day := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	for day.Weekday() != time.Saturday {
		day = day.AddDate(0, 0, 1)
	}

	return day
}

// NextDistribution reports the upcoming distribution day relative to now. today is true while now
// falls between the distribution day's midnight and 23:59 inclusive.
func NextDistribution(now time.Time) (date time.Time, today bool) {
	date = DistributionDay(now.Year(), now.Month(), now.Location())
	end := date.AddDate(0, 0, 1).Add(-time.Minute)

	switch {
	case now.Before(date):
		return date, false
	case !now.After(end):
		return date, true
	}

	// first of next month, AddDate on the current day would overflow short months
	next := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, now.Location())

	return DistributionDay(next.Year(), next.Month(), now.Location()), false
}
