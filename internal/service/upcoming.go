package service

import "time"

// UpcomingDays is the length of the window of upcoming birthdays. The window includes today
// and the day UpcomingDays days from now.
const UpcomingDays = 14

// monthDay is a day of the year without the year, so that Feb 29 is a value of its own.
type monthDay struct {
	month time.Month
	day   int
}

func monthDayOf(t time.Time) monthDay {
	return monthDay{month: t.Month(), day: t.Day()}
}

func (a monthDay) before(b monthDay) bool {
	return a.month < b.month || (a.month == b.month && a.day < b.day)
}

// IsUpcoming reports whether the birthday of someone born on birthDate falls within the next
// UpcomingDays days, today included. Years are ignored. A window that runs past Dec 31
// continues in January.
func IsUpcoming(birthDate time.Time, today time.Time) bool {
	lower := monthDayOf(today)
	upper := monthDayOf(today.AddDate(0, 0, UpcomingDays))
	target := monthDayOf(birthDate)

	if upper.before(lower) {
		return !target.before(lower) || !upper.before(target)
	}
	return !target.before(lower) && !upper.before(target)
}
