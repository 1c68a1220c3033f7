package domain

import (
	"fmt"
	"time"
)

// Weekend is a Saturday and the Sunday right after it.
type Weekend struct {
	Saturday time.Time
	Sunday   time.Time
}

func newWeekend(saturday time.Time) Weekend {
	return Weekend{
		Saturday: saturday,
		Sunday:   saturday.AddDate(0, 0, 1),
	}
}

// LastWeekend returns the most recent weekend that is already behind ref.
// A Sunday reference yields the day before; a Saturday reference yields the
// Saturday one week earlier, never ref itself.
func LastWeekend(ref time.Time) Weekend {
	day := dateOf(ref)

	daysSinceSaturday := (ISOWeekday(day) + 1) % 7
	if daysSinceSaturday == 0 {
		daysSinceSaturday = 7
	}

	return newWeekend(day.AddDate(0, 0, -daysSinceSaturday))
}

// NextWeekend returns the nearest weekend starting on or after ref.
// A Saturday reference yields ref itself.
func NextWeekend(ref time.Time) Weekend {
	day := dateOf(ref)
	daysUntilSaturday := (Saturday - ISOWeekday(day) + 7) % 7
	return newWeekend(day.AddDate(0, 0, daysUntilSaturday))
}

// WeekendsInYear lists every weekend from the first Saturday on or after
// January 1st of year up to January 7th of the following year, inclusive.
func WeekendsInYear(year int, loc *time.Location) []Weekend {
	if loc == nil {
		loc = time.UTC
	}

	last := time.Date(year+1, time.January, 7, 0, 0, 0, 0, loc)

	var weekends []Weekend
	for w := NextWeekend(time.Date(year, time.January, 1, 0, 0, 0, 0, loc)); !w.Saturday.After(last); w = w.Following() {
		weekends = append(weekends, w)
	}

	return weekends
}

// Following returns the weekend one week later.
func (w Weekend) Following() Weekend {
	return newWeekend(w.Saturday.AddDate(0, 0, 7))
}

func (w Weekend) SaturdayISO() string {
	return w.Saturday.Format(DateLayout)
}

func (w Weekend) SundayISO() string {
	return w.Sunday.Format(DateLayout)
}

// Label is the human readable form used in dropdowns, e.g. "June 01 - June 02, 2024".
func (w Weekend) Label() string {
	return fmt.Sprintf("%s - %s", w.Saturday.Format("January 02"), LongDate(w.Sunday))
}

// LongDate formats t as "January 02, 2006".
func LongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return t, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
