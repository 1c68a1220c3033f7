package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// DateLayout is the wire format for weekend dates (query strings, form fields, storage)
const DateLayout = "2006-01-02"

// LongDateLayout is used in email subjects and page headings
const LongDateLayout = "January 02, 2006"

// DefaultReminderDay is the ISO weekday the coverage reminder goes out on
const DefaultReminderDay = Monday

// DefaultReminderTime is the wall-clock time (HH:MM) of the coverage reminder
const DefaultReminderTime = "08:00"

// ISOWeekday converts Go's Sunday=0 numbering to ISO 8601 (Monday=1..Sunday=7)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return wd
}
