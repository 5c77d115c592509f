package draft

import "time"

const (
	dateLayout    = "2006-01-02"
	instantLayout = "2006-01-02T15:04:05"
)

// combine pairs a calendar date with a clock time into a single instant in
// the local time zone. No UTC conversion happens here: the wall-clock
// reading of the result equals the user's entry exactly.
func combine(date, clock string) (time.Time, error) {
	return time.ParseInLocation(instantLayout, date+"T"+clock+":00", time.Local)
}

// parseDate parses a calendar date in the local time zone.
func parseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, time.Local)
}

// dateOf truncates an instant to its calendar date in the local time zone.
func dateOf(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}
