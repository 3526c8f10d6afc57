package timeutil

import (
	"time"
)

// Local is the deployment timezone (UTC+8). Reports and date-range filters
// are expressed in warehouse-local time, storage stays in UTC.
var Local *time.Location

func init() {
	var err error
	Local, err = time.LoadLocation("Asia/Manila")
	if err != nil {
		Local = time.FixedZone("PHT", 8*60*60)
	}
}

// Now returns the current time in the deployment timezone
func Now() time.Time {
	return time.Now().In(Local)
}

// ParseLocal parses a time string in the deployment timezone
func ParseLocal(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, Local)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay returns 00:00:00 local for the given time
func StartOfDay(t time.Time) time.Time {
	l := t.In(Local)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, Local)
}

// EndOfDay returns the last nanosecond of the local day
func EndOfDay(t time.Time) time.Time {
	l := t.In(Local)
	return time.Date(l.Year(), l.Month(), l.Day(), 23, 59, 59, 999999999, Local)
}

// Common layouts
const (
	DateLayout    = "2006-01-02"
	DisplayLayout = "02 Jan 2006, 03:04 PM"
)
