package sqlite

import (
	"time"
)

// dateLayout is the calendar-date storage format. Reports and spud dates
// carry no time-of-day component.
const dateLayout = "2006-01-02"

// FormatDateForDB formats a time.Time as a calendar date string for
// consistent database storage.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDatePtrForDB formats a *time.Time as a calendar date string,
// returning nil if the pointer is nil.
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a calendar date string from the database.
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
