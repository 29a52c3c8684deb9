package domain

import (
	"fmt"
	"strconv"
	"strings"

	"rigreport/internal/errors"
)

// MinutesPerDay is the number of minutes the end-of-day sentinel maps to.
// A concrete clock value can never reach it (23:59 is 1439).
const MinutesPerDay = 1440

// TimeValue is a point within a single report day: either a concrete
// clock time or the end-of-day sentinel ("24:00"). The sentinel is a
// distinct value so that a span ending at day-end computes to a full
// 24 hours instead of 23.98. Immutable once constructed.
type TimeValue struct {
	minutes  int
	endOfDay bool
}

// NewTimeValue creates a concrete TimeValue from an hour and minute.
func NewTimeValue(hour, minute int) (TimeValue, error) {
	if hour < 0 || hour > 23 {
		return TimeValue{}, errors.NewConstructionError("hour", hour, "must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return TimeValue{}, errors.NewConstructionError("minute", minute, "must be between 0 and 59")
	}
	return TimeValue{minutes: hour*60 + minute}, nil
}

// MustTimeValue creates a concrete TimeValue and panics on invalid input.
// Intended for constants and tests.
func MustTimeValue(hour, minute int) TimeValue {
	tv, err := NewTimeValue(hour, minute)
	if err != nil {
		panic(err)
	}
	return tv
}

// EndOfDay returns the "24:00" sentinel.
func EndOfDay() TimeValue {
	return TimeValue{endOfDay: true}
}

// Midnight returns the concrete 00:00 value, the start of the day. It is
// the zero value of TimeValue.
func Midnight() TimeValue {
	return TimeValue{}
}

// ParseTimeValue parses "HH:MM" clock strings. "24:00" yields the sentinel.
func ParseTimeValue(s string) (TimeValue, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "24:00" {
		return EndOfDay(), nil
	}

	parts := strings.SplitN(trimmed, ":", 2)
	if len(parts) != 2 {
		return TimeValue{}, errors.NewConstructionError("time", s, "must be in HH:MM format")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeValue{}, errors.NewConstructionError("hour", parts[0], "must be a number")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeValue{}, errors.NewConstructionError("minute", parts[1], "must be a number")
	}
	return NewTimeValue(hour, minute)
}

// IsEndOfDay reports whether this value is the "24:00" sentinel.
func (tv TimeValue) IsEndOfDay() bool {
	return tv.endOfDay
}

// Minutes returns minutes since midnight. The sentinel maps to 1440,
// one past the last concrete minute, which is what makes a midnight-to-
// sentinel span exactly 24 hours.
func (tv TimeValue) Minutes() int {
	if tv.endOfDay {
		return MinutesPerDay
	}
	return tv.minutes
}

// Hour returns the hour component (0-23). Zero for the sentinel.
func (tv TimeValue) Hour() int {
	if tv.endOfDay {
		return 0
	}
	return tv.minutes / 60
}

// Minute returns the minute component (0-59). Zero for the sentinel.
func (tv TimeValue) Minute() int {
	if tv.endOfDay {
		return 0
	}
	return tv.minutes % 60
}

// AddMinutes returns the value shifted forward, clipped to 23:59 if the
// shift would reach or pass the end of the day. It never produces the
// sentinel; only an explicit caller action sets end-of-day.
func (tv TimeValue) AddMinutes(delta int) TimeValue {
	total := tv.Minutes() + delta
	if total >= MinutesPerDay {
		return TimeValue{minutes: MinutesPerDay - 1}
	}
	if total < 0 {
		return TimeValue{minutes: 0}
	}
	return TimeValue{minutes: total}
}

// String formats the value as "HH:MM", or "24:00" for the sentinel.
func (tv TimeValue) String() string {
	if tv.endOfDay {
		return "24:00"
	}
	return fmt.Sprintf("%02d:%02d", tv.Hour(), tv.Minute())
}

// Duration computes elapsed hours between two points in the day. A "to"
// value earlier than "from" is interpreted as crossing midnight.
func Duration(from, to TimeValue) float64 {
	fromMin := from.Minutes()
	toMin := to.Minutes()

	var elapsed int
	if toMin < fromMin {
		elapsed = (MinutesPerDay - fromMin) + toMin
	} else {
		elapsed = toMin - fromMin
	}
	return float64(elapsed) / 60.0
}
